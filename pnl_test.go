package zellaconv

import "testing"

func TestParsePnL(t *testing.T) {
	testCases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"125.50", "125.50", true},
		{"-125.50", "-125.50", true},
		{"+42", "42", true},
		{"$1,234.56", "1234.56", true},
		{"€ 1 000", "1000", true},
		{"1.2.3", "", false},
		{"£250", "250", true},
		{"(125.50)", "-125.50", true},
		{"($1,000)", "-1000", true},
		{"0", "0", true},
		{"0.00", "0.00", true},
		{"", "", false},
		{"n/a", "", false},
		{"--", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParsePnL(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("ParsePnL(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
			}
			if ok && got.String() != tc.want {
				t.Errorf("ParsePnL(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

package zellaconv

import "testing"

func TestFormatTradingDate(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2026-02-18", "2026-02-18"},
		{"2026-02-18 09:31:00", "2026-02-18"},
		{"2026-02-18 09:31", "2026-02-18"},
		{"02/18/2026", "2026-02-18"},
		{"02/18/2026 09:31", "2026-02-18"},
		{"2026-02-18T09:31:00Z", "2026-02-18"},
		{"Feb 18, 2026", "2026-02-18"},
		{"not a date", ""},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := FormatTradingDate(tc.in); got != tc.want {
				t.Errorf("FormatTradingDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

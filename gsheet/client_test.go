package gsheet

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestDescribeAPIError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "sheet not shared",
			err:  &googleapi.Error{Code: 403, Message: "The caller does not have permission"},
			want: "share the sheet",
		},
		{
			name: "api disabled by reason",
			err:  &googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "accessNotConfigured"}}},
			want: "not enabled",
		},
		{
			name: "api disabled by message",
			err:  &googleapi.Error{Code: 403, Message: "Google Sheets API has not been used in project 12345 before"},
			want: "not enabled",
		},
		{
			name: "wrong spreadsheet id",
			err:  &googleapi.Error{Code: 404, Message: "Requested entity was not found"},
			want: "check the spreadsheet id",
		},
		{
			name: "bad credentials",
			err:  &googleapi.Error{Code: 401, Message: "Invalid Credentials"},
			want: "re-download the key",
		},
		{
			name: "network failure",
			err:  errors.New("dial tcp: lookup sheets.googleapis.com: no such host"),
			want: "network",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := describeAPIError(tc.err, "sheet-id", "Sheet1")
			if got == nil {
				t.Fatal("want a described error, got nil")
			}
			if !strings.Contains(got.Error(), tc.want) {
				t.Errorf("describeAPIError() = %q, want it to mention %q", got, tc.want)
			}
			if !errors.Is(got, tc.err) {
				t.Errorf("described error should wrap the original: %q", got)
			}
		})
	}
}

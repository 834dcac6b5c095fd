package zellaconv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
)

// scopeSpreadsheets is the OAuth scope required to append rows to a sheet.
const scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"

// CredentialResult is the outcome of trying to resolve the service-account
// key. An unusable key is a value here, not an error: in auto mode it just
// means the local .xlsx strategy is used.
type CredentialResult struct {
	Path        string
	Credentials *google.Credentials
	Err         error
}

// OK reports whether usable credentials were resolved.
func (r CredentialResult) OK() bool { return r.Err == nil && r.Credentials != nil }

// ResolveCredentials reads and validates the service-account key at path.
func ResolveCredentials(ctx context.Context, path string) CredentialResult {
	if path == "" {
		return CredentialResult{Err: errors.New("no service-account key configured")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return CredentialResult{Path: path, Err: fmt.Errorf("cannot read service-account key: %w", err)}
	}
	creds, err := google.CredentialsFromJSON(ctx, data, scopeSpreadsheets)
	if err != nil {
		return CredentialResult{Path: path, Err: fmt.Errorf("service-account key %q is not usable: %w", path, err)}
	}
	return CredentialResult{Path: path, Credentials: creds}
}

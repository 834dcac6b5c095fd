package zellaconv

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
)

// ErrConflictingStrategies is returned when both output strategies are
// forced at once; it is a usage error.
var ErrConflictingStrategies = errors.New("-sheets and -xlsx cannot be combined")

// SelectOptions are the per-run inputs to destination selection.
type SelectOptions struct {
	ForceRemote bool   // -sheets
	ForceLocal  bool   // -xlsx
	OutputFile  string // -output, local strategy only
}

// Destination is where a converted batch goes: exactly one of Google Sheets
// (RemoteDestination) or a local workbook (LocalDestination).
type Destination interface {
	Describe() string
	destination()
}

// RemoteDestination addresses a tab of a live Google Sheet.
type RemoteDestination struct {
	SpreadsheetID string
	Tab           string
	Credentials   *google.Credentials
}

func (RemoteDestination) destination() {}

func (d RemoteDestination) Describe() string {
	return fmt.Sprintf("Google Sheets tab %q of spreadsheet %s", d.Tab, d.SpreadsheetID)
}

// LocalDestination addresses a template-seeded .xlsx file.
type LocalDestination struct {
	TemplateFile string
	OutputFile   string
	// FallbackNote is set when the local strategy was chosen because Google
	// Sheets was not usable; it is informational, not an error.
	FallbackNote string
}

func (LocalDestination) destination() {}

func (d LocalDestination) Describe() string {
	return fmt.Sprintf("workbook %s (template %s)", d.OutputFile, d.TemplateFile)
}

// SelectDestination decides where a run writes. It is a pure function of
// the force flags, the layered configuration and the credential-resolution
// outcome, so the decision is testable without touching the network or the
// filesystem.
//
// Explicit flags win. Forcing Google Sheets with unusable credentials or an
// unset spreadsheet id is fatal. In auto mode Google Sheets is chosen iff
// the spreadsheet id is configured and the credentials resolved; anything
// else falls back to the local workbook, with the reason carried as an
// informational note.
func SelectDestination(opts SelectOptions, cfg Config, creds CredentialResult) (Destination, error) {
	if opts.ForceRemote && opts.ForceLocal {
		return nil, ErrConflictingStrategies
	}

	local := LocalDestination{
		TemplateFile: cfg.TemplateFile,
		OutputFile:   opts.OutputFile,
	}

	if opts.ForceLocal {
		return local, nil
	}

	if opts.ForceRemote {
		if !cfg.SpreadsheetConfigured() {
			return nil, fmt.Errorf("spreadsheet id is not set: pass -sheet-id, set STB_SPREADSHEET_ID, or edit the built-in default")
		}
		if !creds.OK() {
			return nil, fmt.Errorf("Google Sheets was forced but %w (create a service-account key and point -creds or STB_CREDENTIALS at it)", creds.Err)
		}
		return RemoteDestination{SpreadsheetID: cfg.SpreadsheetID, Tab: cfg.TabName, Credentials: creds.Credentials}, nil
	}

	// Auto mode.
	switch {
	case !cfg.SpreadsheetConfigured():
		local.FallbackNote = "Google Sheets not configured (no spreadsheet id) - writing .xlsx instead"
	case !creds.OK():
		local.FallbackNote = fmt.Sprintf("Google Sheets not available (%v) - writing .xlsx instead", creds.Err)
	default:
		return RemoteDestination{SpreadsheetID: cfg.SpreadsheetID, Tab: cfg.TabName, Credentials: creds.Credentials}, nil
	}
	return local, nil
}

package zellaconv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// PlaceholderSpreadsheetID is the shipped default spreadsheet id. It is
// meant to be replaced by the user (flag, env var, or editing the default)
// and counts as "Google Sheets not configured" until it is.
const PlaceholderSpreadsheetID = "YOUR_SPREADSHEET_ID_HERE"

// Config is the layered tool configuration. Precedence, lowest to highest:
// built-in defaults, STB_* environment variables, command-line flags.
type Config struct {
	SpreadsheetID   string `env:"STB_SPREADSHEET_ID"`
	TabName         string `env:"STB_TAB"`
	CredentialsFile string `env:"STB_CREDENTIALS"`
	TemplateFile    string `env:"STB_TEMPLATE"`
}

// DefaultConfig returns the built-in defaults. The service-account key and
// the STB template are looked for next to the executable, where the
// drag-and-drop bundle places them.
func DefaultConfig() Config {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return Config{
		SpreadsheetID:   PlaceholderSpreadsheetID,
		TabName:         "Sheet1",
		CredentialsFile: filepath.Join(dir, "service_account.json"),
		TemplateFile:    filepath.Join(dir, "STB_Import_Template.xlsx"),
	}
}

// LoadConfig builds the configuration from defaults and environment.
// Flag overrides are applied on top by the caller via Override.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read STB_* environment variables: %w", err)
	}
	return cfg, nil
}

// Override applies per-run flag values; blank values leave the layer below
// in place.
func (c *Config) Override(spreadsheetID, tab, credentials, template string) {
	if spreadsheetID != "" {
		c.SpreadsheetID = spreadsheetID
	}
	if tab != "" {
		c.TabName = tab
	}
	if credentials != "" {
		c.CredentialsFile = credentials
	}
	if template != "" {
		c.TemplateFile = template
	}
}

// SpreadsheetConfigured reports whether a real spreadsheet id is set.
func (c Config) SpreadsheetConfigured() bool {
	return c.SpreadsheetID != "" && c.SpreadsheetID != PlaceholderSpreadsheetID
}

// DefaultOutputName is the date-stamped output file name used when no
// explicit -output path is given, so runs on different days never clobber
// each other.
func DefaultOutputName(now time.Time) string {
	return fmt.Sprintf("STB_Import_Merged_%s.xlsx", now.Format("20060102"))
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/stbtools/zellaconv"
)

type checkCmd struct {
	sheetID  string
	tab      string
	creds    string
	template string
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "verifies the Google Sheets setup and shows which destination would be used"
}
func (*checkCmd) Usage() string {
	return `z2stb check [-sheet-id <id>] [-tab <name>] [-creds <file>] [-template <file>]

  Resolves the layered configuration (defaults, STB_* environment, flags),
  tries the service-account credentials, and reports which destination a
  convert run would pick. Nothing is written.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sheetID, "sheet-id", "", "Google spreadsheet id for this run (overrides config).")
	f.StringVar(&c.tab, "tab", "", "Sheet tab name for this run (overrides config).")
	f.StringVar(&c.creds, "creds", "", "Path to the service_account.json key (overrides config).")
	f.StringVar(&c.template, "template", "", "Path to the STB .xlsx template (overrides config).")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := zellaconv.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg.Override(c.sheetID, c.tab, c.creds, c.template)

	creds := zellaconv.ResolveCredentials(ctx, cfg.CredentialsFile)

	var b strings.Builder
	b.WriteString("# Setup check\n\n")
	if cfg.SpreadsheetConfigured() {
		fmt.Fprintf(&b, "- spreadsheet id: `%s`\n", cfg.SpreadsheetID)
	} else {
		b.WriteString("- spreadsheet id: **not configured** (still the placeholder)\n")
	}
	fmt.Fprintf(&b, "- tab: `%s`\n", cfg.TabName)
	if creds.OK() {
		fmt.Fprintf(&b, "- credentials: resolved from `%s`\n", creds.Path)
	} else {
		fmt.Fprintf(&b, "- credentials: not usable (%v)\n", creds.Err)
	}
	if _, err := os.Stat(cfg.TemplateFile); err == nil {
		fmt.Fprintf(&b, "- template: found at `%s`\n", cfg.TemplateFile)
	} else {
		fmt.Fprintf(&b, "- template: **missing** at `%s` (needed for .xlsx output)\n", cfg.TemplateFile)
	}

	opts := zellaconv.SelectOptions{OutputFile: zellaconv.DefaultOutputName(time.Now())}
	dest, err := zellaconv.SelectDestination(opts, cfg, creds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(&b, "\nA convert run would write to %s.\n", dest.Describe())

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

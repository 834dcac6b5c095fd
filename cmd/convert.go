package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	"github.com/stbtools/zellaconv"
	"github.com/stbtools/zellaconv/gsheet"
	"github.com/stbtools/zellaconv/renderer"
	"github.com/stbtools/zellaconv/workbook"
)

type convertCmd struct {
	sheets   bool
	xlsx     bool
	sheetID  string
	tab      string
	creds    string
	template string
	output   string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "converts TradeZella CSV export(s) and writes the trades to STB"
}
func (*convertCmd) Usage() string {
	return `z2stb convert [-sheets|-xlsx] [-sheet-id <id>] [-tab <name>] [-creds <file>] [-template <file>] [-output <file>] <export.csv> [<export.csv> ...]

  Converts each TradeZella CSV export to the STB bulk-import layout and
  writes it to your STB Google Sheet, or to a template-seeded .xlsx file
  when Google Sheets is not configured. Each export is processed
  independently: one failing file does not stop the others.

Usage Examples:
# Auto mode: Google Sheets if credentials resolve, otherwise .xlsx.
$ z2stb convert trades_export.csv

# Force .xlsx output with an explicit path.
$ z2stb convert -xlsx -output trades.xlsx trades_export.csv
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sheets, "sheets", false, "Force Google Sheets output; fails if credentials cannot be resolved.")
	f.BoolVar(&c.xlsx, "xlsx", false, "Force local .xlsx output regardless of credentials.")
	f.StringVar(&c.sheetID, "sheet-id", "", "Google spreadsheet id for this run (overrides config).")
	f.StringVar(&c.tab, "tab", "", "Sheet tab name for this run (overrides config).")
	f.StringVar(&c.creds, "creds", "", "Path to the service_account.json key (overrides config).")
	f.StringVar(&c.template, "template", "", "Path to the STB .xlsx template (overrides config).")
	f.StringVar(&c.output, "output", "", "Output .xlsx path; a date-stamped name is used if omitted.")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one TradeZella CSV export.")
		return subcommands.ExitUsageError
	}
	if c.sheets && c.xlsx {
		fmt.Fprintln(os.Stderr, zellaconv.ErrConflictingStrategies)
		return subcommands.ExitUsageError
	}

	cfg, err := zellaconv.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg.Override(c.sheetID, c.tab, c.creds, c.template)

	output := c.output
	if output == "" {
		output = zellaconv.DefaultOutputName(time.Now())
	}

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		if err := c.convertOne(ctx, cfg, output, path); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", path, err)
			status = subcommands.ExitFailure
		}
	}
	return status
}

// convertOne runs the whole pipeline for a single export file.
func (c *convertCmd) convertOne(ctx context.Context, cfg zellaconv.Config, output, path string) error {
	rows, err := zellaconv.ReadTrades(path)
	if err != nil {
		return err
	}
	records := zellaconv.MapAll(rows)
	fmt.Printf("📂 %s: %d trade(s) found\n", filepath.Base(path), len(records))

	// Forced .xlsx never needs credentials; auto and forced Sheets do.
	var creds zellaconv.CredentialResult
	if !c.xlsx {
		creds = zellaconv.ResolveCredentials(ctx, cfg.CredentialsFile)
	}

	opts := zellaconv.SelectOptions{ForceRemote: c.sheets, ForceLocal: c.xlsx, OutputFile: output}
	dest, err := zellaconv.SelectDestination(opts, cfg, creds)
	if err != nil {
		return err
	}

	switch d := dest.(type) {
	case zellaconv.RemoteDestination:
		client, err := gsheet.NewClient(ctx, d.Credentials)
		if err != nil {
			return err
		}
		n, err := client.Append(ctx, d.SpreadsheetID, d.Tab, zellaconv.Rows(records))
		if err != nil {
			return err
		}
		fmt.Printf("✅ %d trade(s) appended to %s\n", n, d.Describe())

	case zellaconv.LocalDestination:
		if d.FallbackNote != "" {
			log.Println(d.FallbackNote)
		}
		res, err := workbook.Write(d.TemplateFile, d.OutputFile, records)
		if err != nil {
			return err
		}
		if res.Created {
			fmt.Printf("✅ %d trade(s) written to new workbook %s\n", res.Appended, res.Path)
		} else {
			fmt.Printf("✅ %d trade(s) merged into %s (%d duplicate(s) skipped)\n", res.Appended, res.Path, res.Skipped)
		}
	}

	printMarkdown(renderer.Summary(records))
	return nil
}

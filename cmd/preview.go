package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/stbtools/zellaconv"
	"github.com/stbtools/zellaconv/renderer"
)

type previewCmd struct{}

func (*previewCmd) Name() string { return "preview" }
func (*previewCmd) Synopsis() string {
	return "shows what an export converts to, without writing anywhere"
}
func (*previewCmd) Usage() string {
	return `z2stb preview <export.csv> [<export.csv> ...]

  Converts each export and renders the resulting STB rows and batch summary
  to the terminal. Nothing is written to Google Sheets or to disk, so this
  is safe to run before a real convert.
`
}

func (*previewCmd) SetFlags(f *flag.FlagSet) {}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one TradeZella CSV export.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		rows, err := zellaconv.ReadTrades(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		records := zellaconv.MapAll(rows)
		printMarkdown(renderer.Preview(filepath.Base(path), records))
	}
	return status
}

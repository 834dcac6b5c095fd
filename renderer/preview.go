// Package renderer produces the markdown views of a converted batch shown
// by the preview and convert commands.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/stbtools/zellaconv"
)

// Preview renders a converted batch as a markdown table of the columns a
// trader checks before importing, followed by the batch summary.
func Preview(source string, records []zellaconv.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", source)
	if len(records) == 0 {
		b.WriteString("No trades found in this export.\n")
		return b.String()
	}

	b.WriteString("| Trading Date | Entry Model | P/L | Outcome | Emotions |\n")
	b.WriteString("|---|---|---:|---|---|\n")
	for _, r := range records {
		pl := r.ProfitLoss
		if pnl, ok := r.PnL(); ok {
			pl = pnl.StringFixed(2)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(r.TradingDate), cell(r.EntryModel), cell(pl),
			cell(r.Outcome.String()), cell(r.Emotions))
	}
	b.WriteString("\n")
	b.WriteString(Summary(records))
	return b.String()
}

// Summary renders the win/loss/breakeven tally and the net P&L of a batch.
func Summary(records []zellaconv.Record) string {
	var wins, losses, breakevens, unclassified, unparsed int
	total := decimal.Zero
	for _, r := range records {
		switch r.Outcome {
		case zellaconv.OutcomeWin:
			wins++
		case zellaconv.OutcomeLoss:
			losses++
		case zellaconv.OutcomeBreakeven:
			breakevens++
		default:
			unclassified++
		}
		if pnl, ok := r.PnL(); ok {
			total = total.Add(pnl)
		} else {
			unparsed++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%d trade(s)**: %d win / %d loss / %d breakeven", len(records), wins, losses, breakevens)
	if unclassified > 0 {
		fmt.Fprintf(&b, " / %d unclassified", unclassified)
	}
	net := money.New(total.Shift(2).IntPart(), money.USD)
	fmt.Fprintf(&b, ", net P&L %s", net.Display())
	if unparsed > 0 {
		fmt.Fprintf(&b, " (%d row(s) had a non-numeric P&L and are not in the total)", unparsed)
	}
	b.WriteString("\n")
	return b.String()
}

// cell escapes a value for use inside a markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

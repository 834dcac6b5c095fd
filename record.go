package zellaconv

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency is the fixed currency literal written on every STB record.
const Currency = "USD"

// stbColumns is the STB bulk-import column layout, in sheet order. The .xlsx
// template remains the binding contract (its header row is read, not
// rewritten); this list mirrors it for rendering and tests.
var stbColumns = []string{
	"Trading Date",
	"Entry Model",
	"<--Other (Specify)",
	"Currency",
	"Profit / Loss",
	"Outcome",
	"Emotions",
	"Did emotions affect decisions?",
	"Was emotionally stable?",
	"Profit Target - Did you respect it?",
	"Stop Loss - Did you respect it?",
	"Entry Logic Explanation",
	"How did the trade play out?",
	"Notes for Coaches",
	"Screenshot URLs",
}

// Columns returns the STB column labels in sheet order.
func Columns() []string {
	cols := make([]string, len(stbColumns))
	copy(cols, stbColumns)
	return cols
}

// NumColumns is the width of an STB record.
func NumColumns() int { return len(stbColumns) }

// Record is one trade in the STB bulk-import layout. Every record carries
// the full fixed column set, whatever the source row looked like.
type Record struct {
	TradingDate       string
	EntryModel        string
	OtherModels       string // extra valid models that didn't fit the dropdown
	Currency          string
	ProfitLoss        string // raw export text, kept verbatim for non-numeric cells
	Outcome           Outcome
	Emotions          string
	EmotionsAffected  string
	EmotionallyStable string
	ProfitTarget      string
	StopLoss          string
	EntryLogic        string
	PlayOut           string
	CoachNotes        string
	ScreenshotURLs    string // no TradeZella equivalent, always blank

	pnl   decimal.Decimal
	pnlOK bool
}

// PnL returns the parsed net P&L; ok is false when the export cell was not
// numeric.
func (r Record) PnL() (pnl decimal.Decimal, ok bool) { return r.pnl, r.pnlOK }

// pnlCell is the Profit/Loss cell in its written form: the shortest float
// spelling when numeric (what a sheet cell reads back as), the raw export
// text otherwise.
func (r Record) pnlCell() string {
	if !r.pnlOK {
		return r.ProfitLoss
	}
	return strconv.FormatFloat(r.pnl.InexactFloat64(), 'f', -1, 64)
}

// Values returns the record as one sheet row. Numeric P&L is written as a
// number so the destination treats it as one.
func (r Record) Values() []any {
	row := make([]any, 0, len(stbColumns))
	for i, cell := range r.Strings() {
		if i == 4 && r.pnlOK { // Profit / Loss
			row = append(row, r.pnl.InexactFloat64())
			continue
		}
		row = append(row, cell)
	}
	return row
}

// Strings returns the record cells as strings, in sheet order. This is the
// form used to compare against rows read back from an existing workbook.
func (r Record) Strings() []string {
	return []string{
		r.TradingDate,
		r.EntryModel,
		r.OtherModels,
		r.Currency,
		r.pnlCell(),
		r.Outcome.String(),
		r.Emotions,
		r.EmotionsAffected,
		r.EmotionallyStable,
		r.ProfitTarget,
		r.StopLoss,
		r.EntryLogic,
		r.PlayOut,
		r.CoachNotes,
		r.ScreenshotURLs,
	}
}

// Rows converts a batch of records into sheet rows.
func Rows(records []Record) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}
	return rows
}

package zellaconv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// pnlCleaner strips the decorations brokers and spreadsheets put around
// money amounts: currency symbols, thousands separators, stray spaces.
var pnlCleaner = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "",
	",", "", " ", "", " ", "",
)

// ParsePnL parses a net P&L cell into an exact decimal, independent of
// locale formatting. Accounting-style parentheses mean a negative amount.
// The second return is false when the cell is not numeric at all.
func ParsePnL(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = pnlCleaner.Replace(s)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

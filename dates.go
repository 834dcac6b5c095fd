package zellaconv

import (
	"strings"
	"time"
)

// DateFormat is the format trading dates are written in. Both Google Sheets
// and Excel accept it as a date literal.
const DateFormat = "2006-01-02"

// tradeDateLayouts are the open-date spellings observed in TradeZella
// exports, tried in order.
var tradeDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateFormat,
	time.RFC3339,
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"Jan 2, 2006",
}

// parseTradeDate parses an open-date cell, trying each known layout.
func parseTradeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tradeDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTradingDate normalizes an open-date cell to DateFormat.
// Unparseable input yields a blank trading date rather than a guess.
func FormatTradingDate(s string) string {
	t, ok := parseTradeDate(s)
	if !ok {
		return ""
	}
	return t.Format(DateFormat)
}

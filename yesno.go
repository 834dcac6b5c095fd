package zellaconv

import "strings"

// NormalizeYesNo converts the many spellings of a yes/no self-assessment
// answer to canonical "yes" or "no".
//
// When both options appear in one cell (e.g. "Yes, No") TradeZella exported
// the full dropdown, meaning nothing was actually selected; that and any
// unrecognized spelling normalize to blank rather than a guess.
func NormalizeYesNo(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(v, "yes") && strings.Contains(v, "no") {
		return ""
	}
	switch v {
	case "yes", "y", "true", "1":
		return "yes"
	case "no", "n", "false", "0":
		return "no"
	}
	return ""
}

package zellaconv

import "strings"

// Outcome is the STB three-way trade classification.
type Outcome int

const (
	// OutcomeUnknown means neither the net P&L nor the status label was usable.
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeBreakeven
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeBreakeven:
		return "breakeven"
	default:
		// Unknown renders blank: a guessed outcome is worse than an empty cell.
		return ""
	}
}

// ClassifyOutcome derives the outcome of a trade from its net P&L and status
// label. The numeric value is authoritative: exactly zero is breakeven no
// matter what the status says, otherwise the sign decides. The status label
// is consulted only when the P&L cell is missing or not numeric.
func ClassifyOutcome(netPnL, status string) Outcome {
	if pnl, ok := ParsePnL(netPnL); ok {
		switch {
		case pnl.IsZero():
			return OutcomeBreakeven
		case pnl.IsPositive():
			return OutcomeWin
		default:
			return OutcomeLoss
		}
	}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "win", "winner":
		return OutcomeWin
	case "loss", "lose", "loser":
		return OutcomeLoss
	case "breakeven", "break-even", "break even", "be":
		return OutcomeBreakeven
	}
	return OutcomeUnknown
}

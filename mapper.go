package zellaconv

import "strings"

// EntryModelOther is the sentinel for trades whose entry model is missing or
// was never actually selected; it needs manual classification in STB.
const EntryModelOther = "other (specify)"

// validEntryModels are the STB Entry Model dropdown values, lowercased.
var validEntryModels = map[string]bool{
	"3x entry":                      true,
	"advanced structure entry":      true,
	"breakers":                      true,
	"catching the move of the day":  true,
	"catching the move of the week": true,
	"change of delivery":            true,
	"cisd":                          true,
	"displacement":                  true,
	"fail flip":                     true,
	"fcr":                           true,
	"inversions":                    true,
	"inverted fvg":                  true,
	"market structure shift":        true,
	"mmem":                          true,
	"ny fx entry":                   true,
	"smm entry":                     true,
	"time based entry model 1":      true,
	"time based entry model 2":      true,
	EntryModelOther:                 true,
}

// chooseEntryModel resolves the export's entry-model cell to one STB
// dropdown value plus the leftovers for the Other column.
//
// TradeZella can tag several models on one trade, and when nothing was
// selected at all it sometimes dumps the whole dropdown into the cell. The
// first valid model wins, extra valid models land in other, and a blank or
// full-dump cell resolves to the EntryModelOther sentinel. The legacy "csid"
// typo from older exports is normalized to "cisd".
func chooseEntryModel(cell string) (model, other string) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), "csid", "cisd")
	if cell == "" {
		return EntryModelOther, "-"
	}

	var matches []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(cell, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != EntryModelOther && validEntryModels[part] && !seen[part] {
			seen[part] = true
			matches = append(matches, part)
		}
	}

	// Every selectable model present means a dropdown dump, not a selection.
	if len(matches) >= len(validEntryModels)-1 {
		return EntryModelOther, "-"
	}
	switch len(matches) {
	case 0:
		return EntryModelOther, "-"
	case 1:
		return matches[0], "-"
	default:
		return matches[0], strings.Join(matches[1:], ", ")
	}
}

// MapRow converts one TradeZella trade into one STB record. The mapping is
// strictly one to one: rows are never dropped, split or merged here, and a
// malformed P&L only degrades the outcome classification.
func MapRow(src SourceRow) Record {
	model, other := chooseEntryModel(src.EntryModel)
	pnl, pnlOK := ParsePnL(src.NetPnL)
	return Record{
		TradingDate:       FormatTradingDate(src.OpenDate),
		EntryModel:        model,
		OtherModels:       other,
		Currency:          Currency,
		ProfitLoss:        src.NetPnL,
		Outcome:           ClassifyOutcome(src.NetPnL, src.Status),
		Emotions:          src.Emotions,
		EmotionsAffected:  NormalizeYesNo(src.EmotionsAffected),
		EmotionallyStable: NormalizeYesNo(src.EmotionallyStable),
		ProfitTarget:      src.ProfitTarget,
		StopLoss:          src.StopLoss,
		EntryLogic:        src.EntryLogic,
		PlayOut:           src.PlayOut,
		CoachNotes:        src.CoachNotes,
		ScreenshotURLs:    "",

		pnl:   pnl,
		pnlOK: pnlOK,
	}
}

// MapAll converts a batch of trades, one record per source row.
func MapAll(rows []SourceRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, MapRow(row))
	}
	return records
}

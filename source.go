package zellaconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

// Column labels of a TradeZella export. Matching is by exact header label;
// the odd triple spaces are genuinely what TradeZella emits.
const (
	colOpenDate          = "Open Date"
	colEntryModel        = "Entry Model"
	colNetPnL            = "Net P&L"
	colStatus            = "Status"
	colEmotions          = "Emotions"
	colEmotionsAffected  = "Did Emotions Affect Decisions?"
	colEmotionallyStable = "Was Emotionally Stable?"
	colProfitTarget      = "Profit Target   Did You Respect It?"
	colStopLoss          = "Stop Loss   Did You Respect It?"
	colEntryLogic        = "Entry Logic Explanation"
	colPlayOut           = "How Did The Trade Play Out?"
	colCoachNotes        = "Notes For Coaches"
)

var expectedColumns = []string{
	colOpenDate, colEntryModel, colNetPnL, colStatus, colEmotions,
	colEmotionsAffected, colEmotionallyStable, colProfitTarget, colStopLoss,
	colEntryLogic, colPlayOut, colCoachNotes,
}

// SourceRow is one trade as exported by TradeZella. Fields for columns
// absent from the export stay blank.
type SourceRow struct {
	OpenDate          string
	EntryModel        string
	NetPnL            string
	Status            string
	Emotions          string
	EmotionsAffected  string
	EmotionallyStable string
	ProfitTarget      string
	StopLoss          string
	EntryLogic        string
	PlayOut           string
	CoachNotes        string
}

// ReadTrades loads a TradeZella CSV export into an ordered list of trades.
func ReadTrades(path string) ([]SourceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open CSV export %q: %w", path, err)
	}
	defer f.Close()
	rows, err := ParseTrades(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV export %q: %w", path, err)
	}
	return rows, nil
}

// ParseTrades reads a TradeZella export from r.
//
// The first record is the header row; expected columns missing from it are
// reported as a warning and the matching fields stay blank on every row.
// Rows without an Open Date are metadata/footer rows and are dropped.
// Surviving trades are sorted chronologically by open date, with rows whose
// date cannot be parsed kept last in input order.
func ParseTrades(r io.Reader) ([]SourceRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("export is empty, expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, label := range header {
		label = strings.TrimPrefix(label, "\ufeff") // exports from Windows carry a BOM
		index[strings.TrimSpace(label)] = i
	}
	var missing []string
	for _, label := range expectedColumns {
		if _, ok := index[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		log.Printf("warning: export is missing column(s) %s, the matching STB fields will be blank", strings.Join(missing, ", "))
	}

	field := func(record []string, label string) string {
		i, ok := index[label]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []SourceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV record: %w", err)
		}
		row := SourceRow{
			OpenDate:          field(record, colOpenDate),
			EntryModel:        field(record, colEntryModel),
			NetPnL:            field(record, colNetPnL),
			Status:            field(record, colStatus),
			Emotions:          field(record, colEmotions),
			EmotionsAffected:  field(record, colEmotionsAffected),
			EmotionallyStable: field(record, colEmotionallyStable),
			ProfitTarget:      field(record, colProfitTarget),
			StopLoss:          field(record, colStopLoss),
			EntryLogic:        field(record, colEntryLogic),
			PlayOut:           field(record, colPlayOut),
			CoachNotes:        field(record, colCoachNotes),
		}
		if row.OpenDate == "" {
			// TradeZella appends summary/footer lines with no open date.
			continue
		}
		rows = append(rows, row)
	}

	sortTrades(rows)
	return rows, nil
}

// sortTrades orders trades chronologically by open date. Rows with an
// unparseable date sort after all dated rows, keeping their input order.
func sortTrades(rows []SourceRow) {
	type dated struct {
		row SourceRow
		t   time.Time
		ok  bool
	}
	sorted := make([]dated, len(rows))
	for i, row := range rows {
		t, ok := parseTradeDate(row.OpenDate)
		sorted[i] = dated{row, t, ok}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.t.Before(b.t)
	})
	for i, d := range sorted {
		rows[i] = d.row
	}
}

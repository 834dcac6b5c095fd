package zellaconv

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

const exportHeader = "Open Date,Entry Model,Net P&L,Status,Emotions,Did Emotions Affect Decisions?,Was Emotionally Stable?,Profit Target   Did You Respect It?,Stop Loss   Did You Respect It?,Entry Logic Explanation,How Did The Trade Play Out?,Notes For Coaches"

func TestParseTrades(t *testing.T) {
	csv := exportHeader + "\n" +
		"2026-02-19,displacement,50,Win,calm,No,Yes,yes,yes,clean setup,to target,good\n" +
		"2026-02-18,,-125.50,Loss,fomo,Yes,No,no,no,chased,stopped out,slow down\n" +
		",,,,,,,,,,,\n" + // footer row without an open date
		"2026-02-17,breakers,0,Win,,,,,,,,\n"

	rows, err := ParseTrades(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (footer row dropped)", len(rows))
	}
	// Chronological order, not input order.
	wantDates := []string{"2026-02-17", "2026-02-18", "2026-02-19"}
	for i, want := range wantDates {
		if rows[i].OpenDate != want {
			t.Errorf("rows[%d].OpenDate = %q, want %q", i, rows[i].OpenDate, want)
		}
	}
	if rows[1].NetPnL != "-125.50" || rows[1].Status != "Loss" {
		t.Errorf("rows[1] = %+v, fields not mapped from header labels", rows[1])
	}
}

func TestParseTradesHeaderOnly(t *testing.T) {
	rows, err := ParseTrades(strings.NewReader(exportHeader + "\n"))
	if err != nil {
		t.Fatalf("header-only export must succeed, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParseTradesMissingColumns(t *testing.T) {
	// Only a subset of the expected schema: the rest degrades to blank.
	csv := "Open Date,Net P&L\n2026-02-18,-10\n"
	rows, err := ParseTrades(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("missing columns must not be fatal, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.NetPnL != "-10" {
		t.Errorf("NetPnL = %q, want -10", row.NetPnL)
	}
	if row.Status != "" || row.Emotions != "" || row.EntryModel != "" {
		t.Errorf("absent columns must stay blank, got %+v", row)
	}
}

func TestParseTradesEmptyInput(t *testing.T) {
	if _, err := ParseTrades(strings.NewReader("")); err == nil {
		t.Error("an export without even a header row should be an error")
	}
}

func TestParseTradesUnparseableDatesSortLast(t *testing.T) {
	csv := "Open Date,Net P&L\n" +
		"someday,1\n" +
		"2026-02-18,2\n" +
		"eventually,3\n"
	rows, err := ParseTrades(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2026-02-18", "someday", "eventually"}
	for i, w := range want {
		if rows[i].OpenDate != w {
			t.Errorf("rows[%d].OpenDate = %q, want %q", i, rows[i].OpenDate, w)
		}
	}
}

func TestReadTradesMissingFile(t *testing.T) {
	_, err := ReadTrades("no/such/export.csv")
	if err == nil {
		t.Fatal("want an error for a missing input file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "no/such/export.csv") {
		t.Errorf("error should name the attempted path, got %v", err)
	}
}

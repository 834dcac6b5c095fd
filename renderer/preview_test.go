package renderer

import (
	"strings"
	"testing"

	"github.com/stbtools/zellaconv"
)

func batch() []zellaconv.Record {
	return zellaconv.MapAll([]zellaconv.SourceRow{
		{OpenDate: "2026-02-18", NetPnL: "-125.50", Status: "Loss", EntryModel: "displacement", Emotions: "fomo"},
		{OpenDate: "2026-02-19", NetPnL: "200", Status: "Win"},
		{OpenDate: "2026-02-20", NetPnL: "0", Status: "Win"},
	})
}

func TestSummary(t *testing.T) {
	got := Summary(batch())
	for _, want := range []string{"3 trade(s)", "1 win", "1 loss", "1 breakeven", "$74.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, want it to contain %q", got, want)
		}
	}
}

func TestSummaryNotesUnparsedPnL(t *testing.T) {
	records := zellaconv.MapAll([]zellaconv.SourceRow{
		{OpenDate: "2026-02-18", NetPnL: "n/a", Status: "Win"},
	})
	got := Summary(records)
	if !strings.Contains(got, "non-numeric") {
		t.Errorf("Summary() = %q, want a note about non-numeric P&L", got)
	}
}

func TestPreview(t *testing.T) {
	got := Preview("trades_export.csv", batch())
	for _, want := range []string{
		"# trades_export.csv",
		"| Trading Date |",
		"| 2026-02-18 | displacement | -125.50 | loss | fomo |",
		"| 2026-02-19 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Preview() missing %q in:\n%s", want, got)
		}
	}
}

func TestPreviewEmptyBatch(t *testing.T) {
	got := Preview("empty.csv", nil)
	if !strings.Contains(got, "No trades") {
		t.Errorf("Preview() = %q, want an empty-batch message", got)
	}
}

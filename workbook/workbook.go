// Package workbook writes converted trade rows into a local .xlsx file
// seeded from the STB import template, merging instead of overwriting when
// the output file already exists.
package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/stbtools/zellaconv"
)

// ErrTemplateNotFound means neither an existing output file nor the STB
// template could be found. There is no unformatted fallback: the template's
// layout is the output schema contract.
var ErrTemplateNotFound = errors.New("STB template not found")

// Result describes what a Write did to the output file.
type Result struct {
	Path     string
	Created  bool // output was freshly seeded from the template
	Appended int
	Skipped  int // exact duplicates of rows already in the file
}

// Write merges records into the workbook at outputPath.
//
// If the output file exists, records are appended after its data rows and
// rows identical across all columns to an existing row are skipped, so
// re-running the same export is idempotent. Otherwise the file is seeded
// from the template at templatePath, keeping the template's header and
// formatting and clearing any sample data rows.
func Write(templatePath, outputPath string, records []zellaconv.Record) (Result, error) {
	f, created, err := open(templatePath, outputPath)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	existing, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("cannot read rows of %q: %w", sheet, err)
	}
	if err := checkHeader(existing); err != nil {
		return Result{}, err
	}

	if created {
		// Drop the template's sample rows, keep the header.
		for row := len(existing); row >= 2; row-- {
			if err := f.RemoveRow(sheet, row); err != nil {
				return Result{}, fmt.Errorf("cannot clear template row %d: %w", row, err)
			}
		}
		existing = existing[:1]
	}

	seen := make(map[string]bool, len(existing))
	for _, row := range existing[1:] {
		seen[rowKey(row)] = true
	}

	res := Result{Path: outputPath, Created: created}
	next := len(existing) + 1
	for _, record := range records {
		cells := record.Strings()
		if seen[rowKey(cells)] {
			res.Skipped++
			continue
		}
		seen[rowKey(cells)] = true
		cell, err := excelize.CoordinatesToCellName(1, next)
		if err != nil {
			return Result{}, fmt.Errorf("cannot address row %d: %w", next, err)
		}
		values := record.Values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return Result{}, fmt.Errorf("cannot write row %d: %w", next, err)
		}
		next++
		res.Appended++
	}

	if err := f.SaveAs(outputPath); err != nil {
		return Result{}, fmt.Errorf("cannot save workbook %q: %w", outputPath, err)
	}
	return res, nil
}

// open returns the workbook to write into: the existing output file when
// present, else a fresh copy of the template.
func open(templatePath, outputPath string) (f *excelize.File, created bool, err error) {
	f, err = excelize.OpenFile(outputPath)
	if err == nil {
		return f, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("cannot open existing output %q: %w", outputPath, err)
	}

	f, err = excelize.OpenFile(templatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("%w at %q: place STB_Import_Template.xlsx next to the tool or pass -template", ErrTemplateNotFound, templatePath)
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot open template %q: %w", templatePath, err)
	}
	return f, true, nil
}

// checkHeader verifies the workbook header row against the record width.
// The template is the schema contract; a narrower or missing header means
// the wrong file is being written into.
func checkHeader(rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("workbook has no header row, expected the %d STB columns", zellaconv.NumColumns())
	}
	if len(rows[0]) < zellaconv.NumColumns() {
		return fmt.Errorf("workbook header has %d columns, expected the %d STB columns: is this the STB import template?", len(rows[0]), zellaconv.NumColumns())
	}
	return nil
}

// rowKey canonicalizes a row for duplicate detection. Rows read back from
// excelize drop trailing empty cells, so the key pads to the full width.
func rowKey(cells []string) string {
	padded := make([]string, zellaconv.NumColumns())
	for i := range padded {
		if i < len(cells) {
			padded[i] = strings.TrimSpace(cells[i])
		}
	}
	return strings.Join(padded, "\x1f")
}

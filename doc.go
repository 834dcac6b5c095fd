// Package zellaconv converts a TradeZella trade-journal CSV export into the
// row layout expected by the SmartTraderAI (STB) bulk import sheet.
//
// The conversion is a linear, single-pass transform:
//   - Reading: one CSV export is loaded into an ordered set of source rows,
//     metadata/footer rows are dropped and trades are sorted chronologically.
//   - Mapping: each source row produces exactly one STB record. Outcome is
//     derived from the numeric net P&L (status label as fallback), yes/no
//     answers are normalized, and the entry model is validated against the
//     STB dropdown values.
//   - Writing: records are either appended to a live Google Sheet or merged
//     into a local .xlsx file seeded from the STB template. The destination
//     is a pure decision over force flags and credential resolution.
//
// This package holds the transform and decision logic; the gsheet and
// workbook packages hold the two output backends, and the z2stb command-line
// tool wires them together.
package zellaconv

package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/katmcmillan/pick-me-randomly/models"
)

// ErrDataUnavailable marks a missing or unreadable spreadsheet source.
// Callers degrade to empty collections and keep running.
var ErrDataUnavailable = errors.New("data unavailable")

// Workbook sheet names, inherited from the NPS spreadsheets.
const (
	CollectionSheet = "Original_Swatches"
	HistorySheet    = "Sheet1"
	SelectionsSheet = "Selections"
)

// historyFirstColumn is where the wear-history block starts on the history
// sheet (column F); the block runs Date, Number, Brand, Shade Name,
// Description, Finish, two unused columns, Notes.
const historyFirstColumn = 5

// Date formats observed in the history sheet. Cells may also hold raw Excel
// serial dates, handled separately.
var historyDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"2 Jan 2006",
	"2-Jan-06",
}

// LoadCollection reads the full polish catalog from the collection workbook.
// Optional columns missing from the sheet load as empty strings; a missing
// file or sheet yields an empty catalog and ErrDataUnavailable.
func LoadCollection(path string) ([]models.Polish, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(CollectionSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", ErrDataUnavailable, CollectionSheet, err)
	}
	if len(rows) == 0 {
		return []models.Polish{}, nil
	}

	cols := headerIndex(rows[0])
	polishes := make([]models.Polish, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := models.Polish{
			Number:      cellByHeader(row, cols, "Number"),
			Brand:       cellByHeader(row, cols, "Brand"),
			ShadeName:   cellByHeader(row, cols, "Shade Name"),
			Description: cellByHeader(row, cols, "Description"),
			Finish:      cellByHeader(row, cols, "Finish"),
			Collection:  cellByHeader(row, cols, "Collection"),
			Notes:       cellByHeader(row, cols, "Notes"),
		}
		if p.Number == "" && p.Brand == "" && p.ShadeName == "" {
			continue // blank filler row
		}
		polishes = append(polishes, p)
	}

	return polishes, nil
}

// LoadUsedNumbers reads the set of previously presented catalog numbers from
// the selections workbook. A missing file or sheet yields an empty set and
// ErrDataUnavailable: every polish is then fair game again.
func LoadUsedNumbers(path string) (map[string]bool, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return map[string]bool{}, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(SelectionsSheet)
	if err != nil {
		return map[string]bool{}, fmt.Errorf("%w: read sheet %s: %v", ErrDataUnavailable, SelectionsSheet, err)
	}
	if len(rows) == 0 {
		return map[string]bool{}, nil
	}

	cols := headerIndex(rows[0])
	used := make(map[string]bool)
	for _, row := range rows[1:] {
		if num := cellByHeader(row, cols, "Number"); num != "" {
			used[num] = true
		}
	}

	return used, nil
}

// LoadHistory reads the personal wear history from the collection workbook.
// Rows without a parseable date are dropped; an empty brand becomes
// "Unknown". A missing file or sheet yields an empty history and
// ErrDataUnavailable.
func LoadHistory(path string) ([]models.HistoryEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", ErrDataUnavailable, HistorySheet, err)
	}

	history := []models.HistoryEntry{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		date, ok := parseHistoryDate(cellAt(row, historyFirstColumn))
		if !ok {
			continue
		}
		e := models.HistoryEntry{
			Date:        date,
			Number:      cellAt(row, historyFirstColumn+1),
			Brand:       cellAt(row, historyFirstColumn+2),
			ShadeName:   cellAt(row, historyFirstColumn+3),
			Description: cellAt(row, historyFirstColumn+4),
			Finish:      cellAt(row, historyFirstColumn+5),
			Notes:       cellAt(row, historyFirstColumn+8),
		}
		if e.Brand == "" {
			e.Brand = models.UnknownBrand
		}
		history = append(history, e)
	}

	return history, nil
}

// headerIndex maps trimmed header names to their column index.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name != "" {
			cols[name] = i
		}
	}
	return cols
}

// cellByHeader returns the trimmed cell under the named column, or "" when
// the column is absent from the sheet.
func cellByHeader(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok {
		return ""
	}
	return cellAt(row, i)
}

// cellAt returns the trimmed cell at index i. GetRows trims trailing empty
// cells, so short rows read as empty strings.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseHistoryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range historyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Unformatted cells surface as Excel serial dates
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package catalog

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katmcmillan/pick-me-randomly/models"
)

// AppendSelections appends one row per polish to the Selections sheet of the
// selections workbook, creating the workbook or sheet as needed. This is how
// presented batches survive restarts: the used set reloads from this sheet.
func AppendSelections(path string, polishes []models.Polish) error {
	if len(polishes) == 0 {
		return nil
	}

	created := false
	f, err := excelize.OpenFile(path)
	if err != nil {
		f = excelize.NewFile()
		created = true
	}
	defer f.Close()

	next, err := nextSelectionsRow(f)
	if err != nil {
		return err
	}

	for i, p := range polishes {
		row := next + i
		numCell, _ := excelize.CoordinatesToCellName(1, row)
		votesCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(SelectionsSheet, numCell, p.Number); err != nil {
			return fmt.Errorf("write selection %s: %w", p.Number, err)
		}
		if err := f.SetCellValue(SelectionsSheet, votesCell, 1); err != nil {
			return fmt.Errorf("write selection %s: %w", p.Number, err)
		}
	}

	if created {
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("save selections workbook: %w", err)
		}
		return nil
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save selections workbook: %w", err)
	}
	return nil
}

// nextSelectionsRow ensures the Selections sheet and its header exist and
// returns the first free row.
func nextSelectionsRow(f *excelize.File) (int, error) {
	idx, err := f.GetSheetIndex(SelectionsSheet)
	if err != nil {
		return 0, fmt.Errorf("find sheet %s: %w", SelectionsSheet, err)
	}
	if idx < 0 {
		if _, err := f.NewSheet(SelectionsSheet); err != nil {
			return 0, fmt.Errorf("create sheet %s: %w", SelectionsSheet, err)
		}
	}

	rows, err := f.GetRows(SelectionsSheet)
	if err != nil {
		return 0, fmt.Errorf("read sheet %s: %w", SelectionsSheet, err)
	}
	if len(rows) == 0 {
		if err := f.SetCellValue(SelectionsSheet, "A1", "Number"); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
		if err := f.SetCellValue(SelectionsSheet, "B1", "Votes"); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
		return 2, nil
	}
	return len(rows) + 1, nil
}

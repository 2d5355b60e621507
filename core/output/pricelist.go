package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gaurav-prasanna/updatesheet/core"
)

const (
	ProcessedSheet = "Processed Data"
	RawLinesSheet  = "Raw Lines"
)

var (
	priceListHeaders = []any{"Section", "Item", "Description", "Unit Price", "Cut-Off"}
	rawLineHeaders   = []any{"Page", "Line"}
)

// WritePriceList writes extracted items to a new workbook at path. With debug
// set, the segmented raw lines go to a second sheet.
func WritePriceList(path string, items []core.PriceListItem, raw []core.RawLine, debug bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ProcessedSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, priceListHeaders)
	for _, it := range items {
		rows = append(rows, []any{it.Section, it.Item, it.Description, it.UnitPrice, it.CutOff})
	}
	if err := writeRows(f, ProcessedSheet, rows); err != nil {
		return err
	}

	if debug && len(raw) > 0 {
		if _, err := f.NewSheet(RawLinesSheet); err != nil {
			return fmt.Errorf("creating sheet: %w", err)
		}
		rows = rows[:0]
		rows = append(rows, rawLineHeaders)
		for _, l := range raw {
			rows = append(rows, []any{l.Page, l.Line})
		}
		if err := writeRows(f, RawLinesSheet, rows); err != nil {
			return err
		}
	}

	if err := ensureParent(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

package output

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// UpdatesSheet is the sheet that receives update records.
const UpdatesSheet = "Updates"

// DefaultHeaders is the column schema of a fresh updates workbook.
var DefaultHeaders = []string{
	"Provider", "Title", "URL", "Date Posted", "Description", "Links",
	"AWS Product", "Azure Products", "Azure Categories", "Azure Status", "Azure Update Type",
}

// Record field keys understood by Workbook.Append.
const (
	FieldProvider    = "provider"
	FieldTitle       = "title"
	FieldURL         = "url"
	FieldDatePosted  = "date_posted"
	FieldDescription = "description"
	FieldLinks       = "links"
	FieldProduct     = "product"
	FieldProductList = "product_list"
	FieldCategories  = "categories"
	FieldStatus      = "status"
	FieldUpdateType  = "update_type"
)

// Workbook is the xlsx-backed Sink for update records. Rows are appended
// after whatever the file already holds; nothing existing is rewritten.
type Workbook struct {
	path    string
	file    *excelize.File
	headers []string
	nextRow int
	logger  *slog.Logger
}

// OpenWorkbook loads path or starts a new workbook. A file that is not a
// readable workbook is replaced by a fresh one when flushed.
func OpenWorkbook(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Workbook{path: path, headers: slices.Clone(DefaultHeaders), logger: logger}

	if _, err := os.Stat(path); err != nil {
		return w, w.create()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Warn("existing workbook is not readable, starting a new one", "path", path, "error", err)
		return w, w.create()
	}
	w.file = f
	if err := w.adopt(); err != nil {
		f.Close()
		logger.Warn("existing workbook could not be loaded, starting a new one", "path", path, "error", err)
		return w, w.create()
	}
	return w, nil
}

func (w *Workbook) create() error {
	w.file = excelize.NewFile()
	w.headers = slices.Clone(DefaultHeaders)
	if err := w.file.SetSheetName(w.file.GetSheetName(0), UpdatesSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	w.nextRow = 1
	return w.writeRow(toCells(w.headers))
}

// adopt selects the Updates sheet of a loaded file and decides the header schema.
func (w *Workbook) adopt() error {
	sheets := w.file.GetSheetList()
	if idx, _ := w.file.GetSheetIndex(UpdatesSheet); idx < 0 {
		renamed := false
		if len(sheets) == 1 {
			rows, err := w.file.GetRows(sheets[0])
			if err != nil {
				return fmt.Errorf("reading sheet %s: %w", sheets[0], err)
			}
			if len(rows) <= 1 {
				if err := w.file.SetSheetName(sheets[0], UpdatesSheet); err != nil {
					return fmt.Errorf("renaming sheet: %w", err)
				}
				renamed = true
			}
		}
		if !renamed {
			w.logger.Info("creating sheet", "sheet", UpdatesSheet, "path", w.path)
			if _, err := w.file.NewSheet(UpdatesSheet); err != nil {
				return fmt.Errorf("creating sheet: %w", err)
			}
		}
	}

	rows, err := w.file.GetRows(UpdatesSheet)
	if err != nil {
		return fmt.Errorf("reading sheet %s: %w", UpdatesSheet, err)
	}
	w.nextRow = len(rows) + 1

	if len(rows) == 0 {
		return w.writeRow(toCells(w.headers))
	}

	first := rows[0]
	if len(first) > 3 && slices.Contains(first, "Title") {
		w.headers = slices.Clone(first)
		w.logger.Debug("adopted existing headers", "headers", w.headers)
		return nil
	}
	if slices.IndexFunc(first, func(c string) bool { return c != "" }) < 0 {
		return w.writeRow(toCells(w.headers))
	}
	w.logger.Warn("sheet has data but unrecognized headers; keeping default schema without rewriting", "path", w.path)
	return nil
}

// Headers returns the column schema rows are written under.
func (w *Workbook) Headers() []string {
	return slices.Clone(w.headers)
}

// Append writes one record as the next row. Provider-specific columns stay
// blank for the other provider; unknown headers are looked up by name.
func (w *Workbook) Append(record map[string]string) error {
	provider := record[FieldProvider]
	row := make([]any, len(w.headers))
	for i, h := range w.headers {
		var v string
		switch h {
		case "Provider":
			v = provider
		case "Title":
			v = record[FieldTitle]
		case "URL":
			v = record[FieldURL]
		case "Date Posted":
			v = record[FieldDatePosted]
		case "Description":
			v = record[FieldDescription]
		case "Links":
			v = record[FieldLinks]
		case "AWS Product":
			v = onlyFor(provider, core.ProviderAWS, record[FieldProduct])
		case "Azure Products":
			v = onlyFor(provider, core.ProviderAzure, record[FieldProductList])
		case "Azure Categories":
			v = onlyFor(provider, core.ProviderAzure, record[FieldCategories])
		case "Azure Status":
			v = onlyFor(provider, core.ProviderAzure, record[FieldStatus])
		case "Azure Update Type":
			v = onlyFor(provider, core.ProviderAzure, record[FieldUpdateType])
		default:
			v = record[h]
		}
		row[i] = v
	}
	return w.writeRow(row)
}

// Flush saves the workbook to its path.
func (w *Workbook) Flush() error {
	if err := ensureParent(w.path); err != nil {
		return err
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) writeRow(values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(UpdatesSheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", w.nextRow, err)
	}
	w.nextRow++
	return nil
}

// RecordFields flattens a canonical record into the field map Append takes.
func RecordFields(r core.CanonicalRecord) map[string]string {
	return map[string]string{
		FieldProvider:    string(r.Provider),
		FieldTitle:       r.Title,
		FieldURL:         r.URL,
		FieldDatePosted:  r.DatePosted,
		FieldDescription: r.Description,
		FieldLinks:       r.Links,
		FieldProduct:     r.Product,
		FieldProductList: r.ProductList,
		FieldCategories:  r.Categories,
		FieldStatus:      r.Status,
		FieldUpdateType:  r.UpdateType,
	}
}

func onlyFor(provider string, want core.Provider, v string) string {
	if provider != string(want) {
		return ""
	}
	return v
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

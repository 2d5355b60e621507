// Package output persists pipeline results: the updates workbook sink, the
// price-list workbook, and plain files such as the JSON export.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// PriceListPath derives the workbook path for a PDF: same directory and base
// name, with an .xlsx extension.
func PriceListPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".xlsx"
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Package export holds the record sinks: writers that consume the final
// ordered record list and produce tabular or document output. Sinks are
// thin; a single record failing to embed never aborts a write.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/mvolk/eqsift"
)

const equationsSheet = "Equations"

// WriteWorkbook writes records to an xlsx workbook with one row per
// equation and the snapshot image embedded next to it. Records with a
// missing or unreadable snapshot keep their row without a picture.
func WriteWorkbook(records []eqsift.Record, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", equationsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headers := []any{"ID", "Page", "Equation (extracted)", "Context", "Snapshot"}
	if err := f.SetSheetRow(equationsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	// Leave room for images in the snapshot column.
	for col, width := range map[string]float64{"A": 6, "B": 7, "C": 60, "D": 60, "E": 34} {
		if err := f.SetColWidth(equationsSheet, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	for i, rec := range records {
		row := i + 2
		values := []any{rec.ID, rec.Page, rec.Text, rec.Context}
		if err := f.SetSheetRow(equationsSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		if rec.ImagePath == "" {
			continue
		}
		err := f.AddPicture(equationsSheet, fmt.Sprintf("E%d", row), rec.ImagePath,
			&excelize.GraphicOptions{ScaleX: 0.5, ScaleY: 0.5})
		if err != nil {
			// Snapshot missing or unreadable: keep the row text-only.
			continue
		}
		if err := f.SetRowHeight(equationsSheet, row, 90); err != nil {
			return fmt.Errorf("sizing row %d: %w", row, err)
		}
	}

	if err := f.AutoFilter(equationsSheet, fmt.Sprintf("A1:E%d", len(records)+1), nil); err != nil {
		return fmt.Errorf("setting autofilter: %w", err)
	}
	if err := f.SetPanes(equationsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// ensureDir creates the parent directory of path when needed.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return nil
}

// reports/writer.go
package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"erpdash/config"
	"erpdash/models"
)

// timestampLayout produces sortable artifact names, e.g.
// daily_report_20260825_080000.xlsx. The sweeper can order artifacts by
// name alone.
const timestampLayout = "20060102_150405"

const (
	workbookBase = "daily_report"
	summarySheet = "Summary"
)

// Writer renders a snapshot into the report artifacts: one multi-sheet
// workbook and one CSV export per dataset. Each artifact is written under
// a timestamped name first and only then copied to its stable "latest"
// name, so a failed write can never corrupt the latest pointer. Only the
// refresh orchestrator calls Write, which keeps writes for the same
// artifact kind from interleaving.
type Writer struct {
	dir    string
	csvDir string
	log    *zap.Logger
}

func NewWriter(cfg config.ReportsConfig, log *zap.Logger) *Writer {
	return &Writer{
		dir:    cfg.Dir,
		csvDir: cfg.CSVDir,
		log:    log,
	}
}

// Write produces all artifacts for the snapshot. Any failure aborts the
// call; latest pointers for artifacts not yet reached stay untouched.
func (w *Writer) Write(snap *models.Snapshot) error {
	ts := time.Now().Format(timestampLayout)

	if err := w.writeWorkbook(snap, ts); err != nil {
		return fmt.Errorf("failed to generate workbook: %w", err)
	}
	if err := w.writeCSVExports(snap, ts); err != nil {
		return fmt.Errorf("failed to generate CSV exports: %w", err)
	}
	return nil
}

func (w *Writer) writeWorkbook(snap *models.Snapshot, ts string) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, k := range models.Kinds {
		if _, err := f.NewSheet(k.SheetName()); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", k.SheetName(), err)
		}
		if err := w.writeSheet(f, k.SheetName(), headerRow(k), dataRows(snap, k)); err != nil {
			return fmt.Errorf("failed to fill sheet %s: %w", k.SheetName(), err)
		}
	}
	if err := w.writeSummarySheet(f, models.ComputeSummary(snap)); err != nil {
		return fmt.Errorf("failed to fill summary sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.xlsx", workbookBase, ts))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	latest := filepath.Join(w.dir, workbookBase+".xlsx")
	if err := copyFile(path, latest); err != nil {
		return fmt.Errorf("failed to update latest workbook: %w", err)
	}

	w.log.Info("workbook generated", zap.String("path", path))
	return nil
}

// writeSheet fills a sheet with a styled header row and data rows, sizes
// the columns and freezes the header.
func (w *Writer) writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	headerEnd, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", headerEnd, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (w *Writer) writeSummarySheet(f *excelize.File, summary models.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	headers := []interface{}{"Department", "Total Records", "Pending", "Completed", "Aggregate", "Value"}
	rows := make([][]interface{}, 0, len(summary.Departments))
	for _, d := range summary.Departments {
		rows = append(rows, []interface{}{
			d.Department, d.TotalRecords, d.Pending, d.Completed, d.AggregateLabel, d.AggregateValue,
		})
	}
	if err := w.writeSheet(f, summarySheet, headers, rows); err != nil {
		return err
	}

	// Title row above the table.
	if err := f.InsertRows(summarySheet, 1, 1); err != nil {
		return err
	}
	title := fmt.Sprintf("ERP Daily Summary Report - %s", summary.LastUpdated.Format("2006-01-02"))
	if err := f.SetCellValue(summarySheet, "A1", title); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "366092"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.MergeCell(summarySheet, "A1", "F1"); err != nil {
		return err
	}

	// The insert shifted the header row down; keep title and header frozen.
	return f.SetPanes(summarySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	})
}

// copyFile duplicates src to dst. The source stays in place; the
// timestamped artifact remains the durable historical record. The copy
// goes through a temp sibling and an atomic rename, so a failure mid-copy
// leaves any previous dst intact.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to copy %s to %s: %w", src, tmp, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}
	return nil
}

// reports/csv.go
package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"go.uber.org/zap"

	"erpdash/models"
)

// writeCSVExports writes one CSV per dataset kind (full column set, no
// aggregation). Column mapping comes from the `csv` struct tags on the
// record types.
func (w *Writer) writeCSVExports(snap *models.Snapshot, ts string) error {
	for _, k := range models.Kinds {
		data, err := csvutil.Marshal(snap.Records(k))
		if err != nil {
			return fmt.Errorf("failed to encode %s CSV: %w", k, err)
		}

		path := filepath.Join(w.csvDir, fmt.Sprintf("%s_%s.csv", k.FileBase(), ts))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		latest := filepath.Join(w.csvDir, k.FileBase()+".csv")
		if err := copyFile(path, latest); err != nil {
			return fmt.Errorf("failed to update latest %s CSV: %w", k, err)
		}

		w.log.Info("CSV exported", zap.String("path", path))
	}
	return nil
}

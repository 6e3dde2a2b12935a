// reports/retention.go
package reports

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	"go.uber.org/zap"

	"erpdash/config"
)

// timestampedName matches historical artifacts (daily_report_20260825_080000.xlsx,
// purchase_data_20260825_080000.csv). Latest aliases carry no timestamp and
// never match, so the sweeper cannot touch them.
var timestampedName = regexp.MustCompile(`_\d{8}_\d{6}\.(xlsx|csv)$`)

// Sweeper deletes timestamped artifacts that have outlived the retention
// policy. The boundary rule is strictly-older-than: an artifact aged
// exactly the retention limit is kept.
type Sweeper struct {
	dirs   []string
	maxAge time.Duration
	log    *zap.Logger

	now func() time.Time // stubbed in tests
}

func NewSweeper(cfg config.ReportsConfig, log *zap.Logger) *Sweeper {
	return &Sweeper{
		dirs:   []string{cfg.Dir, cfg.CSVDir},
		maxAge: cfg.RetentionAge(),
		log:    log,
		now:    time.Now,
	}
}

// Sweep removes expired artifacts and returns how many were deleted.
// Individual failures are logged and skipped; the sweep always visits
// every candidate. Running twice in a row is a no-op the second time.
func (s *Sweeper) Sweep() int {
	cutoff := s.now().Add(-s.maxAge)
	removed := 0

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.log.Warn("failed to read artifact directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !timestampedName.MatchString(entry.Name()) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				s.log.Warn("failed to stat artifact", zap.String("name", entry.Name()), zap.Error(err))
				continue
			}
			if !info.ModTime().Before(cutoff) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				s.log.Warn("failed to delete old artifact", zap.String("path", path), zap.Error(err))
				continue
			}
			s.log.Info("deleted old artifact", zap.String("path", path))
			removed++
		}
	}
	return removed
}

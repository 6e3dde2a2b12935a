// services/refresh_service.go
package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"erpdash/extractor"
	"erpdash/models"
	"erpdash/store"
)

// ReportWriter is the artifact-writing side of the pipeline.
type ReportWriter interface {
	Write(*models.Snapshot) error
}

// ArtifactSweeper retires expired artifacts.
type ArtifactSweeper interface {
	Sweep() int
}

// Refresher coordinates one refresh cycle: fetch all four datasets,
// publish the snapshot, regenerate report artifacts, sweep retention.
// At most one cycle runs at a time; the Idle/Running transition is a
// single compare-and-swap, so concurrent triggers cannot both proceed.
type Refresher struct {
	source  extractor.Source
	store   *store.SnapshotStore
	writer  ReportWriter
	sweeper ArtifactSweeper
	log     *zap.Logger

	running atomic.Bool
}

// NewRefresher wires the pipeline. sweeper may be nil to disable retention
// sweeping.
func NewRefresher(
	source extractor.Source,
	st *store.SnapshotStore,
	writer ReportWriter,
	sweeper ArtifactSweeper,
	log *zap.Logger,
) *Refresher {
	return &Refresher{
		source:  source,
		store:   st,
		writer:  writer,
		sweeper: sweeper,
		log:     log,
	}
}

// Running reports whether a refresh cycle is currently in progress.
func (r *Refresher) Running() bool {
	return r.running.Load()
}

// TryRefresh runs one refresh cycle in the calling goroutine. If a cycle
// is already in progress the trigger is dropped and TryRefresh returns
// false immediately; callers that need the outcome poll the snapshot
// store's timestamp. The return value reports acceptance, not success: a
// cycle that fetched nothing still counts as accepted, and the previous
// snapshot stays published.
func (r *Refresher) TryRefresh(ctx context.Context) bool {
	if !r.running.CompareAndSwap(false, true) {
		r.log.Info("refresh already in progress, trigger dropped")
		return false
	}
	defer r.running.Store(false)

	log := r.log.With(zap.String("cycle", uuid.NewString()[:8]))
	start := time.Now()
	log.Info("refresh cycle started")

	// A bad cycle must never take the process down. Fetch goroutines carry
	// their own guards; this one covers publish, reporting and sweeping.
	defer func() {
		if p := recover(); p != nil {
			log.Error("refresh cycle panicked", zap.Any("panic", p), zap.Stack("stack"))
		}
	}()

	snap, err := r.fetchAll(ctx)
	if err != nil {
		// No partial publish: the previous snapshot stays visible and the
		// next scheduled cycle retries.
		log.Error("fetch failed, keeping previous snapshot", zap.Error(err))
		return true
	}

	r.store.Publish(snap)
	log.Info("snapshot published",
		zap.Int("purchase", len(snap.Purchase)),
		zap.Int("production", len(snap.Production)),
		zap.Int("packing", len(snap.Packing)),
		zap.Int("shipment", len(snap.Shipment)),
	)

	// Report failure does not roll back the publish; fresh data stays
	// visible to readers and artifacts regenerate next cycle.
	if err := r.writer.Write(snap); err != nil {
		log.Error("report generation failed, snapshot stays published", zap.Error(err))
	}

	if r.sweeper != nil {
		if removed := r.sweeper.Sweep(); removed > 0 {
			log.Info("retention sweep removed old artifacts", zap.Int("removed", removed))
		}
	}

	log.Info("refresh cycle finished", zap.Duration("took", time.Since(start)))
	return true
}

// fetchAll pulls the four datasets concurrently. Any single failure aborts
// the whole fetch; no snapshot is built from a partial result.
func (r *Refresher) fetchAll(ctx context.Context) (*models.Snapshot, error) {
	var (
		purchase   []models.PurchaseOrder
		production []models.ProductionBatch
		packing    []models.PackingRecord
		shipment   []models.ShipmentRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(guard("purchase", func() error {
		var err error
		purchase, err = r.source.FetchPurchase(ctx)
		return err
	}))
	g.Go(guard("production", func() error {
		var err error
		production, err = r.source.FetchProduction(ctx)
		return err
	}))
	g.Go(guard("packing", func() error {
		var err error
		packing, err = r.source.FetchPacking(ctx)
		return err
	}))
	g.Go(guard("shipment", func() error {
		var err error
		shipment, err = r.source.FetchShipment(ctx)
		return err
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models.NewSnapshot(purchase, production, packing, shipment, time.Now()), nil
}

// guard wraps a fetch so a panic inside the source surfaces as an error
// on the errgroup instead of crashing the process.
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%s fetch panicked: %v", name, p)
			}
		}()
		if err := fn(); err != nil {
			return fmt.Errorf("%s fetch failed: %w", name, err)
		}
		return nil
	}
}

// services/query_service.go
package services

import (
	"erpdash/models"
	"erpdash/store"
)

// Query is the read-only façade over the snapshot store used by the HTTP
// layer. Every read fails with store.ErrNoData until the first successful
// refresh has published a snapshot.
type Query struct {
	store     *store.SnapshotStore
	refresher *Refresher
	scheduler *Scheduler
}

func NewQuery(st *store.SnapshotStore, refresher *Refresher, scheduler *Scheduler) *Query {
	return &Query{store: st, refresher: refresher, scheduler: scheduler}
}

// Summary computes the per-department aggregates for the current snapshot.
// The math is models.ComputeSummary, the same function the report writer
// uses for the workbook summary sheet.
func (q *Query) Summary() (models.Summary, error) {
	snap, err := q.store.Current()
	if err != nil {
		return models.Summary{}, err
	}
	return models.ComputeSummary(snap), nil
}

// Dataset returns the records of one kind from the current snapshot.
func (q *Query) Dataset(kind models.Kind) (models.DepartmentResponse, error) {
	snap, err := q.store.Current()
	if err != nil {
		return models.DepartmentResponse{}, err
	}
	return models.DepartmentResponse{
		Data:  snap.Records(kind),
		Count: snap.Count(kind),
	}, nil
}

// Health reports liveness details; it never fails, even before the first
// publish.
func (q *Query) Health() models.HealthResponse {
	resp := models.HealthResponse{
		Status:            "healthy",
		RefreshInProgress: q.refresher.Running(),
	}
	if q.scheduler != nil {
		resp.SchedulerRunning = q.scheduler.Running()
	}
	if t, ok := q.store.LastUpdated(); ok {
		resp.LastUpdate = &t
	}
	return resp
}

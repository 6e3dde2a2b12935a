// extractor/extractor.go
package extractor

import (
	"context"

	"erpdash/models"
)

// Source is the ERP fetch interface consumed by the refresh orchestrator.
// The four fetches are independent read-only operations; each returns the
// full current dataset or a transient error. Implementations: DemoSource
// (seeded sample data) and SQLSource (MySQL-backed ERP database).
type Source interface {
	FetchPurchase(ctx context.Context) ([]models.PurchaseOrder, error)
	FetchProduction(ctx context.Context) ([]models.ProductionBatch, error)
	FetchPacking(ctx context.Context) ([]models.PackingRecord, error)
	FetchShipment(ctx context.Context) ([]models.ShipmentRecord, error)
}

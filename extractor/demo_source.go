// extractor/demo_source.go
package extractor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"erpdash/models"
)

// DemoSource generates plausible ERP sample data so the system runs
// without a database connection. Each fetch reseeds its own generator, so
// repeated fetches of the same dataset return identical records apart from
// the dates, which are anchored to the current time.
type DemoSource struct{}

func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

func (d *DemoSource) FetchPurchase(_ context.Context) ([]models.PurchaseOrder, error) {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	vendors := []string{"Vendor A", "Vendor B", "Vendor C", "Vendor D"}
	items := []string{"Raw Material A", "Raw Material B", "Component X", "Component Y"}
	statuses := []string{models.StatusPending, models.StatusApproved, models.StatusDelivered}
	weights := []float64{0.3, 0.4, 0.3}

	records := make([]models.PurchaseOrder, 0, 50)
	for i := 1; i <= 50; i++ {
		quantity := 100 + rng.Intn(900)
		unitPrice := round2(10 + rng.Float64()*90)
		records = append(records, models.PurchaseOrder{
			PoID:         fmt.Sprintf("PO%04d", i),
			VendorName:   choice(rng, vendors),
			ItemName:     choice(rng, items),
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			Amount:       round2(float64(quantity) * unitPrice),
			OrderDate:    now.AddDate(0, 0, -rng.Intn(30)),
			DeliveryDate: now.AddDate(0, 0, 1+rng.Intn(14)),
			Status:       weightedChoice(rng, statuses, weights),
		})
	}
	return records, nil
}

func (d *DemoSource) FetchProduction(_ context.Context) ([]models.ProductionBatch, error) {
	rng := rand.New(rand.NewSource(43))
	now := time.Now()

	products := []string{"Product A", "Product B", "Product C", "Product D"}
	units := []string{"KG", "PCS", "LTR"}
	departments := []string{"Dept A", "Dept B", "Dept C"}
	statuses := []string{models.StatusCompleted, models.StatusInProgress, models.StatusPending}
	weights := []float64{0.5, 0.3, 0.2}

	records := make([]models.ProductionBatch, 0, 60)
	for i := 1; i <= 60; i++ {
		records = append(records, models.ProductionBatch{
			ProductionID: fmt.Sprintf("PROD%04d", i),
			ProductName:  choice(rng, products),
			BatchNo:      fmt.Sprintf("B%03d", i),
			Quantity:     500 + rng.Intn(4500),
			Unit:         choice(rng, units),
			StartDate:    now.AddDate(0, 0, -rng.Intn(20)),
			EndDate:      now.AddDate(0, 0, 1+rng.Intn(9)),
			Status:       weightedChoice(rng, statuses, weights),
			Department:   choice(rng, departments),
		})
	}
	return records, nil
}

func (d *DemoSource) FetchPacking(_ context.Context) ([]models.PackingRecord, error) {
	rng := rand.New(rand.NewSource(44))
	now := time.Now()

	products := []string{"Product A", "Product B", "Product C"}
	packageTypes := []string{"Box", "Carton", "Pallet"}
	operators := []string{"Operator 1", "Operator 2", "Operator 3"}
	statuses := []string{models.StatusCompleted, models.StatusInProgress, models.StatusPending}
	weights := []float64{0.6, 0.25, 0.15}

	records := make([]models.PackingRecord, 0, 45)
	for i := 1; i <= 45; i++ {
		records = append(records, models.PackingRecord{
			PackingID:   fmt.Sprintf("PACK%04d", i),
			ProductName: choice(rng, products),
			Quantity:    100 + rng.Intn(900),
			PackageType: choice(rng, packageTypes),
			PackingDate: now.AddDate(0, 0, -rng.Intn(15)),
			Status:      weightedChoice(rng, statuses, weights),
			Operator:    choice(rng, operators),
		})
	}
	return records, nil
}

func (d *DemoSource) FetchShipment(_ context.Context) ([]models.ShipmentRecord, error) {
	rng := rand.New(rand.NewSource(45))
	now := time.Now()

	customers := []string{"Customer A", "Customer B", "Customer C", "Customer D"}
	destinations := []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"}
	transporters := []string{"Transport A", "Transport B", "Transport C"}
	statuses := []string{models.StatusDispatched, models.StatusInTransit, models.StatusPending, models.StatusDelivered}
	weights := []float64{0.3, 0.3, 0.2, 0.2}

	records := make([]models.ShipmentRecord, 0, 40)
	for i := 1; i <= 40; i++ {
		records = append(records, models.ShipmentRecord{
			ShipmentID:       fmt.Sprintf("SHIP%04d", i),
			CustomerName:     choice(rng, customers),
			Destination:      choice(rng, destinations),
			Quantity:         50 + rng.Intn(450),
			ShipmentDate:     now.AddDate(0, 0, -rng.Intn(10)),
			ExpectedDelivery: now.AddDate(0, 0, 1+rng.Intn(6)),
			Status:           weightedChoice(rng, statuses, weights),
			Transporter:      choice(rng, transporters),
		})
	}
	return records, nil
}

func choice(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// weightedChoice picks an option with the given probabilities. Weights
// must sum to 1; the last option absorbs any rounding remainder.
func weightedChoice(rng *rand.Rand, options []string, weights []float64) string {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return options[i]
		}
	}
	return options[len(options)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

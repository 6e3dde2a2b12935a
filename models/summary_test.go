package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseFixture() []PurchaseOrder {
	// 10 orders: 3 Pending, 4 Approved, 3 Delivered, amounts totalling 5000.00.
	statuses := []string{
		StatusPending, StatusPending, StatusPending,
		StatusApproved, StatusApproved, StatusApproved, StatusApproved,
		StatusDelivered, StatusDelivered, StatusDelivered,
	}
	amounts := []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 500}

	orders := make([]PurchaseOrder, 0, len(statuses))
	for i, s := range statuses {
		orders = append(orders, PurchaseOrder{
			PoID:   "PO0001",
			Status: s,
			Amount: amounts[i],
		})
	}
	return orders
}

func TestComputeSummary(t *testing.T) {
	capturedAt := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)

	t.Run("purchase aggregates", func(t *testing.T) {
		snap := NewSnapshot(purchaseFixture(), nil, nil, nil, capturedAt)
		summary := ComputeSummary(snap)

		require.Len(t, summary.Departments, 4)
		assert.Equal(t, capturedAt, summary.LastUpdated)

		purchase := summary.Departments[0]
		assert.Equal(t, "Purchase", purchase.Department)
		assert.Equal(t, 10, purchase.TotalRecords)
		assert.Equal(t, 3, purchase.Pending)
		assert.Equal(t, 7, purchase.Completed)
		assert.Equal(t, "Total Value", purchase.AggregateLabel)
		assert.InDelta(t, 5000.00, purchase.AggregateValue, 0.001)
	})

	t.Run("empty datasets report zeroes", func(t *testing.T) {
		snap := NewSnapshot(nil, nil, nil, nil, capturedAt)
		summary := ComputeSummary(snap)

		require.Len(t, summary.Departments, 4)
		for _, d := range summary.Departments {
			assert.Zero(t, d.TotalRecords, d.Department)
			assert.Zero(t, d.Pending, d.Department)
			assert.Zero(t, d.Completed, d.Department)
			assert.Zero(t, d.AggregateValue, d.Department)
		}
	})

	t.Run("kind specific completion rules", func(t *testing.T) {
		snap := NewSnapshot(
			nil,
			[]ProductionBatch{
				{Status: StatusCompleted, Quantity: 100},
				{Status: StatusInProgress, Quantity: 50},
				{Status: StatusPending, Quantity: 25},
			},
			nil,
			[]ShipmentRecord{
				{Status: StatusDispatched, Quantity: 10},
				{Status: StatusInTransit, Quantity: 20},
				{Status: StatusDelivered, Quantity: 30},
			},
			capturedAt,
		)
		summary := ComputeSummary(snap)

		production := summary.Departments[1]
		assert.Equal(t, 3, production.TotalRecords)
		assert.Equal(t, 1, production.Pending)
		assert.Equal(t, 1, production.Completed)
		assert.InDelta(t, 175.0, production.AggregateValue, 0.001)

		// Dispatched and In Transit shipments are neither pending nor completed.
		shipment := summary.Departments[3]
		assert.Equal(t, 3, shipment.TotalRecords)
		assert.Equal(t, 0, shipment.Pending)
		assert.Equal(t, 1, shipment.Completed)
		assert.InDelta(t, 60.0, shipment.AggregateValue, 0.001)
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	parsed, err := ParseKind("Purchase")
	require.NoError(t, err)
	assert.Equal(t, KindPurchase, parsed)

	_, err = ParseKind("finance")
	assert.Error(t, err)
}

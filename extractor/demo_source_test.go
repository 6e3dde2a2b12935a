package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoSource(t *testing.T) {
	src := NewDemoSource()
	ctx := context.Background()

	t.Run("record counts", func(t *testing.T) {
		purchase, err := src.FetchPurchase(ctx)
		require.NoError(t, err)
		assert.Len(t, purchase, 50)

		production, err := src.FetchProduction(ctx)
		require.NoError(t, err)
		assert.Len(t, production, 60)

		packing, err := src.FetchPacking(ctx)
		require.NoError(t, err)
		assert.Len(t, packing, 45)

		shipment, err := src.FetchShipment(ctx)
		require.NoError(t, err)
		assert.Len(t, shipment, 40)
	})

	t.Run("deterministic between fetches", func(t *testing.T) {
		first, err := src.FetchPurchase(ctx)
		require.NoError(t, err)
		second, err := src.FetchPurchase(ctx)
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].PoID, second[i].PoID)
			assert.Equal(t, first[i].VendorName, second[i].VendorName)
			assert.Equal(t, first[i].Quantity, second[i].Quantity)
			assert.Equal(t, first[i].UnitPrice, second[i].UnitPrice)
			assert.Equal(t, first[i].Status, second[i].Status)
		}
	})

	t.Run("purchase amounts are quantity times price", func(t *testing.T) {
		purchase, err := src.FetchPurchase(ctx)
		require.NoError(t, err)
		for _, r := range purchase {
			assert.InDelta(t, float64(r.Quantity)*r.UnitPrice, r.Amount, 0.01, r.PoID)
			assert.GreaterOrEqual(t, r.Quantity, 100)
			assert.Less(t, r.Quantity, 1000)
		}
	})

	t.Run("identifiers are sequential", func(t *testing.T) {
		shipment, err := src.FetchShipment(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SHIP0001", shipment[0].ShipmentID)
		assert.Equal(t, "SHIP0040", shipment[len(shipment)-1].ShipmentID)
	})
}

// reports/rows.go
package reports

import (
	"time"

	"erpdash/models"
)

const cellDateLayout = "2006-01-02"

func cellDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(cellDateLayout)
}

func headerRow(k models.Kind) []interface{} {
	switch k {
	case models.KindPurchase:
		return []interface{}{"po_id", "vendor_name", "item_name", "quantity", "unit_price", "amount", "order_date", "delivery_date", "status"}
	case models.KindProduction:
		return []interface{}{"production_id", "product_name", "batch_no", "quantity", "unit", "start_date", "end_date", "status", "department"}
	case models.KindPacking:
		return []interface{}{"packing_id", "product_name", "quantity", "package_type", "packing_date", "status", "operator"}
	default:
		return []interface{}{"shipment_id", "customer_name", "destination", "quantity", "shipment_date", "expected_delivery", "status", "transporter"}
	}
}

func dataRows(snap *models.Snapshot, k models.Kind) [][]interface{} {
	switch k {
	case models.KindPurchase:
		rows := make([][]interface{}, 0, len(snap.Purchase))
		for _, r := range snap.Purchase {
			rows = append(rows, []interface{}{
				r.PoID, r.VendorName, r.ItemName, r.Quantity, r.UnitPrice,
				r.Amount, cellDate(r.OrderDate), cellDate(r.DeliveryDate), r.Status,
			})
		}
		return rows
	case models.KindProduction:
		rows := make([][]interface{}, 0, len(snap.Production))
		for _, r := range snap.Production {
			rows = append(rows, []interface{}{
				r.ProductionID, r.ProductName, r.BatchNo, r.Quantity, r.Unit,
				cellDate(r.StartDate), cellDate(r.EndDate), r.Status, r.Department,
			})
		}
		return rows
	case models.KindPacking:
		rows := make([][]interface{}, 0, len(snap.Packing))
		for _, r := range snap.Packing {
			rows = append(rows, []interface{}{
				r.PackingID, r.ProductName, r.Quantity, r.PackageType,
				cellDate(r.PackingDate), r.Status, r.Operator,
			})
		}
		return rows
	default:
		rows := make([][]interface{}, 0, len(snap.Shipment))
		for _, r := range snap.Shipment {
			rows = append(rows, []interface{}{
				r.ShipmentID, r.CustomerName, r.Destination, r.Quantity,
				cellDate(r.ShipmentDate), cellDate(r.ExpectedDelivery), r.Status, r.Transporter,
			})
		}
		return rows
	}
}

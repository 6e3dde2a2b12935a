// extractor/sql_source.go
package extractor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"erpdash/models"
)

// SQLSource fetches the four datasets from the ERP MySQL database. Each
// query pulls the recent window the dashboard works with; the lookback per
// dataset mirrors how far back each department's activity stays relevant.
type SQLSource struct {
	db *sql.DB
}

func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

const purchaseQuery = `
	SELECT po_id, vendor_name, item_name, quantity, unit_price, amount,
	       order_date, delivery_date, status
	FROM purchase_orders
	WHERE order_date >= DATE_SUB(NOW(), INTERVAL 30 DAY)
	ORDER BY order_date`

func (s *SQLSource) FetchPurchase(ctx context.Context) ([]models.PurchaseOrder, error) {
	rows, err := s.db.QueryContext(ctx, purchaseQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	var records []models.PurchaseOrder
	for rows.Next() {
		var r models.PurchaseOrder
		var orderDate, deliveryDate sql.NullTime
		if err := rows.Scan(
			&r.PoID, &r.VendorName, &r.ItemName, &r.Quantity, &r.UnitPrice,
			&r.Amount, &orderDate, &deliveryDate, &r.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		r.OrderDate = nullableTime(orderDate)
		r.DeliveryDate = nullableTime(deliveryDate)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", err)
	}
	return records, nil
}

const productionQuery = `
	SELECT production_id, product_name, batch_no, quantity, unit,
	       start_date, end_date, status, department
	FROM production
	WHERE start_date >= DATE_SUB(NOW(), INTERVAL 20 DAY)
	ORDER BY start_date`

func (s *SQLSource) FetchProduction(ctx context.Context) ([]models.ProductionBatch, error) {
	rows, err := s.db.QueryContext(ctx, productionQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query production batches: %w", err)
	}
	defer rows.Close()

	var records []models.ProductionBatch
	for rows.Next() {
		var r models.ProductionBatch
		var startDate, endDate sql.NullTime
		if err := rows.Scan(
			&r.ProductionID, &r.ProductName, &r.BatchNo, &r.Quantity, &r.Unit,
			&startDate, &endDate, &r.Status, &r.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan production row: %w", err)
		}
		r.StartDate = nullableTime(startDate)
		r.EndDate = nullableTime(endDate)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating production rows: %w", err)
	}
	return records, nil
}

const packingQuery = `
	SELECT packing_id, product_name, quantity, package_type,
	       packing_date, status, operator
	FROM packing
	WHERE packing_date >= DATE_SUB(NOW(), INTERVAL 15 DAY)
	ORDER BY packing_date`

func (s *SQLSource) FetchPacking(ctx context.Context) ([]models.PackingRecord, error) {
	rows, err := s.db.QueryContext(ctx, packingQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query packing records: %w", err)
	}
	defer rows.Close()

	var records []models.PackingRecord
	for rows.Next() {
		var r models.PackingRecord
		var packingDate sql.NullTime
		if err := rows.Scan(
			&r.PackingID, &r.ProductName, &r.Quantity, &r.PackageType,
			&packingDate, &r.Status, &r.Operator,
		); err != nil {
			return nil, fmt.Errorf("failed to scan packing row: %w", err)
		}
		r.PackingDate = nullableTime(packingDate)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating packing rows: %w", err)
	}
	return records, nil
}

const shipmentQuery = `
	SELECT shipment_id, customer_name, destination, quantity,
	       shipment_date, expected_delivery, status, transporter
	FROM shipments
	WHERE shipment_date >= DATE_SUB(NOW(), INTERVAL 10 DAY)
	ORDER BY shipment_date`

func (s *SQLSource) FetchShipment(ctx context.Context) ([]models.ShipmentRecord, error) {
	rows, err := s.db.QueryContext(ctx, shipmentQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	var records []models.ShipmentRecord
	for rows.Next() {
		var r models.ShipmentRecord
		var shipmentDate, expectedDelivery sql.NullTime
		if err := rows.Scan(
			&r.ShipmentID, &r.CustomerName, &r.Destination, &r.Quantity,
			&shipmentDate, &expectedDelivery, &r.Status, &r.Transporter,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment row: %w", err)
		}
		r.ShipmentDate = nullableTime(shipmentDate)
		r.ExpectedDelivery = nullableTime(expectedDelivery)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipment rows: %w", err)
	}
	return records, nil
}

func nullableTime(t sql.NullTime) time.Time {
	if t.Valid {
		return t.Time
	}
	return time.Time{}
}

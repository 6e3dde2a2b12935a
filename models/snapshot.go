// models/snapshot.go
package models

import "time"

// Snapshot is an immutable bundle of the four ERP datasets plus the capture
// time. It is built whole by NewSnapshot and never mutated after publish;
// readers share it freely.
type Snapshot struct {
	Purchase   []PurchaseOrder   `json:"purchase"`
	Production []ProductionBatch `json:"production"`
	Packing    []PackingRecord   `json:"packing"`
	Shipment   []ShipmentRecord  `json:"shipment"`
	CapturedAt time.Time         `json:"captured_at"`
}

// NewSnapshot bundles the four datasets captured at t.
func NewSnapshot(
	purchase []PurchaseOrder,
	production []ProductionBatch,
	packing []PackingRecord,
	shipment []ShipmentRecord,
	t time.Time,
) *Snapshot {
	return &Snapshot{
		Purchase:   purchase,
		Production: production,
		Packing:    packing,
		Shipment:   shipment,
		CapturedAt: t,
	}
}

// Records returns the dataset for a kind as a slice suitable for JSON or
// CSV encoding.
func (s *Snapshot) Records(k Kind) interface{} {
	switch k {
	case KindPurchase:
		return s.Purchase
	case KindProduction:
		return s.Production
	case KindPacking:
		return s.Packing
	default:
		return s.Shipment
	}
}

// Count returns the number of records in the dataset for a kind.
func (s *Snapshot) Count(k Kind) int {
	switch k {
	case KindPurchase:
		return len(s.Purchase)
	case KindProduction:
		return len(s.Production)
	case KindPacking:
		return len(s.Packing)
	default:
		return len(s.Shipment)
	}
}

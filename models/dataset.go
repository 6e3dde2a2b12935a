// models/dataset.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies one of the four ERP datasets. It is a closed enumeration;
// every Kind carries its sheet name, export file base name and the label of
// its kind-specific aggregate, so nothing downstream dispatches on raw
// department strings.
type Kind string

const (
	KindPurchase   Kind = "purchase"
	KindProduction Kind = "production"
	KindPacking    Kind = "packing"
	KindShipment   Kind = "shipment"
)

// Kinds lists all dataset kinds in report order.
var Kinds = []Kind{KindPurchase, KindProduction, KindPacking, KindShipment}

// ParseKind maps a department name from a request path to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindPurchase:
		return KindPurchase, nil
	case KindProduction:
		return KindProduction, nil
	case KindPacking:
		return KindPacking, nil
	case KindShipment:
		return KindShipment, nil
	}
	return "", fmt.Errorf("invalid department %q", s)
}

// SheetName is the workbook sheet title for this kind.
func (k Kind) SheetName() string {
	switch k {
	case KindPurchase:
		return "Purchase"
	case KindProduction:
		return "Production"
	case KindPacking:
		return "Packing"
	default:
		return "Shipment"
	}
}

// FileBase is the base name of this kind's CSV export, without extension
// or timestamp (e.g. "purchase_data").
func (k Kind) FileBase() string {
	return string(k) + "_data"
}

// AggregateLabel names the kind-specific aggregate reported in summaries.
func (k Kind) AggregateLabel() string {
	switch k {
	case KindPurchase:
		return "Total Value"
	case KindProduction:
		return "Total Quantity"
	case KindPacking:
		return "Total Packed"
	default:
		return "Total Shipped"
	}
}

// Record statuses as they appear in the ERP data.
const (
	StatusPending    = "Pending"
	StatusApproved   = "Approved"
	StatusDelivered  = "Delivered"
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusDispatched = "Dispatched"
	StatusInTransit  = "In Transit"
)

// PurchaseOrder is one row of the purchase dataset.
type PurchaseOrder struct {
	PoID         string    `json:"po_id" csv:"po_id"`
	VendorName   string    `json:"vendor_name" csv:"vendor_name"`
	ItemName     string    `json:"item_name" csv:"item_name"`
	Quantity     int       `json:"quantity" csv:"quantity"`
	UnitPrice    float64   `json:"unit_price" csv:"unit_price"`
	Amount       float64   `json:"amount" csv:"amount"`
	OrderDate    time.Time `json:"order_date" csv:"order_date"`
	DeliveryDate time.Time `json:"delivery_date" csv:"delivery_date"`
	Status       string    `json:"status" csv:"status"`
}

// ProductionBatch is one row of the production dataset.
type ProductionBatch struct {
	ProductionID string    `json:"production_id" csv:"production_id"`
	ProductName  string    `json:"product_name" csv:"product_name"`
	BatchNo      string    `json:"batch_no" csv:"batch_no"`
	Quantity     int       `json:"quantity" csv:"quantity"`
	Unit         string    `json:"unit" csv:"unit"`
	StartDate    time.Time `json:"start_date" csv:"start_date"`
	EndDate      time.Time `json:"end_date" csv:"end_date"`
	Status       string    `json:"status" csv:"status"`
	Department   string    `json:"department" csv:"department"`
}

// PackingRecord is one row of the packing dataset.
type PackingRecord struct {
	PackingID   string    `json:"packing_id" csv:"packing_id"`
	ProductName string    `json:"product_name" csv:"product_name"`
	Quantity    int       `json:"quantity" csv:"quantity"`
	PackageType string    `json:"package_type" csv:"package_type"`
	PackingDate time.Time `json:"packing_date" csv:"packing_date"`
	Status      string    `json:"status" csv:"status"`
	Operator    string    `json:"operator" csv:"operator"`
}

// ShipmentRecord is one row of the shipment dataset.
type ShipmentRecord struct {
	ShipmentID       string    `json:"shipment_id" csv:"shipment_id"`
	CustomerName     string    `json:"customer_name" csv:"customer_name"`
	Destination      string    `json:"destination" csv:"destination"`
	Quantity         int       `json:"quantity" csv:"quantity"`
	ShipmentDate     time.Time `json:"shipment_date" csv:"shipment_date"`
	ExpectedDelivery time.Time `json:"expected_delivery" csv:"expected_delivery"`
	Status           string    `json:"status" csv:"status"`
	Transporter      string    `json:"transporter" csv:"transporter"`
}

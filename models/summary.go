// models/summary.go
package models

import "time"

// DepartmentSummary aggregates one dataset: record count, status buckets
// and the kind-specific total (monetary amount for purchase, quantity for
// the rest).
type DepartmentSummary struct {
	Department     string  `json:"department"`
	TotalRecords   int     `json:"total_records"`
	Pending        int     `json:"pending"`
	Completed      int     `json:"completed"`
	AggregateLabel string  `json:"aggregate_label"`
	AggregateValue float64 `json:"aggregate_value"`
}

// Summary is the derived view over a whole snapshot. It is computed by
// ComputeSummary both when rendering the workbook summary sheet and when
// serving /api/summary, so the two can never drift apart.
type Summary struct {
	Departments []DepartmentSummary `json:"departments"`
	LastUpdated time.Time           `json:"last_updated"`
}

// ComputeSummary derives per-department aggregates from a snapshot. A
// zero-record dataset yields a summary row with all counts at zero.
func ComputeSummary(s *Snapshot) Summary {
	out := Summary{
		Departments: make([]DepartmentSummary, 0, len(Kinds)),
		LastUpdated: s.CapturedAt,
	}
	for _, k := range Kinds {
		out.Departments = append(out.Departments, summarizeKind(s, k))
	}
	return out
}

// completedStatuses maps each kind to the statuses counted as completed.
// Purchase orders count as completed once approved or delivered; shipments
// only once delivered.
func completedStatuses(k Kind) map[string]bool {
	switch k {
	case KindPurchase:
		return map[string]bool{StatusApproved: true, StatusDelivered: true}
	case KindShipment:
		return map[string]bool{StatusDelivered: true}
	default:
		return map[string]bool{StatusCompleted: true}
	}
}

func summarizeKind(s *Snapshot, k Kind) DepartmentSummary {
	d := DepartmentSummary{
		Department:     k.SheetName(),
		AggregateLabel: k.AggregateLabel(),
	}
	done := completedStatuses(k)

	tally := func(status string, aggregate float64) {
		d.TotalRecords++
		switch {
		case status == StatusPending:
			d.Pending++
		case done[status]:
			d.Completed++
		}
		d.AggregateValue += aggregate
	}

	switch k {
	case KindPurchase:
		for _, r := range s.Purchase {
			tally(r.Status, r.Amount)
		}
	case KindProduction:
		for _, r := range s.Production {
			tally(r.Status, float64(r.Quantity))
		}
	case KindPacking:
		for _, r := range s.Packing {
			tally(r.Status, float64(r.Quantity))
		}
	default:
		for _, r := range s.Shipment {
			tally(r.Status, float64(r.Quantity))
		}
	}
	return d
}

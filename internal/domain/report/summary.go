package report

import (
	"sort"
	"strings"
	"time"

	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The summary/pagination stage. Summaries are always computed over the
// complete grouped result set, then the same sorted set is sliced; a
// summary derived from a single page is a defect, not an alternative.

// SummarizeExecutives folds the full row set into the report summary.
func SummarizeExecutives(rows []ExecutiveRow) ExecutiveSummary {
	s := ExecutiveSummary{TotalExecutives: len(rows), Totals: ZeroTotals()}
	for _, r := range rows {
		s.Totals = addTotals(s.Totals, r.Totals)
	}
	s.AvgOrderValue = safeAvg(s.TotalRevenue, s.TotalOrders)
	return s
}

// SummarizeWarehouses folds the full row set into the report summary.
func SummarizeWarehouses(rows []WarehouseRow) WarehouseSummary {
	s := WarehouseSummary{TotalWarehouses: len(rows), Totals: ZeroTotals()}
	for _, r := range rows {
		s.Totals = addTotals(s.Totals, r.Totals)
	}
	s.AvgOrderValue = safeAvg(s.TotalRevenue, s.TotalOrders)
	return s
}

// SummarizeCustomers folds the full row set into the report summary.
func SummarizeCustomers(rows []CustomerRow) CustomerSummary {
	s := CustomerSummary{TotalCustomers: len(rows), Totals: ZeroTotals()}
	for _, r := range rows {
		s.Totals = addTotals(s.Totals, r.Totals)
		s.TotalKg += r.TotalKg
	}
	s.AvgOrderValue = safeAvg(s.TotalRevenue, s.TotalOrders)
	return s
}

func addTotals(a, b Totals) Totals {
	a.TotalRecords += b.TotalRecords
	a.TotalOrders += b.TotalOrders
	a.TotalVisits += b.TotalVisits
	a.TotalRevenue = a.TotalRevenue.Add(b.TotalRevenue)
	a.TotalPaid = a.TotalPaid.Add(b.TotalPaid)
	a.TotalOutstanding = a.TotalOutstanding.Add(b.TotalOutstanding)
	return a
}

// safeAvg divides revenue by count, returning zero for an empty group
// rather than dividing by zero.
func safeAvg(revenue decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Page slices rows[(page-1)*limit : page*limit] from the already sorted
// full set and returns pagination metadata for it. page and limit are
// assumed clamped by BuildFilter.
func Page[T any](rows []T, page, limit int) ([]T, *pagination.Pagination) {
	meta := pagination.NewPagination(page, limit, int64(len(rows)))
	start := (page - 1) * limit
	if start >= len(rows) {
		return []T{}, meta
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], meta
}

// Executive sort keys. Unknown keys fall back to total_revenue.
const (
	SortByName          = "name"
	SortByTotalOrders   = "total_orders"
	SortByTotalRecords  = "total_records"
	SortByTotalRevenue  = "total_revenue"
	SortByOutstanding   = "total_outstanding"
	SortByAvgOrderValue = "avg_order_value"
	SortByLastActivity  = "last_activity"
	SortByTotalKg       = "total_kg"
	SortByLastOrderDate = "last_order_date"
)

// SortExecutives orders the full row set by the caller-supplied key and
// direction. Ties break on group id so pagination is deterministic;
// synthetic orphan rows sort by their label.
func SortExecutives(rows []ExecutiveRow, sortBy, sortOrder string) {
	asc := sortOrder == SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less, eq bool
		switch sortBy {
		case SortByName:
			c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			less, eq = c < 0, c == 0
		case SortByTotalOrders:
			less, eq = a.TotalOrders < b.TotalOrders, a.TotalOrders == b.TotalOrders
		case SortByTotalRecords:
			less, eq = a.TotalRecords < b.TotalRecords, a.TotalRecords == b.TotalRecords
		case SortByOutstanding:
			c := a.TotalOutstanding.Cmp(b.TotalOutstanding)
			less, eq = c < 0, c == 0
		case SortByAvgOrderValue:
			c := a.AvgOrderValue.Cmp(b.AvgOrderValue)
			less, eq = c < 0, c == 0
		case SortByLastActivity:
			at, bt := timeOrZero(a.LastActivityAt), timeOrZero(b.LastActivityAt)
			less, eq = at.Before(bt), at.Equal(bt)
		default:
			c := a.TotalRevenue.Cmp(b.TotalRevenue)
			less, eq = c < 0, c == 0
		}
		if eq {
			return idKey(a.ExecutiveID, string(a.GroupKind)) < idKey(b.ExecutiveID, string(b.GroupKind))
		}
		if asc {
			return less
		}
		return !less
	})
}

// SortWarehouses orders the full warehouse row set.
func SortWarehouses(rows []WarehouseRow, sortBy, sortOrder string) {
	asc := sortOrder == SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less, eq bool
		switch sortBy {
		case SortByName:
			c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			less, eq = c < 0, c == 0
		case SortByTotalOrders:
			less, eq = a.TotalOrders < b.TotalOrders, a.TotalOrders == b.TotalOrders
		case SortByOutstanding:
			c := a.TotalOutstanding.Cmp(b.TotalOutstanding)
			less, eq = c < 0, c == 0
		default:
			c := a.TotalRevenue.Cmp(b.TotalRevenue)
			less, eq = c < 0, c == 0
		}
		if eq {
			return idKey(a.WarehouseID, a.Name) < idKey(b.WarehouseID, b.Name)
		}
		if asc {
			return less
		}
		return !less
	})
}

// SortCustomers orders the full customer row set.
func SortCustomers(rows []CustomerRow, sortBy, sortOrder string) {
	asc := sortOrder == SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less, eq bool
		switch sortBy {
		case SortByName:
			c := strings.Compare(strings.ToLower(a.BusinessName), strings.ToLower(b.BusinessName))
			less, eq = c < 0, c == 0
		case SortByTotalOrders:
			less, eq = a.TotalOrders < b.TotalOrders, a.TotalOrders == b.TotalOrders
		case SortByTotalKg:
			less, eq = a.TotalKg < b.TotalKg, a.TotalKg == b.TotalKg
		case SortByOutstanding:
			c := a.TotalOutstanding.Cmp(b.TotalOutstanding)
			less, eq = c < 0, c == 0
		case SortByLastOrderDate:
			at, bt := timeOrZero(a.LastOrderDate), timeOrZero(b.LastOrderDate)
			less, eq = at.Before(bt), at.Equal(bt)
		default:
			c := a.TotalRevenue.Cmp(b.TotalRevenue)
			less, eq = c < 0, c == 0
		}
		if eq {
			return a.CustomerID.String() < b.CustomerID.String()
		}
		if asc {
			return less
		}
		return !less
	})
}

func idKey(id *uuid.UUID, fallback string) string {
	if id != nil {
		return id.String()
	}
	// Synthetic rows sort after real ids (uuids are hex, 'z' prefix wins).
	return "z-" + fallback
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

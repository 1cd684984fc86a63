package report

import (
	"time"

	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupKind tags a report row so consumers can distinguish real principals
// from the synthetic orphan groups appended by the reconciler. Display
// labels are derived from the tag, never the other way around.
type GroupKind string

const (
	GroupNormal GroupKind = "normal"
	// GroupDeletedCreator aggregates records whose creator reference is null.
	GroupDeletedCreator GroupKind = "deleted_creator"
	// GroupDanglingCreator aggregates records whose creator reference no
	// longer resolves to an existing principal.
	GroupDanglingCreator GroupKind = "dangling_creator"
)

// Label returns the display name for synthetic groups.
func (k GroupKind) Label() string {
	switch k {
	case GroupDeletedCreator:
		return "Deleted User"
	case GroupDanglingCreator:
		return "Deleted User (Orphaned)"
	default:
		return ""
	}
}

// StatusCounts is the per-group order status breakdown.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Delivered int `json:"delivered"`
	Completed int `json:"completed"`
}

// Totals is the aggregate shape shared by every group row and summary.
type Totals struct {
	TotalRecords     int             `json:"total_records"`
	TotalOrders      int             `json:"total_orders"`
	TotalVisits      int             `json:"total_visits"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	AvgOrderValue    decimal.Decimal `json:"avg_order_value"`
}

// ZeroTotals returns an all-zero Totals. decimal zero values marshal as "0".
func ZeroTotals() Totals {
	return Totals{
		TotalRevenue:     decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		AvgOrderValue:    decimal.Zero,
	}
}

// ExecutiveRow is one group of the executive performance report.
type ExecutiveRow struct {
	GroupKind   GroupKind  `json:"group_kind"`
	ExecutiveID *uuid.UUID `json:"executive_id,omitempty"`
	Name        string     `json:"name"`
	EmployeeID  string     `json:"employee_id"`
	Department  string     `json:"department"`
	RoleName    string     `json:"role_name"`
	Totals
	StatusCounts      StatusCounts `json:"status_counts"`
	DistinctCustomers int          `json:"distinct_customers"`
	LastActivityAt    *time.Time   `json:"last_activity_at,omitempty"`
	LastActivityDays  *int         `json:"last_activity_days,omitempty"`
}

// WarehouseRow is one group of the warehouse revenue report.
type WarehouseRow struct {
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Totals
	StatusCounts      StatusCounts `json:"status_counts"`
	DistinctCustomers int          `json:"distinct_customers"`
}

// CustomerRow is one group of the customer purchase report. Voided orders
// count toward TotalOrders for visibility but contribute zero to the
// monetary and kilogram totals.
type CustomerRow struct {
	CustomerID    uuid.UUID `json:"customer_id"`
	BusinessName  string    `json:"business_name"`
	CustomerType  string    `json:"customer_type"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
	Totals
	TotalKg            float64         `json:"total_kg"`
	OutstandingLedger  decimal.Decimal `json:"outstanding_ledger"`
	FirstOrderDate     *time.Time      `json:"first_order_date,omitempty"`
	LastOrderDate      *time.Time      `json:"last_order_date,omitempty"`
	DaysSinceLastOrder *int            `json:"days_since_last_order,omitempty"`
}

// ExecutiveSummary aggregates the complete executive result set.
type ExecutiveSummary struct {
	TotalExecutives int `json:"total_executives"`
	Totals
}

// WarehouseSummary aggregates the complete warehouse result set.
type WarehouseSummary struct {
	TotalWarehouses int `json:"total_warehouses"`
	Totals
}

// CustomerSummary aggregates the complete customer result set.
type CustomerSummary struct {
	TotalCustomers int     `json:"total_customers"`
	TotalKg        float64 `json:"total_kg"`
	Totals
}

// DateRange echoes the normalized period a report covers.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// ExecutiveReport is the outbound executive list report.
type ExecutiveReport struct {
	Summary    ExecutiveSummary       `json:"summary"`
	Reports    []ExecutiveRow         `json:"reports"`
	DateRange  DateRange              `json:"date_range"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

// WarehouseReport is the outbound warehouse list report.
type WarehouseReport struct {
	Summary    WarehouseSummary       `json:"summary"`
	Reports    []WarehouseRow         `json:"reports"`
	DateRange  DateRange              `json:"date_range"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

// CustomerReport is the outbound customer list report.
type CustomerReport struct {
	Summary    CustomerSummary        `json:"summary"`
	Reports    []CustomerRow          `json:"reports"`
	DateRange  DateRange              `json:"date_range"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
}

// MonthlyTrendPoint is one month of a detail report trend line.
type MonthlyTrendPoint struct {
	Month        string          `json:"month"` // "2006-01"
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalKg      float64         `json:"total_kg"`
}

// Counterparty is one entry of a detail report top-counterparties list.
type Counterparty struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// GradeBreakdown is a per-grade slice of a customer's purchases.
type GradeBreakdown struct {
	Grade        string          `json:"grade"`
	TotalKg      float64         `json:"total_kg"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// BreakdownRow is one bucket x group cell of the date-wise or month-wise
// breakdown consumed by the spreadsheet export.
type BreakdownRow struct {
	Bucket       string          `json:"bucket"` // "2006-01-02" or "2006-01"
	GroupName    string          `json:"group_name"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalKg      float64         `json:"total_kg"`
}

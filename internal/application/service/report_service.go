package service

import (
	"context"
	"sort"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/attaflow/attaflow-api/pkg/logger"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService computes the executive, warehouse and customer reports.
// It is a stateless read-only query layer: every report request is an
// independent computation, scoped through report.ResolveScope before any
// data is fetched.
type ReportService struct {
	recordRepo    repository.RecordRepository
	userRepo      repository.UserRepository
	customerRepo  repository.CustomerRepository
	warehouseRepo repository.WarehouseRepository

	now func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	recordRepo repository.RecordRepository,
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	warehouseRepo repository.WarehouseRepository,
) *ReportService {
	return &ReportService{
		recordRepo:    recordRepo,
		userRepo:      userRepo,
		customerRepo:  customerRepo,
		warehouseRepo: warehouseRepo,
		now:           time.Now,
	}
}

// ExecutiveReport groups qualifying records by their creating executive and
// returns the summarized, sorted, paged result. An explicit warehouse filter
// outside the requester's scope yields a zeroed report, never an error.
func (s *ReportService) ExecutiveReport(ctx context.Context, requester *entity.User, req *report.Request) (*report.ExecutiveReport, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		page, limit := report.ClampPage(req.Page, req.Limit)
		return &report.ExecutiveReport{
			Summary:    report.ExecutiveSummary{Totals: report.ZeroTotals()},
			Reports:    []report.ExecutiveRow{},
			DateRange:  requestedRange(req),
			Pagination: pagination.NewPagination(page, limit, 0),
		}, nil
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, _, err := s.computeExecutive(ctx, f)
	if err != nil {
		logger.LogError("report", "ExecutiveReport", err)
		return nil, apperror.NewReportError("executive report", err)
	}

	// Summary first over the complete set, then sort, then slice.
	summary := report.SummarizeExecutives(rows)
	report.SortExecutives(rows, f.SortBy, f.SortOrder)
	pageRows, meta := report.Page(rows, f.Page, f.Limit)

	return &report.ExecutiveReport{
		Summary:    summary,
		Reports:    pageRows,
		DateRange:  report.DateRange{Start: f.Start, End: f.End},
		Pagination: meta,
	}, nil
}

// WarehouseReport groups qualifying records by the warehouse recorded on
// them and returns the summarized, sorted, paged result.
func (s *ReportService) WarehouseReport(ctx context.Context, requester *entity.User, req *report.Request) (*report.WarehouseReport, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		page, limit := report.ClampPage(req.Page, req.Limit)
		return &report.WarehouseReport{
			Summary:    report.WarehouseSummary{Totals: report.ZeroTotals()},
			Reports:    []report.WarehouseRow{},
			DateRange:  requestedRange(req),
			Pagination: pagination.NewPagination(page, limit, 0),
		}, nil
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, _, err := s.computeWarehouse(ctx, f)
	if err != nil {
		logger.LogError("report", "WarehouseReport", err)
		return nil, apperror.NewReportError("warehouse report", err)
	}

	summary := report.SummarizeWarehouses(rows)
	report.SortWarehouses(rows, f.SortBy, f.SortOrder)
	pageRows, meta := report.Page(rows, f.Page, f.Limit)

	return &report.WarehouseReport{
		Summary:    summary,
		Reports:    pageRows,
		DateRange:  report.DateRange{Start: f.Start, End: f.End},
		Pagination: meta,
	}, nil
}

// CustomerReport groups qualifying records by customer. Its scoping basis is
// the customer's assigned warehouse, not the warehouse recorded on each
// order. Voided orders stay in total_orders but contribute zero to monetary
// and kilogram totals.
func (s *ReportService) CustomerReport(ctx context.Context, requester *entity.User, req *report.Request) (*report.CustomerReport, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		page, limit := report.ClampPage(req.Page, req.Limit)
		return &report.CustomerReport{
			Summary:    report.CustomerSummary{Totals: report.ZeroTotals()},
			Reports:    []report.CustomerRow{},
			DateRange:  requestedRange(req),
			Pagination: pagination.NewPagination(page, limit, 0),
		}, nil
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, _, err := s.computeCustomer(ctx, f)
	if err != nil {
		logger.LogError("report", "CustomerReport", err)
		return nil, apperror.NewReportError("customer report", err)
	}

	summary := report.SummarizeCustomers(rows)
	report.SortCustomers(rows, f.SortBy, f.SortOrder)
	pageRows, meta := report.Page(rows, f.Page, f.Limit)

	return &report.CustomerReport{
		Summary:    summary,
		Reports:    pageRows,
		DateRange:  report.DateRange{Start: f.Start, End: f.End},
		Pagination: meta,
	}, nil
}

// ExecutiveInfo is the identity block of an executive detail report.
type ExecutiveInfo struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	RoleName   string    `json:"role_name"`
}

// ExecutiveDetail expands a single executive's history: aggregate metrics,
// a 12-month trend line, the top customers by revenue and recent records.
type ExecutiveDetail struct {
	Executive         ExecutiveInfo              `json:"executive"`
	Metrics           report.Totals              `json:"metrics"`
	StatusCounts      report.StatusCounts        `json:"status_counts"`
	DistinctCustomers int                        `json:"distinct_customers"`
	MonthlyTrend      []report.MonthlyTrendPoint `json:"monthly_trend"`
	TopCustomers      []report.Counterparty      `json:"top_customers"`
	RecentRecords     []entity.Record            `json:"recent_records"`
	DateRange         report.DateRange           `json:"date_range"`
}

// CustomerInfo is the identity block of a customer detail report.
type CustomerInfo struct {
	ID            uuid.UUID       `json:"id"`
	BusinessName  string          `json:"business_name"`
	CustomerType  string          `json:"customer_type"`
	WarehouseName string          `json:"warehouse_name,omitempty"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	Outstanding   decimal.Decimal `json:"outstanding_amount"`
}

// CustomerDetail expands a single customer's purchase history, including
// the per-grade tonnage breakdown.
type CustomerDetail struct {
	Customer       CustomerInfo               `json:"customer"`
	Metrics        report.Totals              `json:"metrics"`
	TotalKg        float64                    `json:"total_kg"`
	GradeBreakdown []report.GradeBreakdown    `json:"grade_breakdown"`
	MonthlyTrend   []report.MonthlyTrendPoint `json:"monthly_trend"`
	TopExecutives  []report.Counterparty      `json:"top_executives"`
	RecentRecords  []entity.Record            `json:"recent_records"`
	DateRange      report.DateRange           `json:"date_range"`
}

const (
	trendMonths   = 12
	topCount      = 5
	recentRecords = 10
)

// ExecutiveDetail builds the detail report for one executive. A nonexistent
// executive id is a not-found error; an out-of-scope explicit warehouse
// still yields a zeroed detail.
func (s *ReportService) ExecutiveDetail(ctx context.Context, requester *entity.User, executiveID uuid.UUID, req *report.Request) (*ExecutiveDetail, error) {
	exec, err := s.userRepo.GetByID(ctx, executiveID)
	if err != nil {
		logger.LogError("report", "ExecutiveDetail", err)
		return nil, apperror.NewReportError("executive detail", err)
	}
	if exec == nil {
		return nil, apperror.NewNotFoundError("Executive")
	}

	detail := &ExecutiveDetail{
		Executive: ExecutiveInfo{
			ID:         exec.ID,
			Name:       exec.FullName(),
			EmployeeID: exec.EmployeeID,
			Email:      exec.Email,
			Department: exec.Department,
			RoleName:   exec.Role.Name,
		},
		Metrics:       report.ZeroTotals(),
		MonthlyTrend:  []report.MonthlyTrendPoint{},
		TopCustomers:  []report.Counterparty{},
		RecentRecords: []entity.Record{},
	}

	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		detail.DateRange = requestedRange(req)
		return detail, nil
	}

	r := *req
	r.PrincipalID = &executiveID
	f, err := report.BuildFilter(&r, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	detail.DateRange = report.DateRange{Start: f.Start, End: f.End}

	records, err := s.recordRepo.ListForReport(ctx, f)
	if err != nil {
		logger.LogError("report", "ExecutiveDetail", err)
		return nil, apperror.NewReportError("executive detail", err)
	}

	customers := make(map[uuid.UUID]struct{})
	for i := range records {
		rec := &records[i]
		detail.Metrics = applyRecordTotals(detail.Metrics, rec)
		countStatus(&detail.StatusCounts, rec)
		if rec.CustomerID != nil {
			customers[*rec.CustomerID] = struct{}{}
		}
	}
	detail.Metrics.AvgOrderValue = avgOrZero(detail.Metrics.TotalRevenue, detail.Metrics.TotalOrders)
	detail.DistinctCustomers = len(customers)
	detail.MonthlyTrend = s.monthlyTrend(records)
	detail.TopCustomers = topCounterparties(records, topCount,
		func(rec *entity.Record) (*uuid.UUID, string) {
			if rec.CustomerID == nil {
				return nil, ""
			}
			name := ""
			if rec.Customer != nil {
				name = rec.Customer.BusinessName
			}
			return rec.CustomerID, name
		})
	detail.RecentRecords = latestRecords(records, recentRecords)

	return detail, nil
}

// CustomerDetail builds the detail report for one customer. Customers whose
// assigned warehouse is outside the requester's scope yield a zeroed detail.
func (s *ReportService) CustomerDetail(ctx context.Context, requester *entity.User, customerID uuid.UUID, req *report.Request) (*CustomerDetail, error) {
	cust, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		logger.LogError("report", "CustomerDetail", err)
		return nil, apperror.NewReportError("customer detail", err)
	}
	if cust == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	detail := &CustomerDetail{
		Customer: CustomerInfo{
			ID:           cust.ID,
			BusinessName: cust.BusinessName,
			CustomerType: cust.CustomerType,
			CreditLimit:  cust.CreditLimit,
			Outstanding:  cust.OutstandingAmount,
		},
		Metrics:        report.ZeroTotals(),
		GradeBreakdown: []report.GradeBreakdown{},
		MonthlyTrend:   []report.MonthlyTrendPoint{},
		TopExecutives:  []report.Counterparty{},
		RecentRecords:  []entity.Record{},
	}
	if cust.AssignedWarehouse != nil {
		detail.Customer.WarehouseName = cust.AssignedWarehouse.Name
	}

	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied || !scope.Contains(cust.AssignedWarehouseID) {
		detail.DateRange = requestedRange(req)
		return detail, nil
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	detail.DateRange = report.DateRange{Start: f.Start, End: f.End}

	// Voided orders stay visible in counts; their money and kilograms are
	// zeroed in memory, so the default status exclusion is lifted here.
	cf := *f
	cf.CustomerIDs = []uuid.UUID{customerID}
	cf.ExcludeStatuses = nil

	records, err := s.recordRepo.ListForReport(ctx, &cf)
	if err != nil {
		logger.LogError("report", "CustomerDetail", err)
		return nil, apperror.NewReportError("customer detail", err)
	}

	grades := make(map[string]*report.GradeBreakdown)
	var gradeOrder []string
	for i := range records {
		rec := &records[i]
		detail.Metrics.TotalRecords++
		if !rec.IsOrder() {
			detail.Metrics.TotalVisits++
			continue
		}
		detail.Metrics.TotalOrders++
		if rec.IsVoided() {
			continue
		}
		detail.Metrics.TotalRevenue = detail.Metrics.TotalRevenue.Add(rec.TotalAmount)
		detail.Metrics.TotalPaid = detail.Metrics.TotalPaid.Add(rec.PaidAmount)
		for j := range rec.Items {
			it := &rec.Items[j]
			kg := report.NormalizeToKg(it.Quantity, it.Unit, it.PackagingText())
			detail.TotalKg += kg

			grade := "Ungraded"
			if it.Grade != nil && *it.Grade != "" {
				grade = *it.Grade
			}
			g, ok := grades[grade]
			if !ok {
				g = &report.GradeBreakdown{Grade: grade, TotalRevenue: decimal.Zero}
				grades[grade] = g
				gradeOrder = append(gradeOrder, grade)
			}
			g.TotalKg += kg
			g.TotalRevenue = g.TotalRevenue.Add(it.TotalAmount)
		}
	}
	detail.Metrics.TotalOutstanding = detail.Metrics.TotalRevenue.Sub(detail.Metrics.TotalPaid)
	detail.Metrics.AvgOrderValue = avgOrZero(detail.Metrics.TotalRevenue, detail.Metrics.TotalOrders)

	for _, grade := range gradeOrder {
		detail.GradeBreakdown = append(detail.GradeBreakdown, *grades[grade])
	}
	sort.SliceStable(detail.GradeBreakdown, func(i, j int) bool {
		return detail.GradeBreakdown[i].TotalKg > detail.GradeBreakdown[j].TotalKg
	})

	detail.MonthlyTrend = s.monthlyTrend(records)
	detail.TopExecutives = topCounterparties(records, topCount,
		func(rec *entity.Record) (*uuid.UUID, string) {
			if rec.CreatedByID == nil {
				return nil, ""
			}
			name := report.GroupDanglingCreator.Label()
			if rec.CreatedBy != nil {
				name = rec.CreatedBy.FullName()
			}
			return rec.CreatedByID, name
		})
	detail.RecentRecords = latestRecords(records, recentRecords)

	return detail, nil
}

// execAccum accumulates one executive group before finalization.
type execAccum struct {
	row       report.ExecutiveRow
	customers map[uuid.UUID]struct{}
	last      time.Time
}

func newExecAccum(row report.ExecutiveRow) *execAccum {
	row.Totals = report.ZeroTotals()
	return &execAccum{row: row, customers: make(map[uuid.UUID]struct{})}
}

func (a *execAccum) apply(rec *entity.Record) {
	a.row.Totals = applyRecordTotals(a.row.Totals, rec)
	countStatus(&a.row.StatusCounts, rec)
	if rec.CustomerID != nil {
		a.customers[*rec.CustomerID] = struct{}{}
	}
	if rec.RecordDate.After(a.last) {
		a.last = rec.RecordDate
	}
}

func (s *ReportService) finishExec(a *execAccum) report.ExecutiveRow {
	row := a.row
	row.AvgOrderValue = avgOrZero(row.TotalRevenue, row.TotalOrders)
	row.DistinctCustomers = len(a.customers)
	if !a.last.IsZero() {
		last := a.last
		row.LastActivityAt = &last
		days := int(s.now().Sub(last).Hours() / 24)
		row.LastActivityDays = &days
	}
	return row
}

// computeExecutive builds the full (unpaginated, unsorted) executive row set
// plus the underlying record set, which the export adapter reuses for its
// breakdown sheets.
func (s *ReportService) computeExecutive(ctx context.Context, f *report.Filter) ([]report.ExecutiveRow, []entity.Record, error) {
	var roster []entity.User
	if f.PrincipalID != nil {
		u, err := s.userRepo.GetByID(ctx, *f.PrincipalID)
		if err != nil {
			return nil, nil, err
		}
		if u == nil {
			// Nonexistent principal: empty report, not an error.
			return []report.ExecutiveRow{}, nil, nil
		}
		roster = []entity.User{*u}
	} else {
		var err error
		roster, err = s.userRepo.ListForReport(ctx, f.RoleIDs, f.DefaultRoleNames, f.Department)
		if err != nil {
			return nil, nil, err
		}
	}

	records, err := s.recordRepo.ListForReport(ctx, f)
	if err != nil {
		return nil, nil, err
	}

	accums := make(map[uuid.UUID]*execAccum, len(roster))
	order := make([]uuid.UUID, 0, len(roster))
	for i := range roster {
		u := &roster[i]
		id := u.ID
		accums[id] = newExecAccum(report.ExecutiveRow{
			GroupKind:   report.GroupNormal,
			ExecutiveID: &id,
			Name:        u.FullName(),
			EmployeeID:  u.EmployeeID,
			Department:  u.Department,
			RoleName:    u.Role.Name,
		})
		order = append(order, id)
	}

	deleted := newExecAccum(report.ExecutiveRow{
		GroupKind: report.GroupDeletedCreator,
		Name:      report.GroupDeletedCreator.Label(),
	})
	dangling := newExecAccum(report.ExecutiveRow{
		GroupKind: report.GroupDanglingCreator,
		Name:      report.GroupDanglingCreator.Label(),
	})

	// Records whose creator is set but not in the roster: either a creator
	// outside the roster (dropped) or a dangling reference (orphan group).
	var unresolved []*entity.Record
	for i := range records {
		rec := &records[i]
		switch {
		case rec.CreatedByID == nil:
			if f.PrincipalID == nil {
				deleted.apply(rec)
			}
		default:
			if acc, ok := accums[*rec.CreatedByID]; ok {
				acc.apply(rec)
			} else if f.PrincipalID == nil {
				unresolved = append(unresolved, rec)
			}
		}
	}

	if len(unresolved) > 0 {
		ids, err := s.userRepo.ListIDs(ctx)
		if err != nil {
			return nil, nil, err
		}
		exists := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			exists[id] = struct{}{}
		}
		for _, rec := range unresolved {
			if _, ok := exists[*rec.CreatedByID]; !ok {
				dangling.apply(rec)
			}
		}
	}

	rows := make([]report.ExecutiveRow, 0, len(order)+2)
	for _, id := range order {
		acc := accums[id]
		if skipByActivity(f.Activity, acc.row.TotalRecords) {
			continue
		}
		rows = append(rows, s.finishExec(acc))
	}
	// Synthetic orphan groups are never surfaced on a single-principal
	// query, and by construction always have activity.
	if f.PrincipalID == nil && f.Activity != report.ActivityInactive {
		for _, acc := range []*execAccum{deleted, dangling} {
			if acc.row.TotalRecords > 0 {
				rows = append(rows, s.finishExec(acc))
			}
		}
	}

	return rows, records, nil
}

// whAccum accumulates one warehouse group before finalization.
type whAccum struct {
	row       report.WarehouseRow
	customers map[uuid.UUID]struct{}
}

// computeWarehouse builds the full warehouse row set plus the underlying
// record set. Grouping basis is the warehouse recorded on each record.
func (s *ReportService) computeWarehouse(ctx context.Context, f *report.Filter) ([]report.WarehouseRow, []entity.Record, error) {
	var ids []uuid.UUID
	if !f.Scope.Unrestricted {
		ids = f.Scope.WarehouseIDs
	}
	warehouses, err := s.warehouseRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.recordRepo.ListForReport(ctx, f)
	if err != nil {
		return nil, nil, err
	}

	accums := make(map[uuid.UUID]*whAccum, len(warehouses))
	order := make([]uuid.UUID, 0, len(warehouses))
	for i := range warehouses {
		w := &warehouses[i]
		id := w.ID
		accums[id] = &whAccum{
			row: report.WarehouseRow{
				WarehouseID: &id,
				Name:        w.Name,
				Location:    w.Location(),
				Totals:      report.ZeroTotals(),
			},
			customers: make(map[uuid.UUID]struct{}),
		}
		order = append(order, id)
	}

	for i := range records {
		rec := &records[i]
		if rec.WarehouseID == nil {
			continue
		}
		acc, ok := accums[*rec.WarehouseID]
		if !ok {
			continue
		}
		acc.row.Totals = applyRecordTotals(acc.row.Totals, rec)
		countStatus(&acc.row.StatusCounts, rec)
		if rec.CustomerID != nil {
			acc.customers[*rec.CustomerID] = struct{}{}
		}
	}

	rows := make([]report.WarehouseRow, 0, len(order))
	for _, id := range order {
		acc := accums[id]
		if skipByActivity(f.Activity, acc.row.TotalRecords) {
			continue
		}
		acc.row.AvgOrderValue = avgOrZero(acc.row.TotalRevenue, acc.row.TotalOrders)
		acc.row.DistinctCustomers = len(acc.customers)
		rows = append(rows, acc.row)
	}

	return rows, records, nil
}

// custAccum accumulates one customer group before finalization.
type custAccum struct {
	row   report.CustomerRow
	first time.Time
	last  time.Time
}

// computeCustomer builds the full customer row set plus the underlying
// record set. Scoping basis is the customer's assigned warehouse; the record
// scan is restricted to the scoped customer roster, and voided orders are
// zeroed in memory rather than excluded in the query.
func (s *ReportService) computeCustomer(ctx context.Context, f *report.Filter) ([]report.CustomerRow, []entity.Record, error) {
	var whIDs []uuid.UUID
	if !f.Scope.Unrestricted {
		whIDs = f.Scope.WarehouseIDs
	}
	customers, err := s.customerRepo.ListForReport(ctx, whIDs)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uuid.UUID, 0, len(customers))
	for i := range customers {
		ids = append(ids, customers[i].ID)
	}
	cf := *f
	cf.CustomerIDs = ids
	cf.ExcludeStatuses = nil

	records, err := s.recordRepo.ListForReport(ctx, &cf)
	if err != nil {
		return nil, nil, err
	}

	accums := make(map[uuid.UUID]*custAccum, len(customers))
	order := make([]uuid.UUID, 0, len(customers))
	for i := range customers {
		c := &customers[i]
		row := report.CustomerRow{
			CustomerID:        c.ID,
			BusinessName:      c.BusinessName,
			CustomerType:      c.CustomerType,
			Totals:            report.ZeroTotals(),
			OutstandingLedger: c.OutstandingAmount,
		}
		if c.AssignedWarehouse != nil {
			row.WarehouseName = c.AssignedWarehouse.Name
		}
		accums[c.ID] = &custAccum{row: row}
		order = append(order, c.ID)
	}

	for i := range records {
		rec := &records[i]
		if rec.CustomerID == nil {
			continue
		}
		acc, ok := accums[*rec.CustomerID]
		if !ok {
			continue
		}
		acc.row.TotalRecords++
		if !rec.IsOrder() {
			acc.row.TotalVisits++
			continue
		}
		// Voided orders count toward total_orders for visibility but
		// contribute zero money and zero kilograms.
		acc.row.TotalOrders++
		if acc.first.IsZero() || rec.RecordDate.Before(acc.first) {
			acc.first = rec.RecordDate
		}
		if rec.RecordDate.After(acc.last) {
			acc.last = rec.RecordDate
		}
		if rec.IsVoided() {
			continue
		}
		acc.row.TotalRevenue = acc.row.TotalRevenue.Add(rec.TotalAmount)
		acc.row.TotalPaid = acc.row.TotalPaid.Add(rec.PaidAmount)
		for j := range rec.Items {
			it := &rec.Items[j]
			acc.row.TotalKg += report.NormalizeToKg(it.Quantity, it.Unit, it.PackagingText())
		}
	}

	rows := make([]report.CustomerRow, 0, len(order))
	for _, id := range order {
		acc := accums[id]
		if skipByActivity(f.Activity, acc.row.TotalRecords) {
			continue
		}
		acc.row.TotalOutstanding = acc.row.TotalRevenue.Sub(acc.row.TotalPaid)
		acc.row.AvgOrderValue = avgOrZero(acc.row.TotalRevenue, acc.row.TotalOrders)
		if !acc.first.IsZero() {
			first := acc.first
			acc.row.FirstOrderDate = &first
		}
		if !acc.last.IsZero() {
			last := acc.last
			acc.row.LastOrderDate = &last
			days := int(s.now().Sub(last).Hours() / 24)
			acc.row.DaysSinceLastOrder = &days
		}
		rows = append(rows, acc.row)
	}

	return rows, records, nil
}

// monthlyTrend buckets the record set into the trailing twelve calendar
// months ending in the current one. Voided orders count but carry no money.
func (s *ReportService) monthlyTrend(records []entity.Record) []report.MonthlyTrendPoint {
	byMonth := make(map[string]*report.MonthlyTrendPoint, trendMonths)
	now := s.now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	points := make([]report.MonthlyTrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := anchor.AddDate(0, -i, 0).Format("2006-01")
		points = append(points, report.MonthlyTrendPoint{Month: month, TotalRevenue: decimal.Zero})
	}
	for i := range points {
		byMonth[points[i].Month] = &points[i]
	}

	for i := range records {
		rec := &records[i]
		if !rec.IsOrder() {
			continue
		}
		point, ok := byMonth[rec.RecordDate.Format("2006-01")]
		if !ok {
			continue
		}
		point.TotalOrders++
		if rec.IsVoided() {
			continue
		}
		point.TotalRevenue = point.TotalRevenue.Add(rec.TotalAmount)
		for j := range rec.Items {
			it := &rec.Items[j]
			point.TotalKg += report.NormalizeToKg(it.Quantity, it.Unit, it.PackagingText())
		}
	}

	return points
}

// topCounterparties ranks the order counterparties resolved by identify,
// descending by revenue.
func topCounterparties(records []entity.Record, limit int, identify func(*entity.Record) (*uuid.UUID, string)) []report.Counterparty {
	byID := make(map[uuid.UUID]*report.Counterparty)
	var order []uuid.UUID
	for i := range records {
		rec := &records[i]
		if !rec.IsOrder() {
			continue
		}
		id, name := identify(rec)
		if id == nil {
			continue
		}
		cp, ok := byID[*id]
		if !ok {
			cp = &report.Counterparty{ID: *id, Name: name, TotalRevenue: decimal.Zero}
			byID[*id] = cp
			order = append(order, *id)
		}
		cp.TotalOrders++
		if !rec.IsVoided() {
			cp.TotalRevenue = cp.TotalRevenue.Add(rec.TotalAmount)
		}
	}

	ranked := make([]report.Counterparty, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byID[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		c := ranked[i].TotalRevenue.Cmp(ranked[j].TotalRevenue)
		if c != 0 {
			return c > 0
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// latestRecords returns the newest n records, newest first. The input is
// already sorted by record date ascending.
func latestRecords(records []entity.Record, n int) []entity.Record {
	start := len(records) - n
	if start < 0 {
		start = 0
	}
	out := make([]entity.Record, 0, len(records)-start)
	for i := len(records) - 1; i >= start; i-- {
		out = append(out, records[i])
	}
	return out
}

// breakdownRows buckets the record set by the given date layout and group
// name, for the date-wise and month-wise export sheets. nameFor resolves the
// record's group name; records it rejects are left out, keeping the
// breakdown consistent with the rows of the list report. Buckets are
// emitted sorted by bucket then group name.
func breakdownRows(records []entity.Record, layout string, nameFor func(*entity.Record) (string, bool)) []report.BreakdownRow {
	type key struct{ bucket, name string }
	byKey := make(map[key]*report.BreakdownRow)
	var order []key
	for i := range records {
		rec := &records[i]
		name, ok := nameFor(rec)
		if !ok {
			continue
		}
		k := key{bucket: rec.RecordDate.Format(layout), name: name}
		row, ok := byKey[k]
		if !ok {
			row = &report.BreakdownRow{Bucket: k.bucket, GroupName: k.name, TotalRevenue: decimal.Zero}
			byKey[k] = row
			order = append(order, k)
		}
		if !rec.IsOrder() {
			continue
		}
		row.TotalOrders++
		if rec.IsVoided() {
			continue
		}
		row.TotalRevenue = row.TotalRevenue.Add(rec.TotalAmount)
		for j := range rec.Items {
			it := &rec.Items[j]
			row.TotalKg += report.NormalizeToKg(it.Quantity, it.Unit, it.PackagingText())
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].bucket != order[j].bucket {
			return order[i].bucket < order[j].bucket
		}
		return order[i].name < order[j].name
	})
	rows := make([]report.BreakdownRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byKey[k])
	}
	return rows
}

// applyRecordTotals adds one record to the shared aggregate shape. Visits
// always carry zero money and contribute only to the counts.
func applyRecordTotals(t report.Totals, rec *entity.Record) report.Totals {
	t.TotalRecords++
	if !rec.IsOrder() {
		t.TotalVisits++
		return t
	}
	t.TotalOrders++
	t.TotalRevenue = t.TotalRevenue.Add(rec.TotalAmount)
	t.TotalPaid = t.TotalPaid.Add(rec.PaidAmount)
	t.TotalOutstanding = t.TotalRevenue.Sub(t.TotalPaid)
	return t
}

func countStatus(c *report.StatusCounts, rec *entity.Record) {
	if !rec.IsOrder() {
		return
	}
	switch rec.Status {
	case enum.OrderStatusPending:
		c.Pending++
	case enum.OrderStatusApproved:
		c.Approved++
	case enum.OrderStatusDelivered:
		c.Delivered++
	case enum.OrderStatusCompleted:
		c.Completed++
	}
}

// avgOrZero guards the average against empty groups.
func avgOrZero(revenue decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(count))).Round(2)
}

func skipByActivity(activity report.ActivityFilter, totalRecords int) bool {
	switch activity {
	case report.ActivityActive:
		return totalRecords == 0
	case report.ActivityInactive:
		return totalRecords > 0
	}
	return false
}

// requestedRange echoes the caller's period on zeroed reports, normalized
// the same way BuildFilter normalizes it.
func requestedRange(req *report.Request) report.DateRange {
	dr := report.DateRange{}
	if req.StartDate != nil {
		start := report.StartOfDay(*req.StartDate)
		dr.Start = &start
	}
	if req.EndDate != nil {
		end := report.EndOfDay(*req.EndDate)
		dr.End = &end
	}
	return dr
}

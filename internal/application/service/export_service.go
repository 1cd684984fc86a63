package service

import (
	"context"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/attaflow/attaflow-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	sheetSummary   = "Summary"
	sheetReport    = "Report"
	sheetDateWise  = "Date-wise"
	sheetMonthWise = "Month-wise"
)

const (
	dayBucketLayout   = "2006-01-02"
	monthBucketLayout = "2006-01"
)

// ExportService renders list reports into multi-sheet xlsx workbooks. It
// derives every sheet from the same computed row and record sets the list
// report serves, so exported numbers always match the API response.
type ExportService struct {
	reports *ReportService
}

// NewExportService creates a new export service
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

// ExportExecutiveReport builds the executive report workbook.
func (s *ExportService) ExportExecutiveReport(ctx context.Context, requester *entity.User, req *report.Request) (*excelize.File, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		return s.renderExecutive([]report.ExecutiveRow{}, nil, requestedRange(req))
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, records, err := s.reports.computeExecutive(ctx, f)
	if err != nil {
		logger.LogError("export", "ExportExecutiveReport", err)
		return nil, apperror.NewReportError("executive report export", err)
	}
	report.SortExecutives(rows, f.SortBy, f.SortOrder)

	return s.renderExecutive(rows, records, report.DateRange{Start: f.Start, End: f.End})
}

// ExportWarehouseReport builds the warehouse report workbook.
func (s *ExportService) ExportWarehouseReport(ctx context.Context, requester *entity.User, req *report.Request) (*excelize.File, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		return s.renderWarehouse([]report.WarehouseRow{}, nil, requestedRange(req))
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, records, err := s.reports.computeWarehouse(ctx, f)
	if err != nil {
		logger.LogError("export", "ExportWarehouseReport", err)
		return nil, apperror.NewReportError("warehouse report export", err)
	}
	report.SortWarehouses(rows, f.SortBy, f.SortOrder)

	return s.renderWarehouse(rows, records, report.DateRange{Start: f.Start, End: f.End})
}

// ExportCustomerReport builds the customer report workbook.
func (s *ExportService) ExportCustomerReport(ctx context.Context, requester *entity.User, req *report.Request) (*excelize.File, error) {
	scope := report.ResolveScope(requester, req.WarehouseID)
	if scope.Denied {
		return s.renderCustomer([]report.CustomerRow{}, nil, requestedRange(req))
	}

	f, err := report.BuildFilter(req, scope)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	rows, records, err := s.reports.computeCustomer(ctx, f)
	if err != nil {
		logger.LogError("export", "ExportCustomerReport", err)
		return nil, apperror.NewReportError("customer report export", err)
	}
	report.SortCustomers(rows, f.SortBy, f.SortOrder)

	return s.renderCustomer(rows, records, report.DateRange{Start: f.Start, End: f.End})
}

func (s *ExportService) renderExecutive(rows []report.ExecutiveRow, records []entity.Record, dr report.DateRange) (*excelize.File, error) {
	summary := report.SummarizeExecutives(rows)

	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}

	setRow(f, sheetSummary, 1, "Executive Performance Report")
	setRow(f, sheetSummary, 2, "Period", rangeText(dr))
	setRow(f, sheetSummary, 4, "Total Executives", summary.TotalExecutives)
	writeTotals(f, 5, summary.Totals)

	setRow(f, sheetReport, 1,
		"Name", "Employee ID", "Department", "Role",
		"Records", "Orders", "Visits",
		"Revenue", "Paid", "Outstanding", "Avg Order Value",
		"Customers", "Last Activity")
	for i, r := range rows {
		last := ""
		if r.LastActivityAt != nil {
			last = r.LastActivityAt.Format(dayBucketLayout)
		}
		setRow(f, sheetReport, i+2,
			r.Name, r.EmployeeID, r.Department, r.RoleName,
			r.TotalRecords, r.TotalOrders, r.TotalVisits,
			r.TotalRevenue.InexactFloat64(), r.TotalPaid.InexactFloat64(),
			r.TotalOutstanding.InexactFloat64(), r.AvgOrderValue.InexactFloat64(),
			r.DistinctCustomers, last)
	}

	nameFor := executiveNameResolver(rows)
	writeBreakdown(f, sheetDateWise, breakdownRows(records, dayBucketLayout, nameFor))
	writeBreakdown(f, sheetMonthWise, breakdownRows(records, monthBucketLayout, nameFor))

	return f, nil
}

func (s *ExportService) renderWarehouse(rows []report.WarehouseRow, records []entity.Record, dr report.DateRange) (*excelize.File, error) {
	summary := report.SummarizeWarehouses(rows)

	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}

	setRow(f, sheetSummary, 1, "Warehouse Revenue Report")
	setRow(f, sheetSummary, 2, "Period", rangeText(dr))
	setRow(f, sheetSummary, 4, "Total Warehouses", summary.TotalWarehouses)
	writeTotals(f, 5, summary.Totals)

	setRow(f, sheetReport, 1,
		"Warehouse", "Location",
		"Records", "Orders", "Visits",
		"Revenue", "Paid", "Outstanding", "Avg Order Value", "Customers")
	for i, r := range rows {
		setRow(f, sheetReport, i+2,
			r.Name, r.Location,
			r.TotalRecords, r.TotalOrders, r.TotalVisits,
			r.TotalRevenue.InexactFloat64(), r.TotalPaid.InexactFloat64(),
			r.TotalOutstanding.InexactFloat64(), r.AvgOrderValue.InexactFloat64(),
			r.DistinctCustomers)
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		if r.WarehouseID != nil {
			names[*r.WarehouseID] = r.Name
		}
	}
	nameFor := func(rec *entity.Record) (string, bool) {
		if rec.WarehouseID == nil {
			return "", false
		}
		name, ok := names[*rec.WarehouseID]
		return name, ok
	}
	writeBreakdown(f, sheetDateWise, breakdownRows(records, dayBucketLayout, nameFor))
	writeBreakdown(f, sheetMonthWise, breakdownRows(records, monthBucketLayout, nameFor))

	return f, nil
}

func (s *ExportService) renderCustomer(rows []report.CustomerRow, records []entity.Record, dr report.DateRange) (*excelize.File, error) {
	summary := report.SummarizeCustomers(rows)

	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}

	setRow(f, sheetSummary, 1, "Customer Purchase Report")
	setRow(f, sheetSummary, 2, "Period", rangeText(dr))
	setRow(f, sheetSummary, 4, "Total Customers", summary.TotalCustomers)
	setRow(f, sheetSummary, 5, "Total Kg", summary.TotalKg)
	writeTotals(f, 6, summary.Totals)

	setRow(f, sheetReport, 1,
		"Business Name", "Type", "Warehouse",
		"Records", "Orders", "Visits",
		"Revenue", "Paid", "Outstanding", "Avg Order Value",
		"Total Kg", "Ledger Outstanding", "First Order", "Last Order")
	for i, r := range rows {
		setRow(f, sheetReport, i+2,
			r.BusinessName, r.CustomerType, r.WarehouseName,
			r.TotalRecords, r.TotalOrders, r.TotalVisits,
			r.TotalRevenue.InexactFloat64(), r.TotalPaid.InexactFloat64(),
			r.TotalOutstanding.InexactFloat64(), r.AvgOrderValue.InexactFloat64(),
			r.TotalKg, r.OutstandingLedger.InexactFloat64(),
			dateText(r.FirstOrderDate), dateText(r.LastOrderDate))
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		names[r.CustomerID] = r.BusinessName
	}
	nameFor := func(rec *entity.Record) (string, bool) {
		if rec.CustomerID == nil {
			return "", false
		}
		name, ok := names[*rec.CustomerID]
		return name, ok
	}
	writeBreakdown(f, sheetDateWise, breakdownRows(records, dayBucketLayout, nameFor))
	writeBreakdown(f, sheetMonthWise, breakdownRows(records, monthBucketLayout, nameFor))

	return f, nil
}

// executiveNameResolver maps a record back to the executive row it was
// attributed to, including the synthetic orphan groups when present.
func executiveNameResolver(rows []report.ExecutiveRow) func(*entity.Record) (string, bool) {
	names := make(map[uuid.UUID]string, len(rows))
	var deletedLabel, danglingLabel string
	for _, r := range rows {
		switch r.GroupKind {
		case report.GroupDeletedCreator:
			deletedLabel = r.Name
		case report.GroupDanglingCreator:
			danglingLabel = r.Name
		default:
			if r.ExecutiveID != nil {
				names[*r.ExecutiveID] = r.Name
			}
		}
	}
	return func(rec *entity.Record) (string, bool) {
		if rec.CreatedByID == nil {
			return deletedLabel, deletedLabel != ""
		}
		if name, ok := names[*rec.CreatedByID]; ok {
			return name, true
		}
		return danglingLabel, danglingLabel != ""
	}
}

func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetReport, sheetDateWise, sheetMonthWise} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeTotals(f *excelize.File, startRow int, t report.Totals) {
	setRow(f, sheetSummary, startRow, "Total Records", t.TotalRecords)
	setRow(f, sheetSummary, startRow+1, "Total Orders", t.TotalOrders)
	setRow(f, sheetSummary, startRow+2, "Total Visits", t.TotalVisits)
	setRow(f, sheetSummary, startRow+3, "Total Revenue", t.TotalRevenue.InexactFloat64())
	setRow(f, sheetSummary, startRow+4, "Total Paid", t.TotalPaid.InexactFloat64())
	setRow(f, sheetSummary, startRow+5, "Total Outstanding", t.TotalOutstanding.InexactFloat64())
	setRow(f, sheetSummary, startRow+6, "Avg Order Value", t.AvgOrderValue.InexactFloat64())
}

func writeBreakdown(f *excelize.File, sheet string, rows []report.BreakdownRow) {
	setRow(f, sheet, 1, "Bucket", "Group", "Orders", "Revenue", "Total Kg")
	for i, r := range rows {
		setRow(f, sheet, i+2, r.Bucket, r.GroupName, r.TotalOrders, r.TotalRevenue.InexactFloat64(), r.TotalKg)
	}
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func rangeText(dr report.DateRange) string {
	switch {
	case dr.Start != nil && dr.End != nil:
		return dr.Start.Format(dayBucketLayout) + " to " + dr.End.Format(dayBucketLayout)
	case dr.Start != nil:
		return "from " + dr.Start.Format(dayBucketLayout)
	case dr.End != nil:
		return "until " + dr.End.Format(dayBucketLayout)
	default:
		return "all time"
	}
}

func dateText(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dayBucketLayout)
}

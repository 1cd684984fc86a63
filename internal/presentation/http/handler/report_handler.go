package handler

import (
	"time"

	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/request"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const reportDateLayout = "2006-01-02"

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExecutiveReport handles GET /reports/executives
func (h *ReportHandler) ExecutiveReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}

	result, err := h.reportService.ExecutiveReport(c.Request.Context(), GetPrincipal(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Executive report generated", result)
}

// ExecutiveDetail handles GET /reports/executives/:id
func (h *ReportHandler) ExecutiveDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid executive ID")
		return
	}

	req, ok := bindReportRequest(c)
	if !ok {
		return
	}

	result, err := h.reportService.ExecutiveDetail(c.Request.Context(), GetPrincipal(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Executive detail generated", result)
}

// WarehouseReport handles GET /reports/warehouses
func (h *ReportHandler) WarehouseReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}

	result, err := h.reportService.WarehouseReport(c.Request.Context(), GetPrincipal(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse report generated", result)
}

// CustomerReport handles GET /reports/customers
func (h *ReportHandler) CustomerReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}

	result, err := h.reportService.CustomerReport(c.Request.Context(), GetPrincipal(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer report generated", result)
}

// CustomerDetail handles GET /reports/customers/:id
func (h *ReportHandler) CustomerDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	req, ok := bindReportRequest(c)
	if !ok {
		return
	}

	result, err := h.reportService.CustomerDetail(c.Request.Context(), GetPrincipal(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer detail generated", result)
}

// bindReportRequest parses the report query string into the inbound report
// contract. Malformed ids and dates are caller input errors; they never
// reach the aggregator.
func bindReportRequest(c *gin.Context) (*report.Request, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid report query: "+err.Error())
		return nil, false
	}

	req := &report.Request{
		RoleIDs:   q.RoleIDs,
		Kind:      enum.RecordKind(q.Kind),
		Activity:  report.ActivityFilter(q.Activity),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		Limit:     q.Limit,
	}

	if q.StartDate != "" {
		t, err := time.Parse(reportDateLayout, q.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return nil, false
		}
		req.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(reportDateLayout, q.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return nil, false
		}
		req.EndDate = &t
	}
	if q.ExecutiveID != "" {
		id, err := uuid.Parse(q.ExecutiveID)
		if err != nil {
			response.BadRequest(c, "Invalid executive_id")
			return nil, false
		}
		req.PrincipalID = &id
	}
	if q.WarehouseID != "" {
		id, err := uuid.Parse(q.WarehouseID)
		if err != nil {
			response.BadRequest(c, "Invalid warehouse_id")
			return nil, false
		}
		req.WarehouseID = &id
	}
	if q.Department != "" {
		dept := q.Department
		req.Department = &dept
	}
	if q.Status != "" {
		status := enum.OrderStatus(q.Status)
		req.Status = &status
	}
	if q.DeliveryStatus != "" {
		status := enum.DeliveryStatus(q.DeliveryStatus)
		req.DeliveryStatus = &status
	}

	return req, true
}

package handler

import (
	"net/http"

	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles report export endpoints
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportExecutiveReport handles GET /reports/executives/export
func (h *ExportHandler) ExportExecutiveReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}
	h.export(c, "executive_report.xlsx", func() (*excelize.File, error) {
		return h.exportService.ExportExecutiveReport(c.Request.Context(), GetPrincipal(c), req)
	})
}

// ExportWarehouseReport handles GET /reports/warehouses/export
func (h *ExportHandler) ExportWarehouseReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}
	h.export(c, "warehouse_report.xlsx", func() (*excelize.File, error) {
		return h.exportService.ExportWarehouseReport(c.Request.Context(), GetPrincipal(c), req)
	})
}

// ExportCustomerReport handles GET /reports/customers/export
func (h *ExportHandler) ExportCustomerReport(c *gin.Context) {
	req, ok := bindReportRequest(c)
	if !ok {
		return
	}
	h.export(c, "customer_report.xlsx", func() (*excelize.File, error) {
		return h.exportService.ExportCustomerReport(c.Request.Context(), GetPrincipal(c), req)
	})
}

func (h *ExportHandler) export(c *gin.Context, filename string, build func() (*excelize.File, error)) {
	f, err := build()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

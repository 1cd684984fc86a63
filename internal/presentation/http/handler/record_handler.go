package handler

import (
	"time"

	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/request"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/response"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordHandler handles order/visit record endpoints
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// CreateOrder handles POST /records/orders
func (h *RecordHandler) CreateOrder(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer_id")
		return
	}
	warehouseID, ok := parseOptionalUUID(c, req.WarehouseID, "warehouse_id")
	if !ok {
		return
	}
	recordDate, err := time.Parse(reportDateLayout, req.RecordDate)
	if err != nil {
		response.BadRequest(c, "Invalid record_date, expected YYYY-MM-DD")
		return
	}

	discount, ok := parseMoney(c, req.Discount, "discount")
	if !ok {
		return
	}
	tax, ok := parseMoney(c, req.Tax, "tax")
	if !ok {
		return
	}
	paid, ok := parseMoney(c, req.PaidAmount, "paid_amount")
	if !ok {
		return
	}

	items := make([]service.LineItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		rate, err := decimal.NewFromString(it.RatePerUnit)
		if err != nil {
			response.BadRequest(c, "Invalid rate_per_unit")
			return
		}
		items = append(items, service.LineItemInput{
			ProductName: it.ProductName,
			Grade:       it.Grade,
			Quantity:    it.Quantity,
			Unit:        enum.QuantityUnit(it.Unit),
			RatePerUnit: rate,
			Packaging:   it.Packaging,
		})
	}

	record, err := h.recordService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CreatedByID: *userID,
		CustomerID:  customerID,
		WarehouseID: warehouseID,
		RecordDate:  recordDate,
		Discount:    discount,
		Tax:         tax,
		PaidAmount:  paid,
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", record)
}

// CreateVisit handles POST /records/visits
func (h *RecordHandler) CreateVisit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer_id")
		return
	}
	warehouseID, ok := parseOptionalUUID(c, req.WarehouseID, "warehouse_id")
	if !ok {
		return
	}
	recordDate, err := time.Parse(reportDateLayout, req.RecordDate)
	if err != nil {
		response.BadRequest(c, "Invalid record_date, expected YYYY-MM-DD")
		return
	}

	record, err := h.recordService.CreateVisit(c.Request.Context(), &service.CreateVisitInput{
		CreatedByID:   *userID,
		CustomerID:    customerID,
		WarehouseID:   warehouseID,
		RecordDate:    recordDate,
		VisitLocation: req.VisitLocation,
		VisitImage:    req.VisitImage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visit created", record)
}

// GetRecord handles GET /records/:id
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return
	}

	record, err := h.recordService.GetRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record retrieved", record)
}

// ListRecords handles GET /records
func (h *RecordHandler) ListRecords(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	pageParams.Validate()

	params := &repository.RecordFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if kind := c.Query("kind"); kind != "" {
		k := enum.RecordKind(kind)
		params.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := enum.OrderStatus(status)
		params.Status = &s
	}

	result, err := h.recordService.ListRecords(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Records retrieved", result)
}

// ListRecordsWithCursor handles GET /records/cursor
func (h *RecordHandler) ListRecordsWithCursor(c *gin.Context) {
	var cursorParams pagination.CursorParams
	if err := c.ShouldBindQuery(&cursorParams); err != nil {
		response.BadRequest(c, "Invalid cursor parameters")
		return
	}

	params := &repository.RecordCursorFilterParams{
		Cursor: &cursorParams,
		Search: c.Query("search"),
	}
	if kind := c.Query("kind"); kind != "" {
		k := enum.RecordKind(kind)
		params.Kind = &k
	}

	result, err := h.recordService.ListRecordsWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Records retrieved", result)
}

// UpdateStatus handles PATCH /records/:id/status
func (h *RecordHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return
	}

	var req request.UpdateRecordStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateStatusInput{ID: id}
	if req.Status != nil {
		s := enum.OrderStatus(*req.Status)
		input.Status = &s
	}
	if req.DeliveryStatus != nil {
		s := enum.DeliveryStatus(*req.DeliveryStatus)
		input.DeliveryStatus = &s
	}
	if req.PaidAmount != nil {
		paid, err := decimal.NewFromString(*req.PaidAmount)
		if err != nil {
			response.BadRequest(c, "Invalid paid_amount")
			return
		}
		input.PaidAmount = &paid
	}

	record, err := h.recordService.UpdateStatus(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record updated", record)
}

// DeleteRecord handles DELETE /records/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parseOptionalUUID parses an optional uuid string field, writing a 400
// response on failure.
func parseOptionalUUID(c *gin.Context, raw *string, field string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+field)
		return nil, false
	}
	return &id, true
}

// parseMoney parses an optional decimal string field, defaulting to zero.
func parseMoney(c *gin.Context, raw, field string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		response.BadRequest(c, "Invalid "+field)
		return decimal.Zero, false
	}
	return d, true
}

package handler

import (
	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/request"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/response"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	warehouseID, ok := parseOptionalUUID(c, req.AssignedWarehouseID, "assigned_warehouse_id")
	if !ok {
		return
	}
	creditLimit, ok := parseMoney(c, req.CreditLimit, "credit_limit")
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		BusinessName:        req.BusinessName,
		ContactName:         req.ContactName,
		CustomerType:        req.CustomerType,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		CreditLimit:         creditLimit,
		AssignedWarehouseID: warehouseID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	pageParams.Validate()

	params := &repository.CustomerFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
	}
	if ct := c.Query("customer_type"); ct != "" {
		params.CustomerType = &ct
	}
	if wh := c.Query("warehouse_id"); wh != "" {
		id, err := uuid.Parse(wh)
		if err != nil {
			response.BadRequest(c, "Invalid warehouse_id")
			return
		}
		params.WarehouseID = &id
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved", result)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateCustomerInput{
		ID:           id,
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		CustomerType: req.CustomerType,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
	}
	if req.CreditLimit != nil {
		limit, err := decimal.NewFromString(*req.CreditLimit)
		if err != nil {
			response.BadRequest(c, "Invalid credit_limit")
			return
		}
		input.CreditLimit = &limit
	}
	if req.OutstandingAmount != nil {
		outstanding, err := decimal.NewFromString(*req.OutstandingAmount)
		if err != nil {
			response.BadRequest(c, "Invalid outstanding_amount")
			return
		}
		input.OutstandingAmount = &outstanding
	}
	if req.AssignedWarehouseID != nil {
		warehouseID, ok := parseOptionalUUID(c, req.AssignedWarehouseID, "assigned_warehouse_id")
		if !ok {
			return
		}
		input.AssignedWarehouseID = warehouseID
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

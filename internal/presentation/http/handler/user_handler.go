package handler

import (
	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/request"
	"github.com/attaflow/attaflow-api/internal/presentation/http/dto/response"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	warehouseID, ok := parseOptionalUUID(c, req.PrimaryWarehouseID, "primary_warehouse_id")
	if !ok {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		EmployeeID:         req.EmployeeID,
		Email:              req.Email,
		Password:           req.Password,
		Phone:              req.Phone,
		Department:         req.Department,
		RoleID:             req.RoleID,
		PrimaryWarehouseID: warehouseID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created", user)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved", user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	pageParams.Validate()

	params := &repository.UserFilterParams{
		Pagination: &pageParams,
		Search:     c.Query("search"),
	}
	if dept := c.Query("department"); dept != "" {
		params.Department = &dept
	}
	if wh := c.Query("warehouse_id"); wh != "" {
		id, err := uuid.Parse(wh)
		if err != nil {
			response.BadRequest(c, "Invalid warehouse_id")
			return
		}
		params.WarehouseID = &id
	}

	result, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved", result)
}

// ListRoles handles GET /users/roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Roles retrieved", roles)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateUserInput{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Department: req.Department,
		RoleID:     req.RoleID,
	}
	if req.PrimaryWarehouseID != nil {
		warehouseID, ok := parseOptionalUUID(c, req.PrimaryWarehouseID, "primary_warehouse_id")
		if !ok {
			return
		}
		input.PrimaryWarehouseID = warehouseID
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated", user)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

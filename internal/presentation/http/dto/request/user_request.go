package request

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	FirstName          string  `json:"first_name" binding:"required,min=2,max=255"`
	LastName           string  `json:"last_name" binding:"required,min=2,max=255"`
	EmployeeID         string  `json:"employee_id" binding:"required"`
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required,min=8"`
	Phone              *string `json:"phone"`
	Department         string  `json:"department"`
	RoleID             uint    `json:"role_id" binding:"required"`
	PrimaryWarehouseID *string `json:"primary_warehouse_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	FirstName          *string `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName           *string `json:"last_name" binding:"omitempty,min=2,max=255"`
	Phone              *string `json:"phone"`
	Department         *string `json:"department"`
	RoleID             *uint   `json:"role_id"`
	PrimaryWarehouseID *string `json:"primary_warehouse_id" binding:"omitempty,uuid"`
}

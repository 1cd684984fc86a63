package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	BusinessName        string  `json:"business_name" binding:"required,min=2,max=255"`
	ContactName         *string `json:"contact_name"`
	CustomerType        string  `json:"customer_type" binding:"required"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Address             *string `json:"address"`
	City                string  `json:"city"`
	State               string  `json:"state"`
	CreditLimit         string  `json:"credit_limit"`
	AssignedWarehouseID *string `json:"assigned_warehouse_id" binding:"omitempty,uuid"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	BusinessName        *string `json:"business_name" binding:"omitempty,min=2,max=255"`
	ContactName         *string `json:"contact_name"`
	CustomerType        *string `json:"customer_type"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Address             *string `json:"address"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	CreditLimit         *string `json:"credit_limit"`
	OutstandingAmount   *string `json:"outstanding_amount"`
	AssignedWarehouseID *string `json:"assigned_warehouse_id" binding:"omitempty,uuid"`
}

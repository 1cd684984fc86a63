package request

// CreateWarehouseRequest represents a warehouse creation request
type CreateWarehouseRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=255"`
	City  string `json:"city"`
	State string `json:"state"`
}

// UpdateWarehouseRequest represents a warehouse update request
type UpdateWarehouseRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	City  *string `json:"city"`
	State *string `json:"state"`
}

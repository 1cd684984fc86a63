package request

// LineItemRequest represents one order line
type LineItemRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Grade       *string `json:"grade"`
	Quantity    float64 `json:"quantity" binding:"required,gte=0"`
	Unit        string  `json:"unit" binding:"required"`
	RatePerUnit string  `json:"rate_per_unit" binding:"required"`
	Packaging   *string `json:"packaging"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID  string            `json:"customer_id" binding:"required,uuid"`
	WarehouseID *string           `json:"warehouse_id" binding:"omitempty,uuid"`
	RecordDate  string            `json:"record_date" binding:"required"`
	Discount    string            `json:"discount"`
	Tax         string            `json:"tax"`
	PaidAmount  string            `json:"paid_amount"`
	Items       []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateVisitRequest represents a visit creation request
type CreateVisitRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required,uuid"`
	WarehouseID   *string `json:"warehouse_id" binding:"omitempty,uuid"`
	RecordDate    string  `json:"record_date" binding:"required"`
	VisitLocation *string `json:"visit_location"`
	VisitImage    *string `json:"visit_image"`
}

// UpdateRecordStatusRequest represents a status update request
type UpdateRecordStatusRequest struct {
	Status         *string `json:"status"`
	DeliveryStatus *string `json:"delivery_status"`
	PaidAmount     *string `json:"paid_amount"`
}

package request

// ReportQuery carries the report filter inputs bound from the query string.
// Date fields use the 2006-01-02 layout; invalid ids or dates are caller
// input errors rejected before any aggregation runs.
type ReportQuery struct {
	StartDate      string `form:"start_date"`
	EndDate        string `form:"end_date"`
	ExecutiveID    string `form:"executive_id"`
	Department     string `form:"department"`
	RoleIDs        []uint `form:"role_ids"`
	WarehouseID    string `form:"warehouse_id"`
	Kind           string `form:"kind"`
	Activity       string `form:"activity"`
	Status         string `form:"status"`
	DeliveryStatus string `form:"delivery_status"`
	SortBy         string `form:"sort_by"`
	SortOrder      string `form:"sort_order"`
	Page           int    `form:"page"`
	Limit          int    `form:"limit"`
}

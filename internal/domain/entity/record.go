package entity

import (
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record is a transaction record: an order or a field visit, discriminated
// by Kind. Orders carry line items and monetary totals; visits carry a
// capture location/image and always-zero monetary fields.
//
// CreatedByID is nullable and may dangle after a user is hard-deleted; the
// reporting engine tolerates both cases (see the orphan reconciliation in
// the report service).
type Record struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Kind           enum.RecordKind     `gorm:"size:20;not null;index" json:"kind"`
	RecordNo       string              `gorm:"size:100;unique;not null" json:"record_no"`
	CreatedByID    *uuid.UUID          `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	CustomerID     *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	WarehouseID    *uuid.UUID          `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	RecordDate     time.Time           `gorm:"not null;index" json:"record_date"`
	Status         enum.OrderStatus    `gorm:"size:20;default:'pending';index" json:"status"`
	PaymentStatus  enum.PaymentStatus  `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	DeliveryStatus enum.DeliveryStatus `gorm:"size:20;default:'pending'" json:"delivery_status"`
	SubTotal       decimal.Decimal     `gorm:"type:numeric(14,2);default:0" json:"sub_total"`
	Discount       decimal.Decimal     `gorm:"type:numeric(14,2);default:0" json:"discount"`
	Tax            decimal.Decimal     `gorm:"type:numeric(14,2);default:0" json:"tax"`
	TotalAmount    decimal.Decimal     `gorm:"type:numeric(14,2);default:0" json:"total_amount"`
	PaidAmount     decimal.Decimal     `gorm:"type:numeric(14,2);default:0" json:"paid_amount"`
	VisitLocation  *string             `gorm:"size:255" json:"visit_location,omitempty"`
	VisitImage     *string             `gorm:"size:255" json:"visit_image,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	CreatedBy *User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Customer  *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []LineItem `gorm:"foreignKey:RecordID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Record model
func (Record) TableName() string {
	return "records"
}

// IsOrder reports whether the record is an order.
func (r *Record) IsOrder() bool {
	return r.Kind == enum.RecordKindOrder
}

// Outstanding returns total minus paid for the record.
func (r *Record) Outstanding() decimal.Decimal {
	return r.TotalAmount.Sub(r.PaidAmount)
}

// IsVoided reports whether the order should contribute zero to monetary
// and kilogram totals: cancelled/rejected lifecycle, or returned delivery.
func (r *Record) IsVoided() bool {
	if r.Status == enum.OrderStatusCancelled || r.Status == enum.OrderStatusRejected {
		return true
	}
	return r.DeliveryStatus == enum.DeliveryStatusReturned
}

// LineItem is a single product line on an order record.
// TotalAmount is always Quantity x RatePerUnit.
type LineItem struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	RecordID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"record_id"`
	ProductName string            `gorm:"size:255;not null" json:"product_name"`
	Grade       *string           `gorm:"size:100" json:"grade,omitempty"`
	Quantity    float64           `gorm:"not null" json:"quantity"`
	Unit        enum.QuantityUnit `gorm:"size:30;not null" json:"unit"`
	RatePerUnit decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"rate_per_unit"`
	TotalAmount decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"total_amount"`
	Packaging   *string           `gorm:"size:255" json:"packaging,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Relationships
	Record Record `gorm:"foreignKey:RecordID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// PackagingText returns the packaging description or "".
func (li *LineItem) PackagingText() string {
	if li.Packaging == nil {
		return ""
	}
	return *li.Packaging
}

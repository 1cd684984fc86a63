package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a buying party (dealer, retailer, distributor).
// AssignedWarehouseID scopes customer-level reports to a warehouse
// independently of the warehouse recorded on each order.
type Customer struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BusinessName        string          `gorm:"size:255;not null" json:"business_name"`
	ContactName         *string         `gorm:"size:255" json:"contact_name,omitempty"`
	CustomerType        string          `gorm:"size:50" json:"customer_type"`
	Phone               *string         `gorm:"size:50" json:"phone,omitempty"`
	Email               *string         `gorm:"size:255" json:"email,omitempty"`
	Address             *string         `gorm:"type:text" json:"address,omitempty"`
	City                string          `gorm:"size:100" json:"city"`
	State               string          `gorm:"size:100" json:"state"`
	CreditLimit         decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"credit_limit"`
	OutstandingAmount   decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"outstanding_amount"`
	AssignedWarehouseID *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_warehouse_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	AssignedWarehouse *Warehouse `gorm:"foreignKey:AssignedWarehouseID" json:"assigned_warehouse,omitempty"`
	Records           []Record   `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Warehouse represents a godown: a physical stock and dispatch location.
type Warehouse struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	City      string         `gorm:"size:100" json:"city"`
	State     string         `gorm:"size:100" json:"state"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Managers []User `gorm:"many2many:warehouse_managers" json:"managers,omitempty"`
}

// BeforeCreate generates a UUID before creating a new warehouse
func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}

// Location returns "City, State" for report rows, tolerating blanks.
func (w *Warehouse) Location() string {
	switch {
	case w.City != "" && w.State != "":
		return w.City + ", " + w.State
	case w.City != "":
		return w.City
	default:
		return w.State
	}
}

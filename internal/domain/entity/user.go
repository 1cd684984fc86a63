package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a principal in the system: a sales executive, a manager
// or an administrator. Executives create order and visit records; the
// reporting engine groups those records back to their creators.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName          string         `gorm:"size:255;not null" json:"first_name"`
	LastName           string         `gorm:"size:255;not null" json:"last_name"`
	EmployeeID         string         `gorm:"size:50;unique" json:"employee_id"`
	Email              string         `gorm:"size:255;unique;not null" json:"email"`
	Password           string         `gorm:"size:255" json:"-"`
	Phone              *string        `gorm:"size:50" json:"phone,omitempty"`
	Department         string         `gorm:"size:100" json:"department"`
	RoleID             uint           `gorm:"index" json:"role_id"`
	PrimaryWarehouseID *uuid.UUID     `gorm:"type:uuid;index" json:"primary_warehouse_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Role                 Role        `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	PrimaryWarehouse     *Warehouse  `gorm:"foreignKey:PrimaryWarehouseID" json:"primary_warehouse,omitempty"`
	AccessibleWarehouses []Warehouse `gorm:"many2many:user_accessible_warehouses" json:"accessible_warehouses,omitempty"`
	Records              []Record    `gorm:"foreignKey:CreatedByID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used on report rows
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// WarehouseIDs returns the union of the user's primary warehouse and the
// explicitly granted accessible warehouses. Empty means no assignment.
func (u *User) WarehouseIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(u.AccessibleWarehouses)+1)
	if u.PrimaryWarehouseID != nil && *u.PrimaryWarehouseID != uuid.Nil {
		seen[*u.PrimaryWarehouseID] = true
		ids = append(ids, *u.PrimaryWarehouseID)
	}
	for _, w := range u.AccessibleWarehouses {
		if !seen[w.ID] {
			seen[w.ID] = true
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	return u.Role.Name == roleName
}

// Role represents a named role such as "Sales Executive" or "Manager"
type Role struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// Well-known role names. Reports default to the executive and manager
// roles when no explicit role filter is given.
const (
	RoleSalesExecutive = "Sales Executive"
	RoleManager        = "Manager"
	RoleAdmin          = "Admin"
)

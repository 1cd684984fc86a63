package repository

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
)

// UserFilterParams holds filter parameters for listing users
type UserFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Department  *string
	RoleID      *uint
	WarehouseID *uuid.UUID
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *UserFilterParams) ([]entity.User, int64, error)

	// GetWithAccess loads a user with role, primary and accessible
	// warehouses preloaded; the auth layer uses it to build the
	// requesting principal for scope resolution.
	GetWithAccess(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListForReport returns the executive roster for a report: users
	// matching the role-id set (or the default role names when the set is
	// empty) and the optional department.
	ListForReport(ctx context.Context, roleIDs []uint, defaultRoleNames []string, department *string) ([]entity.User, error)

	// ListIDs returns the ids of all existing users. The orphan
	// reconciler uses it to tell dangling creator references apart from
	// creators simply outside the report roster.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// RoleRepository defines the interface for role data operations
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id uint) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]entity.Role, error)
}

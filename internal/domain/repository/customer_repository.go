package repository

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerFilterParams holds filter parameters for listing customers
type CustomerFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string
	CustomerType *string
	WarehouseID  *uuid.UUID
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)

	// ListForReport returns the customer roster for a report scope:
	// customers whose assigned warehouse is in warehouseIDs, or all
	// customers when warehouseIDs is nil (unrestricted scope).
	ListForReport(ctx context.Context, warehouseIDs []uuid.UUID) ([]entity.Customer, error)
}

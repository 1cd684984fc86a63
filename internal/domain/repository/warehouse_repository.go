package repository

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/google/uuid"
)

// WarehouseRepository defines the interface for warehouse data operations
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Warehouse, error)

	// ListByIDs returns the warehouses in ids, or every warehouse when
	// ids is nil (unrestricted scope).
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Warehouse, error)
}

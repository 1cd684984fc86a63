package service

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/google/uuid"
)

// WarehouseService handles warehouse-related operations
type WarehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(warehouseRepo repository.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// CreateWarehouseInput represents the create warehouse input
type CreateWarehouseInput struct {
	Name  string
	City  string
	State string
}

// CreateWarehouse creates a new warehouse
func (s *WarehouseService) CreateWarehouse(ctx context.Context, input *CreateWarehouseInput) (*entity.Warehouse, error) {
	warehouse := &entity.Warehouse{
		Name:  input.Name,
		City:  input.City,
		State: input.State,
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *WarehouseService) GetWarehouse(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}
	return warehouse, nil
}

// ListWarehouses lists all warehouses
func (s *WarehouseService) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	return s.warehouseRepo.List(ctx)
}

// UpdateWarehouseInput represents the update warehouse input
type UpdateWarehouseInput struct {
	ID    uuid.UUID
	Name  *string
	City  *string
	State *string
}

// UpdateWarehouse updates an existing warehouse
func (s *WarehouseService) UpdateWarehouse(ctx context.Context, input *UpdateWarehouseInput) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	if input.Name != nil {
		warehouse.Name = *input.Name
	}
	if input.City != nil {
		warehouse.City = *input.City
	}
	if input.State != nil {
		warehouse.State = *input.State
	}

	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// DeleteWarehouse deletes a warehouse
func (s *WarehouseService) DeleteWarehouse(ctx context.Context, id uuid.UUID) error {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return apperror.NewNotFoundError("Warehouse")
	}
	return s.warehouseRepo.Delete(ctx, id)
}

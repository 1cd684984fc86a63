package repository

import (
	"context"
	"errors"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	domainRepo "github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *gorm.DB) domainRepo.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	var warehouse entity.Warehouse
	err := r.db.WithContext(ctx).
		Preload("Managers").
		First(&warehouse, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &warehouse, err
}

func (r *warehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Save(warehouse).Error
}

func (r *warehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Warehouse{}, "id = ?", id).Error
}

func (r *warehouseRepository) List(ctx context.Context) ([]entity.Warehouse, error) {
	var warehouses []entity.Warehouse
	err := r.db.WithContext(ctx).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Warehouse, error) {
	var warehouses []entity.Warehouse

	query := r.db.WithContext(ctx).Model(&entity.Warehouse{})
	if ids != nil {
		query = query.Where("id IN ?", ids)
	}

	err := query.Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

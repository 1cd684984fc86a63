package repository

import (
	"context"
	"errors"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	domainRepo "github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		Preload("AssignedWarehouse").
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *domainRepo.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("business_name ILIKE ? OR contact_name ILIKE ?", search, search)
	}
	if params.CustomerType != nil && *params.CustomerType != "" {
		query = query.Where("customer_type = ?", *params.CustomerType)
	}
	if params.WarehouseID != nil {
		query = query.Where("assigned_warehouse_id = ?", *params.WarehouseID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("AssignedWarehouse").
		Order("business_name ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) ListForReport(ctx context.Context, warehouseIDs []uuid.UUID) ([]entity.Customer, error) {
	var customers []entity.Customer

	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if warehouseIDs != nil {
		query = query.Where("assigned_warehouse_id IN ?", warehouseIDs)
	}

	err := query.Preload("AssignedWarehouse").Find(&customers).Error
	return customers, err
}

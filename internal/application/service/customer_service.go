package service

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo  repository.CustomerRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, warehouseRepo repository.WarehouseRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, warehouseRepo: warehouseRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	BusinessName        string
	ContactName         *string
	CustomerType        string
	Phone               *string
	Email               *string
	Address             *string
	City                string
	State               string
	CreditLimit         decimal.Decimal
	AssignedWarehouseID *uuid.UUID
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.AssignedWarehouseID != nil {
		warehouse, err := s.warehouseRepo.GetByID(ctx, *input.AssignedWarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, apperror.NewBadRequestError("Assigned warehouse does not exist")
		}
	}

	customer := &entity.Customer{
		BusinessName:        input.BusinessName,
		ContactName:         input.ContactName,
		CustomerType:        input.CustomerType,
		Phone:               input.Phone,
		Email:               input.Email,
		Address:             input.Address,
		City:                input.City,
		State:               input.State,
		CreditLimit:         input.CreditLimit,
		AssignedWarehouseID: input.AssignedWarehouseID,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with offset pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID                  uuid.UUID
	BusinessName        *string
	ContactName         *string
	CustomerType        *string
	Phone               *string
	Email               *string
	Address             *string
	City                *string
	State               *string
	CreditLimit         *decimal.Decimal
	OutstandingAmount   *decimal.Decimal
	AssignedWarehouseID *uuid.UUID
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.BusinessName != nil {
		customer.BusinessName = *input.BusinessName
	}
	if input.ContactName != nil {
		customer.ContactName = input.ContactName
	}
	if input.CustomerType != nil {
		customer.CustomerType = *input.CustomerType
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.CreditLimit != nil {
		customer.CreditLimit = *input.CreditLimit
	}
	if input.OutstandingAmount != nil {
		customer.OutstandingAmount = *input.OutstandingAmount
	}
	if input.AssignedWarehouseID != nil {
		warehouse, err := s.warehouseRepo.GetByID(ctx, *input.AssignedWarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, apperror.NewBadRequestError("Assigned warehouse does not exist")
		}
		customer.AssignedWarehouseID = input.AssignedWarehouseID
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

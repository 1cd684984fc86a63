package service

import (
	"context"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/attaflow/attaflow-api/pkg/utils"
	"github.com/google/uuid"
)

// UserService handles user management operations
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	FirstName          string
	LastName           string
	EmployeeID         string
	Email              string
	Password           string
	Phone              *string
	Department         string
	RoleID             uint
	PrimaryWarehouseID *uuid.UUID
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	role, err := s.roleRepo.GetByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NewBadRequestError("Role does not exist")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		EmployeeID:         input.EmployeeID,
		Email:              input.Email,
		Password:           hashedPassword,
		Phone:              input.Phone,
		Department:         input.Department,
		RoleID:             input.RoleID,
		PrimaryWarehouseID: input.PrimaryWarehouseID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user with warehouse access loaded
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithAccess(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists users with offset pagination
func (s *UserService) ListUsers(ctx context.Context, params *repository.UserFilterParams) (*pagination.PaginatedResult[entity.User], error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// ListRoles lists all roles
func (s *UserService) ListRoles(ctx context.Context) ([]entity.Role, error) {
	return s.roleRepo.List(ctx)
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	ID                 uuid.UUID
	FirstName          *string
	LastName           *string
	Phone              *string
	Department         *string
	RoleID             *uint
	PrimaryWarehouseID *uuid.UUID
}

// UpdateUser updates an existing user
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Department != nil {
		user.Department = *input.Department
	}
	if input.RoleID != nil {
		role, err := s.roleRepo.GetByID(ctx, *input.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, apperror.NewBadRequestError("Role does not exist")
		}
		user.RoleID = *input.RoleID
	}
	if input.PrimaryWarehouseID != nil {
		user.PrimaryWarehouseID = input.PrimaryWarehouseID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deletes a user. Records created by the user keep their creator
// reference; the reporting engine reconciles them when the reference no
// longer resolves.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}

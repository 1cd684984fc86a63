package repository

import (
	"context"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
)

// RecordFilterParams holds filter parameters for listing records
type RecordFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Kind        *enum.RecordKind
	Status      *enum.OrderStatus
	CreatedByID *uuid.UUID
	CustomerID  *uuid.UUID
	WarehouseID *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	SortBy      string
	SortOrder   string
}

// RecordCursorFilterParams holds filter parameters for cursor-based listing
type RecordCursorFilterParams struct {
	Cursor      *pagination.CursorParams
	Search      string
	Kind        *enum.RecordKind
	Status      *enum.OrderStatus
	CreatedByID *uuid.UUID
	CustomerID  *uuid.UUID
}

// RecordRepository defines the interface for record data access
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *RecordFilterParams) ([]entity.Record, int64, error)
	ListWithCursor(ctx context.Context, params *RecordCursorFilterParams) ([]entity.Record, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error

	// ListForReport returns every record matching the normalized report
	// filter, with line items and reference data preloaded. The full
	// matching set is returned: page slicing happens after summary
	// computation, never here.
	ListForReport(ctx context.Context, f *report.Filter) ([]entity.Record, error)
}

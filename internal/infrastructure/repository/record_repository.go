package repository

import (
	"context"
	"errors"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	domainRepo "github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) domainRepo.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var record entity.Record
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Warehouse").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *recordRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var record entity.Record
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Warehouse").
		Preload("CreatedBy").
		Preload("Items").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Record{}, "id = ?", id).Error
}

func (r *recordRepository) List(ctx context.Context, params *domainRepo.RecordFilterParams) ([]entity.Record, int64, error) {
	var records []entity.Record
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Record{})

	if params.Search != "" {
		query = query.Where("record_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CreatedByID != nil {
		query = query.Where("created_by_id = ?", *params.CreatedByID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *params.WarehouseID)
	}
	if params.StartDate != nil {
		query = query.Where("record_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("record_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "record_date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Warehouse").
		Order(sortBy + " " + sortOrder).
		Find(&records).Error

	return records, total, err
}

// ListWithCursor returns records using cursor-based pagination
func (r *recordRepository) ListWithCursor(ctx context.Context, params *domainRepo.RecordCursorFilterParams) ([]entity.Record, error) {
	var records []entity.Record

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Record{})

	if params.Search != "" {
		query = query.Where("record_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CreatedByID != nil {
		query = query.Where("created_by_id = ?", *params.CreatedByID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Customer").
		Order("created_at ASC, id ASC").
		Find(&records).Error

	return records, err
}

func (r *recordRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Record{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListForReport fetches the complete record set matching a normalized
// report filter. No limit/offset is ever applied here: the summary stage
// needs the full set.
func (r *recordRepository) ListForReport(ctx context.Context, f *report.Filter) ([]entity.Record, error) {
	var records []entity.Record

	query := r.db.WithContext(ctx).Model(&entity.Record{}).
		Where("kind = ?", f.Kind)

	if f.Start != nil {
		query = query.Where("record_date >= ?", *f.Start)
	}
	if f.End != nil {
		query = query.Where("record_date <= ?", *f.End)
	}
	if f.PrincipalID != nil {
		query = query.Where("created_by_id = ?", *f.PrincipalID)
	}
	if f.Department != nil && *f.Department != "" {
		query = query.Joins("JOIN users ON users.id = records.created_by_id").
			Where("users.department = ?", *f.Department)
	}

	// Scoping basis: the customer report restricts by its customer roster
	// (assigned warehouse); every other report scopes on the warehouse
	// recorded on the record itself.
	if f.CustomerIDs != nil {
		query = query.Where("customer_id IN ?", f.CustomerIDs)
	} else if !f.Scope.Unrestricted {
		query = query.Where("warehouse_id IN ?", f.Scope.WarehouseIDs)
	}

	// Explicit status filters take precedence over the default
	// cancelled/rejected exclusion.
	switch {
	case f.ExplicitStatus != nil:
		query = query.Where("status = ?", *f.ExplicitStatus)
	case len(f.ExcludeStatuses) > 0:
		query = query.Where("status NOT IN ?", f.ExcludeStatuses)
	}
	if f.ExplicitDeliveryStatus != nil {
		query = query.Where("delivery_status = ?", *f.ExplicitDeliveryStatus)
	}

	err := query.
		Preload("Items").
		Preload("Customer").
		Preload("Warehouse").
		Preload("CreatedBy").
		Order("record_date ASC, id ASC").
		Find(&records).Error

	return records, err
}

package service

import (
	"context"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/attaflow/attaflow-api/pkg/pagination"
	"github.com/attaflow/attaflow-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordService handles order and visit record operations
type RecordService struct {
	recordRepo   repository.RecordRepository
	customerRepo repository.CustomerRepository
}

// NewRecordService creates a new record service
func NewRecordService(recordRepo repository.RecordRepository, customerRepo repository.CustomerRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo, customerRepo: customerRepo}
}

// LineItemInput represents one product line of an order
type LineItemInput struct {
	ProductName string
	Grade       *string
	Quantity    float64
	Unit        enum.QuantityUnit
	RatePerUnit decimal.Decimal
	Packaging   *string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CreatedByID uuid.UUID
	CustomerID  uuid.UUID
	WarehouseID *uuid.UUID
	RecordDate  time.Time
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	PaidAmount  decimal.Decimal
	Items       []LineItemInput
}

// CreateOrder creates a new order record. Line item totals are always
// quantity x rate, and the order total is subtotal - discount + tax.
func (s *RecordService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Record, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("An order needs at least one line item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewBadRequestError("Customer does not exist")
	}

	subTotal := decimal.Zero
	items := make([]entity.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Line item quantity cannot be negative")
		}
		lineTotal := it.RatePerUnit.Mul(decimal.NewFromFloat(it.Quantity))
		subTotal = subTotal.Add(lineTotal)
		items = append(items, entity.LineItem{
			ProductName: it.ProductName,
			Grade:       it.Grade,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			RatePerUnit: it.RatePerUnit,
			TotalAmount: lineTotal,
			Packaging:   it.Packaging,
		})
	}

	createdBy := input.CreatedByID
	customerID := input.CustomerID
	record := &entity.Record{
		Kind:        enum.RecordKindOrder,
		RecordNo:    utils.GenerateRecordNo("ORD"),
		CreatedByID: &createdBy,
		CustomerID:  &customerID,
		WarehouseID: input.WarehouseID,
		RecordDate:  input.RecordDate,
		Status:      enum.OrderStatusPending,
		SubTotal:    subTotal,
		Discount:    input.Discount,
		Tax:         input.Tax,
		TotalAmount: subTotal.Sub(input.Discount).Add(input.Tax),
		PaidAmount:  input.PaidAmount,
		Items:       items,
	}
	record.PaymentStatus = paymentStatusFor(record.TotalAmount, record.PaidAmount)

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// CreateVisitInput represents the create visit input
type CreateVisitInput struct {
	CreatedByID   uuid.UUID
	CustomerID    uuid.UUID
	WarehouseID   *uuid.UUID
	RecordDate    time.Time
	VisitLocation *string
	VisitImage    *string
}

// CreateVisit creates a new visit record. Visits carry no money: every
// monetary field stays zero.
func (s *RecordService) CreateVisit(ctx context.Context, input *CreateVisitInput) (*entity.Record, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewBadRequestError("Customer does not exist")
	}

	createdBy := input.CreatedByID
	customerID := input.CustomerID
	record := &entity.Record{
		Kind:          enum.RecordKindVisit,
		RecordNo:      utils.GenerateRecordNo("VST"),
		CreatedByID:   &createdBy,
		CustomerID:    &customerID,
		WarehouseID:   input.WarehouseID,
		RecordDate:    input.RecordDate,
		VisitLocation: input.VisitLocation,
		VisitImage:    input.VisitImage,
		SubTotal:      decimal.Zero,
		Discount:      decimal.Zero,
		Tax:           decimal.Zero,
		TotalAmount:   decimal.Zero,
		PaidAmount:    decimal.Zero,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecord retrieves a record with its line items
func (s *RecordService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	record, err := s.recordRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Record")
	}
	return record, nil
}

// ListRecords lists records with offset pagination
func (s *RecordService) ListRecords(ctx context.Context, params *repository.RecordFilterParams) (*pagination.PaginatedResult[entity.Record], error) {
	records, total, err := s.recordRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// ListRecordsWithCursor lists records using cursor-based pagination
func (s *RecordService) ListRecordsWithCursor(ctx context.Context, params *repository.RecordCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Record], error) {
	records, err := s.recordRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""
	cursorPag, items := pagination.NewCursorPagination(records, params.Cursor.Limit,
		func(r entity.Record) string { return r.ID.String() },
		func(r entity.Record) time.Time { return r.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateStatusInput represents the update status input
type UpdateStatusInput struct {
	ID             uuid.UUID
	Status         *enum.OrderStatus
	DeliveryStatus *enum.DeliveryStatus
	PaidAmount     *decimal.Decimal
}

// UpdateStatus advances an order's lifecycle, delivery or payment state
func (s *RecordService) UpdateStatus(ctx context.Context, input *UpdateStatusInput) (*entity.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Record")
	}
	if !record.IsOrder() {
		return nil, apperror.NewBadRequestError("Only orders carry lifecycle status")
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.NewBadRequestError("Unknown order status")
		}
		record.Status = *input.Status
	}
	if input.DeliveryStatus != nil {
		if !input.DeliveryStatus.Valid() {
			return nil, apperror.NewBadRequestError("Unknown delivery status")
		}
		record.DeliveryStatus = *input.DeliveryStatus
	}
	if input.PaidAmount != nil {
		record.PaidAmount = *input.PaidAmount
		record.PaymentStatus = paymentStatusFor(record.TotalAmount, record.PaidAmount)
	}

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteRecord deletes a record
func (s *RecordService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NewNotFoundError("Record")
	}
	return s.recordRepo.Delete(ctx, id)
}

func paymentStatusFor(total, paid decimal.Decimal) enum.PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return enum.PaymentStatusUnpaid
	case paid.GreaterThanOrEqual(total):
		return enum.PaymentStatusPaid
	default:
		return enum.PaymentStatusPartial
	}
}

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCreateOrder_ComputesTotals(t *testing.T) {
	cust := entity.Customer{ID: uuid.New(), BusinessName: "Patel Stores"}
	svc := NewRecordService(&fakeRecordRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}})

	grade := "Premium"
	rec, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CreatedByID: uuid.New(),
		CustomerID:  cust.ID,
		RecordDate:  testNow,
		Discount:    decimal.NewFromInt(50),
		Tax:         decimal.NewFromInt(25),
		PaidAmount:  decimal.NewFromInt(200),
		Items: []LineItemInput{
			{ProductName: "Atta", Grade: &grade, Quantity: 4, Unit: enum.UnitBags, RatePerUnit: decimal.NewFromInt(100)},
			{ProductName: "Atta", Quantity: 1, Unit: enum.UnitQuintal, RatePerUnit: decimal.NewFromInt(600)},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if !rec.SubTotal.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected subtotal 1000, got %s", rec.SubTotal)
	}
	// total = subtotal - discount + tax
	if !rec.TotalAmount.Equal(decimal.NewFromInt(975)) {
		t.Fatalf("expected total 975, got %s", rec.TotalAmount)
	}
	if rec.PaymentStatus != enum.PaymentStatusPartial {
		t.Fatalf("expected partial payment, got %q", rec.PaymentStatus)
	}
	if rec.Status != enum.OrderStatusPending {
		t.Fatalf("new orders start pending, got %q", rec.Status)
	}
	if !strings.HasPrefix(rec.RecordNo, "ORD-") {
		t.Fatalf("unexpected record number %q", rec.RecordNo)
	}
	if len(rec.Items) != 2 || !rec.Items[0].TotalAmount.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("line totals wrong: %+v", rec.Items)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	cust := entity.Customer{ID: uuid.New()}
	svc := NewRecordService(&fakeRecordRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}})

	if _, err := svc.CreateOrder(context.Background(), &CreateOrderInput{CustomerID: cust.ID}); err == nil {
		t.Fatal("expected error for order without items")
	}

	if _, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: uuid.New(),
		Items:      []LineItemInput{{ProductName: "Atta", Quantity: 1, RatePerUnit: decimal.NewFromInt(10)}},
	}); err == nil {
		t.Fatal("expected error for unknown customer")
	}

	if _, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: cust.ID,
		Items:      []LineItemInput{{ProductName: "Atta", Quantity: -1, RatePerUnit: decimal.NewFromInt(10)}},
	}); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestCreateVisit_CarriesNoMoney(t *testing.T) {
	cust := entity.Customer{ID: uuid.New()}
	svc := NewRecordService(&fakeRecordRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}})

	loc := "Market Road"
	rec, err := svc.CreateVisit(context.Background(), &CreateVisitInput{
		CreatedByID:   uuid.New(),
		CustomerID:    cust.ID,
		RecordDate:    testNow,
		VisitLocation: &loc,
	})
	if err != nil {
		t.Fatalf("CreateVisit error: %v", err)
	}
	if rec.Kind != enum.RecordKindVisit {
		t.Fatalf("expected visit kind, got %q", rec.Kind)
	}
	if !strings.HasPrefix(rec.RecordNo, "VST-") {
		t.Fatalf("unexpected record number %q", rec.RecordNo)
	}
	if !rec.TotalAmount.Equal(decimal.Zero) || !rec.PaidAmount.Equal(decimal.Zero) {
		t.Fatalf("visits must carry zero money: %+v", rec)
	}
}

func TestPaymentStatusFor(t *testing.T) {
	cases := []struct {
		total, paid int64
		expected    enum.PaymentStatus
	}{
		{100, 0, enum.PaymentStatusUnpaid},
		{100, 40, enum.PaymentStatusPartial},
		{100, 100, enum.PaymentStatusPaid},
		{100, 150, enum.PaymentStatusPaid},
	}
	for _, tc := range cases {
		got := paymentStatusFor(decimal.NewFromInt(tc.total), decimal.NewFromInt(tc.paid))
		if got != tc.expected {
			t.Fatalf("paymentStatusFor(%d, %d) expected %q, got %q", tc.total, tc.paid, tc.expected, got)
		}
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory repositories implementing the report-facing contract: full
// matching set, record date ascending, warehouse scope skipped when the
// customer roster restricts the scan.

type fakeRecordRepo struct {
	records []entity.Record
}

func (r *fakeRecordRepo) ListForReport(_ context.Context, f *report.Filter) ([]entity.Record, error) {
	var out []entity.Record
	for _, rec := range r.records {
		if rec.Kind != f.Kind {
			continue
		}
		if f.Start != nil && rec.RecordDate.Before(*f.Start) {
			continue
		}
		if f.End != nil && rec.RecordDate.After(*f.End) {
			continue
		}
		if f.PrincipalID != nil {
			if rec.CreatedByID == nil || *rec.CreatedByID != *f.PrincipalID {
				continue
			}
		}
		if f.CustomerIDs != nil {
			if rec.CustomerID == nil || !containsID(f.CustomerIDs, *rec.CustomerID) {
				continue
			}
		} else if !f.Scope.Unrestricted && !f.Scope.Contains(rec.WarehouseID) {
			continue
		}
		if f.ExplicitStatus != nil && rec.Status != *f.ExplicitStatus {
			continue
		}
		if f.ExplicitDeliveryStatus != nil && rec.DeliveryStatus != *f.ExplicitDeliveryStatus {
			continue
		}
		if statusExcluded(f.ExcludeStatuses, rec.Status) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeRecordRepo) Create(context.Context, *entity.Record) error { return nil }
func (r *fakeRecordRepo) GetByID(context.Context, uuid.UUID) (*entity.Record, error) {
	return nil, nil
}
func (r *fakeRecordRepo) GetWithItems(context.Context, uuid.UUID) (*entity.Record, error) {
	return nil, nil
}
func (r *fakeRecordRepo) Update(context.Context, *entity.Record) error { return nil }
func (r *fakeRecordRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (r *fakeRecordRepo) List(context.Context, *repository.RecordFilterParams) ([]entity.Record, int64, error) {
	return nil, 0, nil
}
func (r *fakeRecordRepo) ListWithCursor(context.Context, *repository.RecordCursorFilterParams) ([]entity.Record, error) {
	return nil, nil
}
func (r *fakeRecordRepo) UpdateStatus(context.Context, uuid.UUID, enum.OrderStatus) error {
	return nil
}

type fakeUserRepo struct {
	users  []entity.User
	roster []entity.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListForReport(context.Context, []uint, []string, *string) ([]entity.User, error) {
	return r.roster, nil
}

func (r *fakeUserRepo) ListIDs(context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.users))
	for i := range r.users {
		ids = append(ids, r.users[i].ID)
	}
	return ids, nil
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error    { return nil }
func (r *fakeUserRepo) List(context.Context, *repository.UserFilterParams) ([]entity.User, int64, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) GetWithAccess(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (r *fakeCustomerRepo) ListForReport(_ context.Context, warehouseIDs []uuid.UUID) ([]entity.Customer, error) {
	if warehouseIDs == nil {
		return r.customers, nil
	}
	var out []entity.Customer
	for _, c := range r.customers {
		if c.AssignedWarehouseID != nil && containsID(warehouseIDs, *c.AssignedWarehouseID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			return &r.customers[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Update(context.Context, *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (r *fakeCustomerRepo) List(context.Context, *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeWarehouseRepo struct {
	warehouses []entity.Warehouse
}

func (r *fakeWarehouseRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Warehouse, error) {
	if ids == nil {
		return r.warehouses, nil
	}
	var out []entity.Warehouse
	for _, w := range r.warehouses {
		if containsID(ids, w.ID) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) GetByID(context.Context, uuid.UUID) (*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Update(context.Context, *entity.Warehouse) error { return nil }
func (r *fakeWarehouseRepo) Delete(context.Context, uuid.UUID) error         { return nil }
func (r *fakeWarehouseRepo) List(context.Context) ([]entity.Warehouse, error) {
	return r.warehouses, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func statusExcluded(excluded []enum.OrderStatus, s enum.OrderStatus) bool {
	for _, e := range excluded {
		if e == s {
			return true
		}
	}
	return false
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(records *fakeRecordRepo, users *fakeUserRepo, customers *fakeCustomerRepo, warehouses *fakeWarehouseRepo) *ReportService {
	svc := NewReportService(records, users, customers, warehouses)
	svc.now = func() time.Time { return testNow }
	return svc
}

func executive(name string) entity.User {
	return entity.User{
		ID:        uuid.New(),
		FirstName: name,
		Role:      entity.Role{Name: entity.RoleSalesExecutive},
	}
}

func order(creator *uuid.UUID, customer uuid.UUID, warehouse *uuid.UUID, amount, paid int64, date time.Time) entity.Record {
	return entity.Record{
		ID:          uuid.New(),
		Kind:        enum.RecordKindOrder,
		CreatedByID: creator,
		CustomerID:  &customer,
		WarehouseID: warehouse,
		RecordDate:  date,
		Status:      enum.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(amount),
		PaidAmount:  decimal.NewFromInt(paid),
	}
}

func visit(creator *uuid.UUID, customer uuid.UUID, date time.Time) entity.Record {
	return entity.Record{
		ID:          uuid.New(),
		Kind:        enum.RecordKindVisit,
		CreatedByID: creator,
		CustomerID:  &customer,
		RecordDate:  date,
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
	}
}

func unrestrictedRequester() *entity.User {
	return &entity.User{ID: uuid.New(), Role: entity.Role{Name: entity.RoleAdmin}}
}

func TestExecutiveReport_OrphanReconciliation(t *testing.T) {
	exec := executive("Asha")
	outsider := executive("Outsider") // exists, but not in the roster
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -10)

	danglingID := uuid.New() // creator reference that resolves to no user
	records := &fakeRecordRepo{records: []entity.Record{
		order(&exec.ID, custID, nil, 500, 500, date),
		order(nil, custID, nil, 300, 0, date),
		order(&danglingID, custID, nil, 100, 0, date),
		order(&outsider.ID, custID, nil, 999, 0, date),
	}}
	users := &fakeUserRepo{users: []entity.User{exec, outsider}, roster: []entity.User{exec}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})

	out, err := svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}

	byKind := make(map[report.GroupKind]report.ExecutiveRow)
	for _, row := range out.Reports {
		byKind[row.GroupKind] = row
	}
	if len(out.Reports) != 3 {
		t.Fatalf("expected roster row + 2 synthetic rows, got %d", len(out.Reports))
	}

	deleted := byKind[report.GroupDeletedCreator]
	if deleted.Name != "Deleted User" || !deleted.TotalRevenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("deleted-creator group wrong: %+v", deleted)
	}
	dangling := byKind[report.GroupDanglingCreator]
	if dangling.Name != "Deleted User (Orphaned)" || !dangling.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("dangling-creator group wrong: %+v", dangling)
	}

	// The outsider's record attributes to no group: it belongs to an
	// existing user outside the roster, not to an orphan bucket.
	if !out.Summary.TotalRevenue.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected summary revenue 900, got %s", out.Summary.TotalRevenue)
	}

	// Revenue identity: summary equals the sum over all returned rows.
	sum := decimal.Zero
	for _, row := range out.Reports {
		sum = sum.Add(row.TotalRevenue)
	}
	if !sum.Equal(out.Summary.TotalRevenue) {
		t.Fatalf("row revenue sum %s != summary %s", sum, out.Summary.TotalRevenue)
	}
}

func TestExecutiveReport_DeniedScopeYieldsZeroedReport(t *testing.T) {
	assigned := uuid.New()
	requester := &entity.User{ID: uuid.New(), PrimaryWarehouseID: &assigned}
	other := uuid.New()

	svc := newTestService(&fakeRecordRepo{}, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{})
	out, err := svc.ExecutiveReport(context.Background(), requester, &report.Request{WarehouseID: &other})
	if err != nil {
		t.Fatalf("denied scope must not error: %v", err)
	}
	if len(out.Reports) != 0 || out.Summary.TotalExecutives != 0 {
		t.Fatalf("expected zeroed report, got %+v", out)
	}
	if !out.Summary.TotalRevenue.Equal(decimal.Zero) {
		t.Fatalf("expected zero revenue, got %s", out.Summary.TotalRevenue)
	}
	if out.Pagination == nil || out.Pagination.Total != 0 || out.Pagination.CurrentPage != 1 {
		t.Fatalf("expected clamped empty pagination, got %+v", out.Pagination)
	}
}

func TestExecutiveReport_VisitsCarryNoMoney(t *testing.T) {
	exec := executive("Ravi")
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -3)

	records := &fakeRecordRepo{records: []entity.Record{
		visit(&exec.ID, custID, date),
		visit(&exec.ID, custID, date.AddDate(0, 0, 1)),
	}}
	users := &fakeUserRepo{users: []entity.User{exec}, roster: []entity.User{exec}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})

	out, err := svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{Kind: enum.RecordKindVisit})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}
	row := out.Reports[0]
	if row.TotalRecords != 2 || row.TotalVisits != 2 || row.TotalOrders != 0 {
		t.Fatalf("unexpected counts: %+v", row.Totals)
	}
	if !row.TotalRevenue.Equal(decimal.Zero) || !row.AvgOrderValue.Equal(decimal.Zero) {
		t.Fatalf("visits must carry zero money, got %+v", row.Totals)
	}
	if row.LastActivityDays == nil || *row.LastActivityDays != 2 {
		t.Fatalf("expected last activity 2 days ago, got %v", row.LastActivityDays)
	}
}

func TestExecutiveReport_NonexistentPrincipal(t *testing.T) {
	svc := newTestService(&fakeRecordRepo{}, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{})
	missing := uuid.New()
	out, err := svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{PrincipalID: &missing})
	if err != nil {
		t.Fatalf("nonexistent principal must not error: %v", err)
	}
	if len(out.Reports) != 0 {
		t.Fatalf("expected empty report, got %d rows", len(out.Reports))
	}
}

func TestExecutiveReport_ActivityFilter(t *testing.T) {
	active := executive("Active")
	idle := executive("Idle")
	custID := uuid.New()

	records := &fakeRecordRepo{records: []entity.Record{
		order(&active.ID, custID, nil, 100, 100, testNow.AddDate(0, 0, -1)),
		order(nil, custID, nil, 50, 0, testNow.AddDate(0, 0, -1)),
	}}
	users := &fakeUserRepo{users: []entity.User{active, idle}, roster: []entity.User{active, idle}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})

	out, err := svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{Activity: report.ActivityInactive})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}
	// Only the idle roster member; synthetic groups never appear under the
	// inactive filter.
	if len(out.Reports) != 1 || out.Reports[0].Name != "Idle" {
		t.Fatalf("expected only the idle executive, got %+v", out.Reports)
	}

	out, err = svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{Activity: report.ActivityActive})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}
	for _, row := range out.Reports {
		if row.TotalRecords == 0 {
			t.Fatalf("active filter leaked a zero-record row: %+v", row)
		}
	}
}

func TestWarehouseReport_GroupsByRecordWarehouse(t *testing.T) {
	whA := entity.Warehouse{ID: uuid.New(), Name: "North"}
	whB := entity.Warehouse{ID: uuid.New(), Name: "South"}
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -5)

	records := &fakeRecordRepo{records: []entity.Record{
		order(nil, custID, &whA.ID, 200, 200, date),
		order(nil, custID, &whA.ID, 300, 100, date),
		order(nil, custID, &whB.ID, 50, 0, date),
		order(nil, custID, nil, 1000, 0, date), // no warehouse, grouped nowhere
	}}
	svc := newTestService(records, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{warehouses: []entity.Warehouse{whA, whB}})

	out, err := svc.WarehouseReport(context.Background(), unrestrictedRequester(), &report.Request{})
	if err != nil {
		t.Fatalf("WarehouseReport error: %v", err)
	}
	if len(out.Reports) != 2 {
		t.Fatalf("expected 2 warehouse rows, got %d", len(out.Reports))
	}
	byName := make(map[string]report.WarehouseRow)
	for _, row := range out.Reports {
		byName[row.Name] = row
	}
	north := byName["North"]
	if north.TotalOrders != 2 || !north.TotalRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("North row wrong: %+v", north)
	}
	if !north.TotalOutstanding.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected outstanding 200, got %s", north.TotalOutstanding)
	}
}

func TestWarehouseReport_ScopeRestrictsRows(t *testing.T) {
	whA := entity.Warehouse{ID: uuid.New(), Name: "North"}
	whB := entity.Warehouse{ID: uuid.New(), Name: "South"}
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -5)

	records := &fakeRecordRepo{records: []entity.Record{
		order(nil, custID, &whA.ID, 200, 200, date),
		order(nil, custID, &whB.ID, 50, 0, date),
	}}
	svc := newTestService(records, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{warehouses: []entity.Warehouse{whA, whB}})

	requester := &entity.User{ID: uuid.New(), PrimaryWarehouseID: &whA.ID}
	out, err := svc.WarehouseReport(context.Background(), requester, &report.Request{})
	if err != nil {
		t.Fatalf("WarehouseReport error: %v", err)
	}
	if len(out.Reports) != 1 || out.Reports[0].Name != "North" {
		t.Fatalf("expected only the assigned warehouse, got %+v", out.Reports)
	}
	if !out.Summary.TotalRevenue.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected scoped revenue 200, got %s", out.Summary.TotalRevenue)
	}
}

func TestCustomerReport_VoidedOrdersCountButCarryNothing(t *testing.T) {
	cust := entity.Customer{ID: uuid.New(), BusinessName: "Sharma Traders"}
	date := testNow.AddDate(0, 0, -7)

	grade := "Premium"
	pkg := "25kg Bags"
	good := order(nil, cust.ID, nil, 400, 400, date)
	good.Items = []entity.LineItem{{
		ProductName: "Atta",
		Grade:       &grade,
		Quantity:    4,
		Unit:        enum.UnitBags,
		RatePerUnit: decimal.NewFromInt(100),
		TotalAmount: decimal.NewFromInt(400),
		Packaging:   &pkg,
	}}
	cancelled := order(nil, cust.ID, nil, 900, 0, date)
	cancelled.Status = enum.OrderStatusCancelled
	cancelled.Items = []entity.LineItem{{
		ProductName: "Atta",
		Quantity:    10,
		Unit:        enum.UnitQuintal,
		RatePerUnit: decimal.NewFromInt(90),
		TotalAmount: decimal.NewFromInt(900),
	}}
	returned := order(nil, cust.ID, nil, 100, 0, date)
	returned.DeliveryStatus = enum.DeliveryStatusReturned

	records := &fakeRecordRepo{records: []entity.Record{good, cancelled, returned}}
	svc := newTestService(records, &fakeUserRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}}, &fakeWarehouseRepo{})

	out, err := svc.CustomerReport(context.Background(), unrestrictedRequester(), &report.Request{})
	if err != nil {
		t.Fatalf("CustomerReport error: %v", err)
	}
	if len(out.Reports) != 1 {
		t.Fatalf("expected 1 customer row, got %d", len(out.Reports))
	}
	row := out.Reports[0]
	if row.TotalOrders != 3 {
		t.Fatalf("voided orders must still count, got %d orders", row.TotalOrders)
	}
	if !row.TotalRevenue.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("voided orders must carry no money, got revenue %s", row.TotalRevenue)
	}
	if row.TotalKg != 100 {
		t.Fatalf("voided orders must carry no kilograms, got %v kg", row.TotalKg)
	}
	if row.DaysSinceLastOrder == nil || *row.DaysSinceLastOrder != 7 {
		t.Fatalf("expected last order 7 days ago, got %v", row.DaysSinceLastOrder)
	}
}

func TestCustomerReport_ScopesOnAssignedWarehouse(t *testing.T) {
	whIn := uuid.New()
	whOut := uuid.New()
	inScope := entity.Customer{ID: uuid.New(), BusinessName: "In", AssignedWarehouseID: &whIn}
	outScope := entity.Customer{ID: uuid.New(), BusinessName: "Out", AssignedWarehouseID: &whOut}
	date := testNow.AddDate(0, 0, -2)

	// The in-scope customer's order was recorded at the out-of-scope
	// warehouse. The customer report scopes on the assignment, so the order
	// still counts.
	records := &fakeRecordRepo{records: []entity.Record{
		order(nil, inScope.ID, &whOut, 250, 250, date),
		order(nil, outScope.ID, &whIn, 999, 0, date),
	}}
	customers := &fakeCustomerRepo{customers: []entity.Customer{inScope, outScope}}
	svc := newTestService(records, &fakeUserRepo{}, customers, &fakeWarehouseRepo{})

	requester := &entity.User{ID: uuid.New(), PrimaryWarehouseID: &whIn}
	out, err := svc.CustomerReport(context.Background(), requester, &report.Request{})
	if err != nil {
		t.Fatalf("CustomerReport error: %v", err)
	}
	if len(out.Reports) != 1 || out.Reports[0].BusinessName != "In" {
		t.Fatalf("expected only the assigned customer, got %+v", out.Reports)
	}
	if !out.Reports[0].TotalRevenue.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected revenue 250 despite record warehouse, got %s", out.Reports[0].TotalRevenue)
	}
}

func TestExecutiveDetail(t *testing.T) {
	exec := executive("Meena")
	other := executive("Other")
	custID := uuid.New()

	records := &fakeRecordRepo{records: []entity.Record{
		order(&exec.ID, custID, nil, 100, 100, testNow.AddDate(0, -1, 0)),
		order(&exec.ID, custID, nil, 200, 50, testNow.AddDate(0, 0, -2)),
		order(&other.ID, custID, nil, 999, 0, testNow.AddDate(0, 0, -2)),
	}}
	users := &fakeUserRepo{users: []entity.User{exec, other}, roster: []entity.User{exec, other}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})

	detail, err := svc.ExecutiveDetail(context.Background(), unrestrictedRequester(), exec.ID, &report.Request{})
	if err != nil {
		t.Fatalf("ExecutiveDetail error: %v", err)
	}
	if detail.Executive.Name != "Meena" {
		t.Fatalf("unexpected executive %q", detail.Executive.Name)
	}
	if detail.Metrics.TotalOrders != 2 || !detail.Metrics.TotalRevenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("metrics must cover only this executive: %+v", detail.Metrics)
	}
	if len(detail.MonthlyTrend) != 12 {
		t.Fatalf("expected 12 trend points, got %d", len(detail.MonthlyTrend))
	}
	if detail.MonthlyTrend[11].Month != testNow.Format("2006-01") {
		t.Fatalf("trend must end at the current month, got %s", detail.MonthlyTrend[11].Month)
	}
	if len(detail.RecentRecords) != 2 {
		t.Fatalf("expected 2 recent records, got %d", len(detail.RecentRecords))
	}
	// Newest first.
	if !detail.RecentRecords[0].RecordDate.After(detail.RecentRecords[1].RecordDate) {
		t.Fatal("recent records not newest-first")
	}
}

func TestExecutiveDetail_NotFound(t *testing.T) {
	svc := newTestService(&fakeRecordRepo{}, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{})
	_, err := svc.ExecutiveDetail(context.Background(), unrestrictedRequester(), uuid.New(), &report.Request{})
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Fatalf("expected 404 app error, got %v", err)
	}
}

func TestCustomerDetail_OutOfScopeYieldsZeroedDetail(t *testing.T) {
	whOut := uuid.New()
	cust := entity.Customer{ID: uuid.New(), BusinessName: "Far Away", AssignedWarehouseID: &whOut}
	records := &fakeRecordRepo{records: []entity.Record{
		order(nil, cust.ID, &whOut, 500, 0, testNow.AddDate(0, 0, -1)),
	}}
	svc := newTestService(records, &fakeUserRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}}, &fakeWarehouseRepo{})

	whMine := uuid.New()
	requester := &entity.User{ID: uuid.New(), PrimaryWarehouseID: &whMine}
	detail, err := svc.CustomerDetail(context.Background(), requester, cust.ID, &report.Request{})
	if err != nil {
		t.Fatalf("out-of-scope customer must not error: %v", err)
	}
	if detail.Customer.BusinessName != "Far Away" {
		t.Fatalf("identity block missing: %+v", detail.Customer)
	}
	if detail.Metrics.TotalOrders != 0 || !detail.Metrics.TotalRevenue.Equal(decimal.Zero) {
		t.Fatalf("expected zeroed metrics, got %+v", detail.Metrics)
	}
}

func TestCustomerDetail_GradeBreakdown(t *testing.T) {
	cust := entity.Customer{ID: uuid.New(), BusinessName: "Gupta Mills"}
	date := testNow.AddDate(0, 0, -4)

	premium := "Premium"
	rec := order(nil, cust.ID, nil, 1500, 1500, date)
	rec.Items = []entity.LineItem{
		{ProductName: "Atta", Grade: &premium, Quantity: 10, Unit: enum.UnitQuintal,
			RatePerUnit: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(1000)},
		{ProductName: "Atta", Quantity: 5, Unit: enum.UnitQuintal,
			RatePerUnit: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(500)},
	}
	records := &fakeRecordRepo{records: []entity.Record{rec}}
	svc := newTestService(records, &fakeUserRepo{}, &fakeCustomerRepo{customers: []entity.Customer{cust}}, &fakeWarehouseRepo{})

	detail, err := svc.CustomerDetail(context.Background(), unrestrictedRequester(), cust.ID, &report.Request{})
	if err != nil {
		t.Fatalf("CustomerDetail error: %v", err)
	}
	if detail.TotalKg != 1500 {
		t.Fatalf("expected 1500 kg, got %v", detail.TotalKg)
	}
	if len(detail.GradeBreakdown) != 2 {
		t.Fatalf("expected 2 grades, got %+v", detail.GradeBreakdown)
	}
	// Sorted by kilograms descending; missing grade labelled Ungraded.
	if detail.GradeBreakdown[0].Grade != "Premium" || detail.GradeBreakdown[0].TotalKg != 1000 {
		t.Fatalf("unexpected top grade: %+v", detail.GradeBreakdown[0])
	}
	if detail.GradeBreakdown[1].Grade != "Ungraded" {
		t.Fatalf("expected Ungraded fallback, got %q", detail.GradeBreakdown[1].Grade)
	}
}

func TestExecutiveReport_StatusFilterIncludesCancelled(t *testing.T) {
	exec := executive("Vik")
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -1)

	cancelled := order(&exec.ID, custID, nil, 700, 0, date)
	cancelled.Status = enum.OrderStatusCancelled
	records := &fakeRecordRepo{records: []entity.Record{
		order(&exec.ID, custID, nil, 100, 100, date),
		cancelled,
	}}
	users := &fakeUserRepo{users: []entity.User{exec}, roster: []entity.User{exec}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})

	// Default: cancelled is excluded from aggregation.
	out, err := svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}
	if !out.Summary.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected cancelled excluded, got %s", out.Summary.TotalRevenue)
	}

	// Explicit status filter surfaces exactly the discriminated case.
	status := enum.OrderStatusCancelled
	out, err = svc.ExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{Status: &status})
	if err != nil {
		t.Fatalf("ExecutiveReport error: %v", err)
	}
	if out.Summary.TotalOrders != 1 || !out.Summary.TotalRevenue.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("explicit status filter wrong: %+v", out.Summary.Totals)
	}
}

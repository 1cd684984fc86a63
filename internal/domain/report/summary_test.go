package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func execRows(n int) []ExecutiveRow {
	rows := make([]ExecutiveRow, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		rows = append(rows, ExecutiveRow{
			GroupKind:   GroupNormal,
			ExecutiveID: &id,
			Name:        fmt.Sprintf("Exec %02d", i),
			Totals: Totals{
				TotalRecords:     2,
				TotalOrders:      2,
				TotalRevenue:     decimal.NewFromInt(100),
				TotalPaid:        decimal.NewFromInt(60),
				TotalOutstanding: decimal.NewFromInt(40),
			},
		})
	}
	return rows
}

// The summary must cover the full set regardless of which page is sliced.
func TestSummaryCoversFullSetAcrossPages(t *testing.T) {
	rows := execRows(25)
	summary := SummarizeExecutives(rows)

	if summary.TotalExecutives != 25 {
		t.Fatalf("expected 25 executives, got %d", summary.TotalExecutives)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("expected revenue 2500, got %s", summary.TotalRevenue)
	}

	page3, meta := Page(rows, 3, 10)
	if len(page3) != 5 {
		t.Fatalf("expected 5 rows on page 3, got %d", len(page3))
	}
	if meta.Total != 25 || meta.TotalPages != 3 {
		t.Fatalf("expected total 25 over 3 pages, got %+v", meta)
	}
	if meta.HasNext || !meta.HasPrev {
		t.Fatalf("expected last page metadata, got %+v", meta)
	}

	// Recomputing from the slice would give a different answer; the summary
	// above must not change with the page.
	again := SummarizeExecutives(rows)
	if again.TotalExecutives != summary.TotalExecutives || !again.TotalRevenue.Equal(summary.TotalRevenue) {
		t.Fatal("summary changed between page requests")
	}
}

func TestPageBeyondEnd(t *testing.T) {
	rows := execRows(4)
	out, meta := Page(rows, 9, 10)
	if len(out) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(out))
	}
	if meta.Total != 4 {
		t.Fatalf("expected total 4, got %d", meta.Total)
	}
}

func TestSummarizeExecutives_AvgOrderValue(t *testing.T) {
	rows := []ExecutiveRow{
		{Totals: Totals{TotalOrders: 3, TotalRevenue: decimal.NewFromInt(100)}},
	}
	s := SummarizeExecutives(rows)
	if !s.AvgOrderValue.Equal(decimal.NewFromFloat(33.33)) {
		t.Fatalf("expected 33.33, got %s", s.AvgOrderValue)
	}

	// Empty set must not divide by zero.
	empty := SummarizeExecutives(nil)
	if !empty.AvgOrderValue.Equal(decimal.Zero) {
		t.Fatalf("expected zero avg for empty set, got %s", empty.AvgOrderValue)
	}
}

func TestSummarizeCustomers_Kilograms(t *testing.T) {
	rows := []CustomerRow{
		{CustomerID: uuid.New(), TotalKg: 150, Totals: Totals{TotalOrders: 1, TotalRevenue: decimal.NewFromInt(10)}},
		{CustomerID: uuid.New(), TotalKg: 50, Totals: Totals{TotalOrders: 1, TotalRevenue: decimal.NewFromInt(20)}},
	}
	s := SummarizeCustomers(rows)
	if s.TotalKg != 200 {
		t.Fatalf("expected 200kg, got %v", s.TotalKg)
	}
	if s.TotalCustomers != 2 {
		t.Fatalf("expected 2 customers, got %d", s.TotalCustomers)
	}
}

func TestSortExecutives_TiesBreakDeterministically(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	if a.String() > b.String() {
		a, b = b, a
	}
	rev := decimal.NewFromInt(100)
	rows := []ExecutiveRow{
		{GroupKind: GroupNormal, ExecutiveID: &b, Name: "B", Totals: Totals{TotalRevenue: rev}},
		{GroupKind: GroupNormal, ExecutiveID: &a, Name: "A", Totals: Totals{TotalRevenue: rev}},
	}

	SortExecutives(rows, SortByTotalRevenue, SortDesc)
	if *rows[0].ExecutiveID != a {
		t.Fatalf("expected tie to break on id, got %s first", rows[0].Name)
	}

	// Ties must break the same way regardless of direction.
	SortExecutives(rows, SortByTotalRevenue, SortAsc)
	if *rows[0].ExecutiveID != a {
		t.Fatalf("tie break changed with direction, got %s first", rows[0].Name)
	}
}

func TestSortExecutives_SyntheticRowsSortAfterReal(t *testing.T) {
	id := uuid.New()
	rev := decimal.NewFromInt(100)
	rows := []ExecutiveRow{
		{GroupKind: GroupDeletedCreator, Name: GroupDeletedCreator.Label(), Totals: Totals{TotalRevenue: rev}},
		{GroupKind: GroupNormal, ExecutiveID: &id, Name: "Real", Totals: Totals{TotalRevenue: rev}},
	}
	SortExecutives(rows, SortByTotalRevenue, SortDesc)
	if rows[0].GroupKind != GroupNormal {
		t.Fatalf("expected real row before synthetic on ties, got %q first", rows[0].GroupKind)
	}
}

func TestSortExecutives_ByLastActivity(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	rows := []ExecutiveRow{
		{ExecutiveID: &idA, Name: "early", LastActivityAt: &early},
		{ExecutiveID: &idB, Name: "late", LastActivityAt: &late},
		{ExecutiveID: &idC, Name: "never"},
	}
	SortExecutives(rows, SortByLastActivity, SortDesc)
	if rows[0].Name != "late" || rows[2].Name != "never" {
		t.Fatalf("unexpected order: %s, %s, %s", rows[0].Name, rows[1].Name, rows[2].Name)
	}
}

func TestSortCustomers_ByTotalKg(t *testing.T) {
	rows := []CustomerRow{
		{CustomerID: uuid.New(), BusinessName: "Light", TotalKg: 10},
		{CustomerID: uuid.New(), BusinessName: "Heavy", TotalKg: 900},
	}
	SortCustomers(rows, SortByTotalKg, SortDesc)
	if rows[0].BusinessName != "Heavy" {
		t.Fatalf("expected Heavy first, got %s", rows[0].BusinessName)
	}
}

func TestSortWarehouses_ByName(t *testing.T) {
	idA, idB := uuid.New(), uuid.New()
	rows := []WarehouseRow{
		{WarehouseID: &idB, Name: "zeta"},
		{WarehouseID: &idA, Name: "Alpha"},
	}
	SortWarehouses(rows, SortByName, SortAsc)
	if rows[0].Name != "Alpha" {
		t.Fatalf("expected case-insensitive name sort, got %s first", rows[0].Name)
	}
}

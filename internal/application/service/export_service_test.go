package service

import (
	"context"
	"testing"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/report"
	"github.com/google/uuid"
)

func TestExportExecutiveReport_SheetsMatchReport(t *testing.T) {
	exec := executive("Asha")
	custID := uuid.New()
	date := testNow.AddDate(0, 0, -10)

	records := &fakeRecordRepo{records: []entity.Record{
		order(&exec.ID, custID, nil, 500, 500, date),
		order(nil, custID, nil, 300, 0, date),
	}}
	users := &fakeUserRepo{users: []entity.User{exec}, roster: []entity.User{exec}}
	svc := newTestService(records, users, &fakeCustomerRepo{}, &fakeWarehouseRepo{})
	exports := NewExportService(svc)

	f, err := exports.ExportExecutiveReport(context.Background(), unrestrictedRequester(), &report.Request{})
	if err != nil {
		t.Fatalf("ExportExecutiveReport error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Report", "Date-wise", "Month-wise"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("expected sheets %v, got %v", want, sheets)
		}
	}

	// The workbook numbers come from the same computation the API serves.
	got, err := f.GetCellValue("Summary", "B4")
	if err != nil || got != "2" {
		t.Fatalf("expected 2 executives (roster + orphan group) in B4, got %q (%v)", got, err)
	}
	revenue, err := f.GetCellValue("Summary", "B8")
	if err != nil || revenue != "800" {
		t.Fatalf("expected total revenue 800 in B8, got %q (%v)", revenue, err)
	}

	// The breakdown attributes the creator-less record to the orphan label.
	foundOrphan := false
	dateRows, err := f.GetRows("Date-wise")
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	for _, row := range dateRows[1:] {
		if len(row) > 1 && row[1] == "Deleted User" {
			foundOrphan = true
		}
	}
	if !foundOrphan {
		t.Fatal("expected a Deleted User group in the date-wise breakdown")
	}
}

func TestExportExecutiveReport_DeniedScope(t *testing.T) {
	assigned := uuid.New()
	requester := &entity.User{ID: uuid.New(), PrimaryWarehouseID: &assigned}
	other := uuid.New()

	svc := newTestService(&fakeRecordRepo{}, &fakeUserRepo{}, &fakeCustomerRepo{}, &fakeWarehouseRepo{})
	exports := NewExportService(svc)

	f, err := exports.ExportExecutiveReport(context.Background(), requester, &report.Request{WarehouseID: &other})
	if err != nil {
		t.Fatalf("denied scope must yield an empty workbook, not an error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Summary", "B4")
	if err != nil || got != "0" {
		t.Fatalf("expected 0 executives in denied workbook, got %q (%v)", got, err)
	}
}

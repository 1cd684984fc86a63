package report

import (
	"testing"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/enum"
)

func TestBuildFilter_Defaults(t *testing.T) {
	f, err := BuildFilter(&Request{}, Scope{Unrestricted: true})
	if err != nil {
		t.Fatalf("BuildFilter error: %v", err)
	}
	if f.Kind != enum.RecordKindOrder {
		t.Fatalf("expected default kind order, got %q", f.Kind)
	}
	if f.SortOrder != SortDesc {
		t.Fatalf("expected default sort order desc, got %q", f.SortOrder)
	}
	if f.Page != 1 || f.Limit != DefaultPageLimit {
		t.Fatalf("expected page 1 limit %d, got %d/%d", DefaultPageLimit, f.Page, f.Limit)
	}
	if len(f.ExcludeStatuses) != 2 {
		t.Fatalf("expected cancelled/rejected exclusion, got %v", f.ExcludeStatuses)
	}
	if len(f.DefaultRoleNames) == 0 {
		t.Fatal("expected default role names to be set")
	}
}

func TestBuildFilter_ExplicitStatusSuppressesExclusion(t *testing.T) {
	status := enum.OrderStatusCancelled
	f, err := BuildFilter(&Request{Status: &status}, Scope{Unrestricted: true})
	if err != nil {
		t.Fatalf("BuildFilter error: %v", err)
	}
	if f.ExplicitStatus == nil || *f.ExplicitStatus != status {
		t.Fatalf("expected explicit status %q, got %v", status, f.ExplicitStatus)
	}
	if len(f.ExcludeStatuses) != 0 {
		t.Fatalf("explicit status must suppress the default exclusion, got %v", f.ExcludeStatuses)
	}

	ds := enum.DeliveryStatusReturned
	f, err = BuildFilter(&Request{DeliveryStatus: &ds}, Scope{Unrestricted: true})
	if err != nil {
		t.Fatalf("BuildFilter error: %v", err)
	}
	if len(f.ExcludeStatuses) != 0 {
		t.Fatalf("explicit delivery status must suppress the default exclusion, got %v", f.ExcludeStatuses)
	}
}

func TestBuildFilter_DateNormalization(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 30, 12, 0, time.UTC)
	end := time.Date(2025, 3, 15, 2, 5, 0, 0, time.UTC)

	f, err := BuildFilter(&Request{StartDate: &start, EndDate: &end}, Scope{Unrestricted: true})
	if err != nil {
		t.Fatalf("BuildFilter error: %v", err)
	}
	if f.Start.Hour() != 0 || f.Start.Minute() != 0 || f.Start.Second() != 0 {
		t.Fatalf("expected start of day, got %v", f.Start)
	}
	if f.End.Hour() != 23 || f.End.Minute() != 59 || f.End.Second() != 59 {
		t.Fatalf("expected end of day, got %v", f.End)
	}
	if f.Start.Day() != 10 || f.End.Day() != 15 {
		t.Fatalf("dates moved to wrong days: %v .. %v", f.Start, f.End)
	}
}

func TestBuildFilter_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := BuildFilter(&Request{StartDate: &start, EndDate: &end}, Scope{Unrestricted: true}); err == nil {
		t.Fatal("expected error for end before start")
	}

	// Same calendar day is valid: normalization spreads it across the day.
	sameDay := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	f, err := BuildFilter(&Request{StartDate: &start, EndDate: &sameDay}, Scope{Unrestricted: true})
	if err != nil {
		t.Fatalf("same-day range should be valid: %v", err)
	}
	if !f.Start.Before(*f.End) {
		t.Fatalf("normalized same-day range inverted: %v .. %v", f.Start, f.End)
	}
}

func TestBuildFilter_InvalidInputs(t *testing.T) {
	badStatus := enum.OrderStatus("bogus")
	badDelivery := enum.DeliveryStatus("bogus")
	cases := []struct {
		name string
		req  Request
	}{
		{"kind", Request{Kind: enum.RecordKind("refund")}},
		{"activity", Request{Activity: ActivityFilter("dormant")}},
		{"status", Request{Status: &badStatus}},
		{"delivery status", Request{DeliveryStatus: &badDelivery}},
		{"sort order", Request{SortOrder: "sideways"}},
	}
	for _, tc := range cases {
		if _, err := BuildFilter(&tc.req, Scope{Unrestricted: true}); err == nil {
			t.Fatalf("expected error for invalid %s", tc.name)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultPageLimit},
		{-3, -1, 1, DefaultPageLimit},
		{2, 25, 2, 25},
		{1, 500, 1, MaxPageLimit},
		{1, MaxPageLimit, 1, MaxPageLimit},
	}
	for _, tc := range cases {
		p, l := ClampPage(tc.page, tc.limit)
		if p != tc.wantPage || l != tc.wantLimit {
			t.Fatalf("ClampPage(%d, %d) expected %d/%d, got %d/%d",
				tc.page, tc.limit, tc.wantPage, tc.wantLimit, p, l)
		}
	}
}

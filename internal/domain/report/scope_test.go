package report

import (
	"testing"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/google/uuid"
)

func userWithWarehouses(primary *uuid.UUID, accessible ...uuid.UUID) *entity.User {
	u := &entity.User{ID: uuid.New(), PrimaryWarehouseID: primary}
	for _, id := range accessible {
		u.AccessibleWarehouses = append(u.AccessibleWarehouses, entity.Warehouse{ID: id})
	}
	return u
}

func TestResolveScope_Unassigned(t *testing.T) {
	u := userWithWarehouses(nil)

	s := ResolveScope(u, nil)
	if !s.Unrestricted || s.Denied {
		t.Fatalf("expected unrestricted scope, got %+v", s)
	}

	// An explicit filter narrows even an unassigned principal.
	wh := uuid.New()
	s = ResolveScope(u, &wh)
	if s.Unrestricted || s.Denied {
		t.Fatalf("expected narrowed scope, got %+v", s)
	}
	if len(s.WarehouseIDs) != 1 || s.WarehouseIDs[0] != wh {
		t.Fatalf("expected scope on %s, got %v", wh, s.WarehouseIDs)
	}
}

func TestResolveScope_AssignedMember(t *testing.T) {
	primary := uuid.New()
	extra := uuid.New()
	u := userWithWarehouses(&primary, extra)

	s := ResolveScope(u, nil)
	if s.Unrestricted || s.Denied {
		t.Fatalf("expected restricted scope, got %+v", s)
	}
	if len(s.WarehouseIDs) != 2 {
		t.Fatalf("expected 2 warehouses, got %v", s.WarehouseIDs)
	}

	s = ResolveScope(u, &extra)
	if len(s.WarehouseIDs) != 1 || s.WarehouseIDs[0] != extra {
		t.Fatalf("expected scope narrowed to %s, got %v", extra, s.WarehouseIDs)
	}
}

func TestResolveScope_DeniedOutsideAssignment(t *testing.T) {
	primary := uuid.New()
	u := userWithWarehouses(&primary)

	other := uuid.New()
	s := ResolveScope(u, &other)
	if !s.Denied {
		t.Fatalf("expected denied scope, got %+v", s)
	}
	if s.Contains(&other) {
		t.Fatal("denied scope must not contain anything")
	}
}

func TestResolveScope_DedupesPrimaryInAccessible(t *testing.T) {
	primary := uuid.New()
	u := userWithWarehouses(&primary, primary, uuid.New())

	s := ResolveScope(u, nil)
	if len(s.WarehouseIDs) != 2 {
		t.Fatalf("expected 2 distinct warehouses, got %v", s.WarehouseIDs)
	}
}

func TestScopeContains(t *testing.T) {
	in := uuid.New()
	out := uuid.New()

	restricted := Scope{WarehouseIDs: []uuid.UUID{in}}
	if !restricted.Contains(&in) {
		t.Fatal("expected member warehouse to be contained")
	}
	if restricted.Contains(&out) {
		t.Fatal("expected non-member warehouse to be excluded")
	}
	// Records without a warehouse reference are only visible unrestricted.
	if restricted.Contains(nil) {
		t.Fatal("restricted scope must not contain nil warehouse")
	}
	if !(Scope{Unrestricted: true}).Contains(nil) {
		t.Fatal("unrestricted scope must contain nil warehouse")
	}
}

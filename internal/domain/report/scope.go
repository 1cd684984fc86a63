package report

import (
	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/google/uuid"
)

// Scope is the set of warehouses a requesting principal may see, after
// reconciling the principal's assignment against an optional explicit
// warehouse filter.
//
// Every report type resolves its scope through ResolveScope before building
// its filter; no report path may bypass it.
type Scope struct {
	// Unrestricted means the principal has no warehouse assignment at all
	// (legacy/superuser principals) and sees every warehouse.
	Unrestricted bool
	// Denied means an explicit warehouse outside the allowed set was
	// requested. The calling report must return a zeroed, empty report,
	// never an error.
	Denied bool
	// WarehouseIDs is the allowed set when restricted. Exactly one entry
	// when an explicit warehouse filter was accepted.
	WarehouseIDs []uuid.UUID
}

// ResolveScope computes the warehouse visibility for the requester,
// narrowed to the explicit warehouse when one is supplied.
func ResolveScope(requester *entity.User, explicit *uuid.UUID) Scope {
	allowed := requester.WarehouseIDs()

	if len(allowed) == 0 {
		// No assignment at all: sees everything, narrowed only by an
		// explicit filter.
		if explicit != nil && *explicit != uuid.Nil {
			return Scope{WarehouseIDs: []uuid.UUID{*explicit}}
		}
		return Scope{Unrestricted: true}
	}

	if explicit != nil && *explicit != uuid.Nil {
		for _, id := range allowed {
			if id == *explicit {
				return Scope{WarehouseIDs: []uuid.UUID{*explicit}}
			}
		}
		// Probing a warehouse outside the allowed set yields an empty
		// report, not an error, so existence is not leaked.
		return Scope{Denied: true}
	}

	return Scope{WarehouseIDs: allowed}
}

// Contains reports whether the scope permits the given warehouse. A nil
// warehouse reference is only visible to unrestricted scopes.
func (s Scope) Contains(warehouseID *uuid.UUID) bool {
	if s.Denied {
		return false
	}
	if s.Unrestricted {
		return true
	}
	if warehouseID == nil {
		return false
	}
	for _, id := range s.WarehouseIDs {
		if id == *warehouseID {
			return true
		}
	}
	return false
}

package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/domain/enum"
	"github.com/google/uuid"
)

// ActivityFilter narrows a report to principals/customers with or without
// matching records in the period.
type ActivityFilter string

const (
	ActivityAny      ActivityFilter = ""
	ActivityActive   ActivityFilter = "active"
	ActivityInactive ActivityFilter = "inactive"
)

// SortOrder values accepted from callers.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination bounds applied to every list report.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Request is the inbound report contract consumed from the request-handling
// layer. All fields except sort/page are optional.
type Request struct {
	StartDate      *time.Time
	EndDate        *time.Time
	PrincipalID    *uuid.UUID
	Department     *string
	RoleIDs        []uint
	WarehouseID    *uuid.UUID
	Kind           enum.RecordKind
	Activity       ActivityFilter
	Status         *enum.OrderStatus
	DeliveryStatus *enum.DeliveryStatus
	SortBy         string
	SortOrder      string
	Page           int
	Limit          int
}

// Filter is the normalized descriptor consumed by the aggregator. It is
// built exactly once per report through BuildFilter; the aggregator never
// re-checks raw inputs.
type Filter struct {
	Start *time.Time
	End   *time.Time

	PrincipalID *uuid.UUID
	Department  *string

	// RoleIDs filters the executive roster when non-empty; otherwise the
	// roster defaults to DefaultRoleNames.
	RoleIDs          []uint
	DefaultRoleNames []string

	Scope Scope
	Kind  enum.RecordKind

	Activity ActivityFilter

	// Explicit status filters. When either is set the default
	// cancelled/rejected exclusion is suppressed: the explicit filter is
	// the discriminated case and takes precedence.
	ExplicitStatus         *enum.OrderStatus
	ExplicitDeliveryStatus *enum.DeliveryStatus

	// ExcludeStatuses is the default monetary-aggregation exclusion; empty
	// when an explicit status filter is present or when the caller opts
	// into counting voided orders in-memory (customer report).
	ExcludeStatuses []enum.OrderStatus

	// CustomerIDs restricts the record scan to these customers. Set by the
	// customer report, whose scoping basis is the customer's assigned
	// warehouse rather than the warehouse recorded on the order. When
	// non-nil the repository must not apply the warehouse scope to the
	// record's own warehouse reference.
	CustomerIDs []uuid.UUID

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// BuildFilter validates and normalizes a report request against an already
// resolved scope. It is a caller error to pass a denied scope here; denied
// scopes short-circuit into an empty report before any filter is built.
func BuildFilter(req *Request, scope Scope) (*Filter, error) {
	kind := req.Kind
	if kind == "" {
		kind = enum.RecordKindOrder
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	switch req.Activity {
	case ActivityAny, ActivityActive, ActivityInactive:
	default:
		return nil, fmt.Errorf("unknown activity filter %q", req.Activity)
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q", *req.Status)
	}
	if req.DeliveryStatus != nil && !req.DeliveryStatus.Valid() {
		return nil, fmt.Errorf("unknown delivery status %q", *req.DeliveryStatus)
	}

	start := req.StartDate
	end := req.EndDate
	if start != nil {
		s := StartOfDay(*start)
		start = &s
	}
	if end != nil {
		e := EndOfDay(*end)
		end = &e
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, errors.New("end date is before start date")
	}

	sortOrder := req.SortOrder
	switch sortOrder {
	case "":
		sortOrder = SortDesc
	case SortAsc, SortDesc:
	default:
		return nil, fmt.Errorf("unknown sort order %q", sortOrder)
	}

	page, limit := ClampPage(req.Page, req.Limit)

	f := &Filter{
		Start:                  start,
		End:                    end,
		PrincipalID:            req.PrincipalID,
		Department:             req.Department,
		RoleIDs:                req.RoleIDs,
		DefaultRoleNames:       []string{entity.RoleSalesExecutive, entity.RoleManager},
		Scope:                  scope,
		Kind:                   kind,
		Activity:               req.Activity,
		ExplicitStatus:         req.Status,
		ExplicitDeliveryStatus: req.DeliveryStatus,
		SortBy:                 req.SortBy,
		SortOrder:              sortOrder,
		Page:                   page,
		Limit:                  limit,
	}

	// Default exclusion of cancelled/rejected from monetary aggregation,
	// suppressed by any explicit status filter.
	if req.Status == nil && req.DeliveryStatus == nil {
		f.ExcludeStatuses = enum.ExcludedFromMonetaryAggregation()
	}

	return f, nil
}

// ClampPage bounds raw page inputs: page >= 1, 1 <= limit <= MaxPageLimit.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// StartOfDay normalizes t to 00:00:00.000 of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normalizes t to 23:59:59.999 of its calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

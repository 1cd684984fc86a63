package enum

// RecordKind discriminates the transaction record union.
type RecordKind string

const (
	RecordKindOrder RecordKind = "order"
	RecordKindVisit RecordKind = "visit"
)

// Valid reports whether the kind is a known value.
func (k RecordKind) Valid() bool {
	return k == RecordKindOrder || k == RecordKindVisit
}

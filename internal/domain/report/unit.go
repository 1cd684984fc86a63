package report

import (
	"regexp"
	"strconv"

	"github.com/attaflow/attaflow-api/internal/domain/enum"
)

// DefaultBagWeightKg is assumed when a Bags line item carries no resolvable
// packaging description. Loose bags in the field are overwhelmingly 50kg.
const DefaultBagWeightKg = 50.0

// bagWeightRule maps a packaging pattern to a per-bag weight. Rules are
// checked in order; keeping this as an explicit table keeps the fallback
// visible and lets tests enumerate it.
type bagWeightRule struct {
	weightKg float64
	pattern  *regexp.Regexp
}

// Patterns require a digit boundary on the left so "25kg Bags" resolves to
// 25 and not to the embedded "5kg", and tolerate a space before "kg".
var bagWeightRules = []bagWeightRule{
	{5, regexp.MustCompile(`(?i)(^|[^0-9.])5\s*kg`)},
	{10, regexp.MustCompile(`(?i)(^|[^0-9.])10\s*kg`)},
	{25, regexp.MustCompile(`(?i)(^|[^0-9.])25\s*kg`)},
	{40, regexp.MustCompile(`(?i)(^|[^0-9.])40\s*kg`)},
	{50, regexp.MustCompile(`(?i)(^|[^0-9.])50\s*kg`)},
}

var genericKgPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kg`)

// BagWeightKg derives the per-bag weight in kilograms from a free-text
// packaging description such as "25kg Bags" or "10 kg bag".
func BagWeightKg(packaging string) float64 {
	for _, rule := range bagWeightRules {
		if rule.pattern.MatchString(packaging) {
			return rule.weightKg
		}
	}
	if m := genericKgPattern.FindStringSubmatch(packaging); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil && w > 0 {
			return w
		}
	}
	return DefaultBagWeightKg
}

// NormalizeToKg converts a line item quantity captured in the given unit to
// kilograms. It must be applied per line item before summation; converting
// a pre-summed mixed-unit total is wrong.
//
// Unrecognized units pass through unchanged (treated as kilograms) rather
// than failing: dropping historical rows would silently understate totals.
// Callers needing strict unit validation must validate at ingestion.
func NormalizeToKg(quantity float64, unit enum.QuantityUnit, packaging string) float64 {
	switch unit {
	case enum.UnitKG:
		return quantity
	case enum.UnitQuintal:
		return quantity * 100
	case enum.UnitTon:
		return quantity * 1000
	case enum.UnitBags:
		return quantity * BagWeightKg(packaging)
	default:
		return quantity
	}
}

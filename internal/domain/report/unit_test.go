package report

import (
	"testing"

	"github.com/attaflow/attaflow-api/internal/domain/enum"
)

func TestBagWeightKg(t *testing.T) {
	cases := []struct {
		packaging string
		expected  float64
	}{
		{"5kg Bags", 5},
		{"10kg Bags", 10},
		{"25kg Bags", 25},
		{"25 kg bag", 25},
		{"40KG", 40},
		{"50kg Bags", 50},
		{"Bag of 30kg", 30},
		{"Loose", DefaultBagWeightKg},
		{"", DefaultBagWeightKg},
	}
	for _, tc := range cases {
		if got := BagWeightKg(tc.packaging); got != tc.expected {
			t.Fatalf("BagWeightKg(%q) expected %v, got %v", tc.packaging, tc.expected, got)
		}
	}
}

// "25kg" must not resolve to the embedded "5kg" rule.
func TestBagWeightKg_DigitBoundary(t *testing.T) {
	if got := BagWeightKg("25kg Bags"); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := BagWeightKg("40kg sack"); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
}

func TestNormalizeToKg(t *testing.T) {
	cases := []struct {
		quantity  float64
		unit      enum.QuantityUnit
		packaging string
		expected  float64
	}{
		{2, enum.UnitBags, "25kg Bags", 50},
		{1, enum.UnitQuintal, "", 100},
		{1, enum.UnitTon, "", 1000},
		{3, enum.UnitBags, "Loose", 150},
		{7.5, enum.UnitKG, "", 7.5},
		{4, enum.UnitBags, "10 kg bag", 40},
		// Unknown units pass through unchanged.
		{12, enum.QuantityUnit("Crates"), "", 12},
	}
	for _, tc := range cases {
		got := NormalizeToKg(tc.quantity, tc.unit, tc.packaging)
		if got != tc.expected {
			t.Fatalf("NormalizeToKg(%v, %q, %q) expected %v, got %v",
				tc.quantity, tc.unit, tc.packaging, tc.expected, got)
		}
	}
}

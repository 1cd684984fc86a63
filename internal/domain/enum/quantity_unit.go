package enum

// QuantityUnit is the unit a line item quantity was captured in.
// Unknown unit strings are tolerated downstream and treated as kilograms,
// so this type carries no Valid method on purpose.
type QuantityUnit string

const (
	UnitKG      QuantityUnit = "KG"
	UnitQuintal QuantityUnit = "Quintal"
	UnitTon     QuantityUnit = "Ton"
	UnitBags    QuantityUnit = "Bags"
)

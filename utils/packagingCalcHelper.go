package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity units for sales documents. "MIL" documents price per milheiro
// (thousand printed units); "KG" documents price per kilogram of film.
const (
	UnitThousands = "MIL"
	UnitKilograms = "KG"
)

var decimalOneThousand = decimal.NewFromInt(1000)
var decimalOneMillion = decimal.NewFromInt(1_000_000)

// ComputeUnitWeight returns the weight in grams of a single printed unit,
// from the roll's repeat length (pitch, mm), web width (mm) and basis
// weight (g/m²):
//
//	unitWeight = pitch × width × basisWeight / 1_000_000
//
// Missing or unparseable form fields arrive here as zero (see
// ParseDecimalOrZero), so a blank dimension simply yields zero weight.
func ComputeUnitWeight(pitch, width, basisWeight decimal.Decimal) decimal.Decimal {
	return pitch.Mul(width).Mul(basisWeight).Div(decimalOneMillion)
}

// ComputeYield returns how many units are obtained per kilogram of
// material. Zero (not an error) when the unit weight is zero or negative.
func ComputeYield(unitWeightGrams decimal.Decimal) decimal.Decimal {
	if unitWeightGrams.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return decimalOneThousand.Div(unitWeightGrams)
}

// ResolveQuantity maps the single authoritative quantity input to both
// measurement systems. For UnitThousands the stored value is the milheiro
// count and the derived total weight in kg is count × unitWeight — the
// thousand-units and gram→kg factors cancel. For UnitKilograms the value
// is the total weight and the milheiro count is derived, zero when the
// unit weight is zero (never a division error).
func ResolveQuantity(unit string, value, unitWeightGrams decimal.Decimal) (count, weightKg decimal.Decimal) {
	if unit == UnitKilograms {
		weightKg = value
		if unitWeightGrams.GreaterThan(decimal.Zero) {
			count = value.Div(unitWeightGrams)
		} else {
			count = decimal.Zero
		}
		return count, weightKg
	}
	count = value
	weightKg = value.Mul(unitWeightGrams)
	return count, weightKg
}

// ComputeTotals derives the document money amounts from the effective
// milheiro count and the ICMS-inclusive unit price. IPI is charged on top
// of the subtotal; ICMS is informational and never applied here. No
// rounding: display formatting belongs to the caller.
func ComputeTotals(count, unitPriceICMS, ipiPercent decimal.Decimal) (subtotal, ipiAmount, finalTotal decimal.Decimal) {
	subtotal = count.Mul(unitPriceICMS)
	ipiAmount = subtotal.Mul(ipiPercent).Div(decimal.NewFromInt(100))
	finalTotal = subtotal.Add(ipiAmount)
	return subtotal, ipiAmount, finalTotal
}

// IsRollFed reports whether a packaging type label describes roll stock
// ("bobina" forms), which is quoted by weight rather than by count.
func IsRollFed(packagingType string) bool {
	return strings.Contains(strings.ToLower(packagingType), "bobina")
}

// NaturalQuantityUnit returns the unit a document for this packaging type
// defaults to. The form may still override it; the engine accepts either.
func NaturalQuantityUnit(packagingType string) string {
	if IsRollFed(packagingType) {
		return UnitKilograms
	}
	return UnitThousands
}

// ParseDecimalOrZero is the single safe numeric parse used for every
// numeric form field: blank or malformed input coalesces to zero instead
// of erroring, matching the form's behavior of never rejecting input.
func ParseDecimalOrZero(value string) decimal.Decimal {
	dec, err := ParseDecimal(value)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

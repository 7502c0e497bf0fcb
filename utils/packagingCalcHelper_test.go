package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeUnitWeight_ZeroDimensionYieldsZero(t *testing.T) {
	cases := []struct {
		name                      string
		pitch, width, basisWeight string
	}{
		{"zero pitch", "0", "50", "40"},
		{"zero width", "100", "0", "40"},
		{"zero basis weight", "100", "50", "0"},
		{"all zero", "0", "0", "0"},
	}
	for _, tc := range cases {
		got := ComputeUnitWeight(dec(tc.pitch), dec(tc.width), dec(tc.basisWeight))
		if !got.IsZero() {
			t.Fatalf("%s: expected 0, got %s", tc.name, got.String())
		}
	}
}

func TestComputeUnitWeight_RollScenario(t *testing.T) {
	// 100mm pitch x 50mm width x 40g/m² film = 0.2g per printed unit.
	got := ComputeUnitWeight(dec("100"), dec("50"), dec("40"))
	if !got.Equal(dec("0.2")) {
		t.Fatalf("expected 0.2g, got %s", got.String())
	}

	// Linear in each dimension independently.
	doubledPitch := ComputeUnitWeight(dec("200"), dec("50"), dec("40"))
	if !doubledPitch.Equal(got.Mul(dec("2"))) {
		t.Fatalf("doubling pitch should double unit weight, got %s", doubledPitch.String())
	}
	doubledWidth := ComputeUnitWeight(dec("100"), dec("100"), dec("40"))
	if !doubledWidth.Equal(got.Mul(dec("2"))) {
		t.Fatalf("doubling width should double unit weight, got %s", doubledWidth.String())
	}
}

func TestComputeYield(t *testing.T) {
	cases := []struct {
		name       string
		unitWeight string
		expected   string
	}{
		{"zero weight", "0", "0"},
		{"negative weight", "-1", "0"},
		{"2g per unit", "2", "500"},
		{"0.2g per unit", "0.2", "5000"},
	}
	for _, tc := range cases {
		got := ComputeYield(dec(tc.unitWeight))
		if !got.Equal(dec(tc.expected)) {
			t.Fatalf("%s: expected %s units/kg, got %s", tc.name, tc.expected, got.String())
		}
	}
}

func TestResolveQuantity_ThousandsInput(t *testing.T) {
	// 10 milheiros of a 0.2g unit: the thousand-units and g→kg factors
	// cancel, so the total weight is 10 × 0.2 = 2kg.
	count, weightKg := ResolveQuantity(UnitThousands, dec("10"), dec("0.2"))
	if !count.Equal(dec("10")) {
		t.Fatalf("expected count 10, got %s", count.String())
	}
	if !weightKg.Equal(dec("2")) {
		t.Fatalf("expected 2kg, got %s", weightKg.String())
	}
}

func TestResolveQuantity_WeightInput(t *testing.T) {
	count, weightKg := ResolveQuantity(UnitKilograms, dec("2"), dec("0.2"))
	if !weightKg.Equal(dec("2")) {
		t.Fatalf("expected 2kg, got %s", weightKg.String())
	}
	if !count.Equal(dec("10")) {
		t.Fatalf("expected count 10, got %s", count.String())
	}
}

func TestResolveQuantity_WeightInputZeroUnitWeight(t *testing.T) {
	count, weightKg := ResolveQuantity(UnitKilograms, dec("2"), decimal.Zero)
	if !count.IsZero() {
		t.Fatalf("expected count 0 when unit weight is 0, got %s", count.String())
	}
	if !weightKg.Equal(dec("2")) {
		t.Fatalf("expected 2kg, got %s", weightKg.String())
	}
}

func TestResolveQuantity_RoundTrip(t *testing.T) {
	tolerance := dec("0.000000001")
	unitWeights := []string{"0.2", "0.3", "1.75", "12.5"}
	counts := []string{"0", "1", "10", "250.5"}
	for _, uw := range unitWeights {
		for _, c := range counts {
			_, weightKg := ResolveQuantity(UnitThousands, dec(c), dec(uw))
			recovered, _ := ResolveQuantity(UnitKilograms, weightKg, dec(uw))
			if recovered.Sub(dec(c)).Abs().GreaterThan(tolerance) {
				t.Fatalf("round-trip uw=%s count=%s: recovered %s", uw, c, recovered.String())
			}
		}
	}
}

func TestComputeTotals(t *testing.T) {
	subtotal, ipiAmount, finalTotal := ComputeTotals(dec("1000"), dec("1.25"), dec("9.75"))
	if !subtotal.Equal(dec("1250")) {
		t.Fatalf("expected subtotal 1250, got %s", subtotal.String())
	}
	if !ipiAmount.Equal(dec("121.875")) {
		t.Fatalf("expected IPI 121.875, got %s", ipiAmount.String())
	}
	if !finalTotal.Equal(dec("1371.875")) {
		t.Fatalf("expected total 1371.875, got %s", finalTotal.String())
	}
}

func TestComputeTotals_ZeroCount(t *testing.T) {
	subtotal, ipiAmount, finalTotal := ComputeTotals(decimal.Zero, dec("1.25"), dec("9.75"))
	if !subtotal.IsZero() || !ipiAmount.IsZero() || !finalTotal.IsZero() {
		t.Fatalf("expected all-zero totals, got %s/%s/%s", subtotal, ipiAmount, finalTotal)
	}
}

func TestNaturalQuantityUnit(t *testing.T) {
	cases := []struct {
		packagingType string
		expected      string
	}{
		{"Bobina Técnica", UnitKilograms},
		{"BOBINA LISA", UnitKilograms},
		{"Sache", UnitThousands},
		{"Stand-up Pouch", UnitThousands},
		{"", UnitThousands},
	}
	for _, tc := range cases {
		if got := NaturalQuantityUnit(tc.packagingType); got != tc.expected {
			t.Fatalf("NaturalQuantityUnit(%q) expected %s, got %s", tc.packagingType, tc.expected, got)
		}
	}
}

func TestParseDecimalOrZero(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"9.75", "9.75"},
		{" 12.5 ", "12.5"},
		{"-3", "-3"},
	}
	for _, tc := range cases {
		if got := ParseDecimalOrZero(tc.in); !got.Equal(dec(tc.expected)) {
			t.Fatalf("ParseDecimalOrZero(%q) expected %s, got %s", tc.in, tc.expected, got.String())
		}
	}
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductUnitWeightAndYield(t *testing.T) {
	product := Product{
		Passo:     decimal.NewFromInt(100),
		Largura:   decimal.NewFromInt(50),
		Gramatura: decimal.NewFromInt(40),
	}

	if got, want := product.UnitWeight().String(), "0.2"; got != want {
		t.Errorf("UnitWeight = %s, want %s", got, want)
	}
	if got, want := product.Yield().String(), "5000"; got != want {
		t.Errorf("Yield = %s, want %s", got, want)
	}
}

func TestProductWithoutDimensions(t *testing.T) {
	var product Product

	if !product.UnitWeight().IsZero() {
		t.Errorf("UnitWeight = %s, want 0", product.UnitWeight())
	}
	if !product.Yield().IsZero() {
		t.Errorf("Yield = %s, want 0", product.Yield())
	}
}

func TestProductDefaultUnit(t *testing.T) {
	tests := []struct {
		tipo string
		want QuantityUnit
		roll bool
	}{
		{"Bobina lisa", QuantityUnitKilogramas, true},
		{"BOBINA impressa", QuantityUnitKilogramas, true},
		{"Saco plástico", QuantityUnitMilheiro, false},
		{"", QuantityUnitMilheiro, false},
	}

	for _, tt := range tests {
		product := Product{TipoEmbalagem: tt.tipo}
		if got := product.DefaultUnit(); got != tt.want {
			t.Errorf("DefaultUnit(%q) = %s, want %s", tt.tipo, got, tt.want)
		}
		if got := product.IsRollFed(); got != tt.roll {
			t.Errorf("IsRollFed(%q) = %v, want %v", tt.tipo, got, tt.roll)
		}
	}
}

package models

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

// Golden scenario: 100mm pitch, 50mm width, 40g/m² film gives a 0.2g
// unit. 1000 milheiros at R$1.25 with 9.75% IPI.
func TestOrderDerivationThousands(t *testing.T) {
	input := NewOrder{
		Numero:            "PED-001",
		ClientId:          1,
		Unidade:           QuantityUnitMilheiro,
		Quantidade:        "1000",
		Passo:             "100",
		Largura:           "50",
		Gramatura:         "40",
		PrecoUnitarioIcms: "1.25",
		ComissaoValor:     "50",
	}

	order, err := input.toModel(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}

	if got, want := order.PesoUnitario.String(), "0.2"; got != want {
		t.Errorf("PesoUnitario = %s, want %s", got, want)
	}
	if got, want := order.QuantidadeMilheiro.String(), "1000"; got != want {
		t.Errorf("QuantidadeMilheiro = %s, want %s", got, want)
	}
	if got, want := order.PesoTotalKg.String(), "200"; got != want {
		t.Errorf("PesoTotalKg = %s, want %s", got, want)
	}
	if got, want := order.ValorSemIpi.String(), "1250"; got != want {
		t.Errorf("ValorSemIpi = %s, want %s", got, want)
	}
	if got, want := order.ValorIpi.String(), "121.875"; got != want {
		t.Errorf("ValorIpi = %s, want %s", got, want)
	}
	if got, want := order.ValorFinal.String(), "1371.875"; got != want {
		t.Errorf("ValorFinal = %s, want %s", got, want)
	}
	if got, want := order.ComissaoValor.String(), "50"; got != want {
		t.Errorf("ComissaoValor = %s, want %s", got, want)
	}
}

func TestOrderDerivationKilograms(t *testing.T) {
	input := NewOrder{
		Numero:            "PED-002",
		ClientId:          1,
		Unidade:           QuantityUnitKilogramas,
		Quantidade:        "200",
		Passo:             "100",
		Largura:           "50",
		Gramatura:         "40",
		PrecoUnitarioIcms: "1.25",
		ComissaoValor:     "10",
	}

	order, err := input.toModel(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}

	if got, want := order.PesoTotalKg.String(), "200"; got != want {
		t.Errorf("PesoTotalKg = %s, want %s", got, want)
	}
	if got, want := order.QuantidadeMilheiro.String(), "1000"; got != want {
		t.Errorf("QuantidadeMilheiro = %s, want %s", got, want)
	}
	if got, want := order.ValorSemIpi.String(), "1250"; got != want {
		t.Errorf("ValorSemIpi = %s, want %s", got, want)
	}
}

// A KG order with no dimensional data must not derive a milheiro count
// and must never error on the division.
func TestOrderDerivationZeroUnitWeight(t *testing.T) {
	input := NewOrder{
		Numero:            "PED-003",
		ClientId:          1,
		Unidade:           QuantityUnitKilogramas,
		Quantidade:        "500",
		PrecoUnitarioIcms: "2",
		ComissaoValor:     "1",
	}

	order, err := input.toModel(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}

	if !order.PesoUnitario.IsZero() {
		t.Errorf("PesoUnitario = %s, want 0", order.PesoUnitario)
	}
	if !order.QuantidadeMilheiro.IsZero() {
		t.Errorf("QuantidadeMilheiro = %s, want 0", order.QuantidadeMilheiro)
	}
	if !order.ValorSemIpi.IsZero() {
		t.Errorf("ValorSemIpi = %s, want 0", order.ValorSemIpi)
	}
}

func TestOrderDefaultsAndBlankFields(t *testing.T) {
	input := NewOrder{
		Numero:        "PED-004",
		ClientId:      1,
		Quantidade:    "abc",
		ComissaoValor: "7.5",
	}

	order, err := input.toModel(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}

	if order.Unidade != QuantityUnitMilheiro {
		t.Errorf("Unidade = %s, want MIL", order.Unidade)
	}
	if !order.Quantidade.IsZero() {
		t.Errorf("Quantidade = %s, want 0 for malformed input", order.Quantidade)
	}
	if !order.PercentualIpi.Equal(decimal.NewFromFloat(9.75)) {
		t.Errorf("PercentualIpi = %s, want 9.75", order.PercentualIpi)
	}
	if !order.PercentualIcms.Equal(decimal.NewFromFloat(12.0)) {
		t.Errorf("PercentualIcms = %s, want 12", order.PercentualIcms)
	}
}

func TestOrderDateParsing(t *testing.T) {
	good := "2026-08-15"
	bad := "15/08/2026"

	inputGood := NewOrder{Numero: "PED-005", ClientId: 1, ComissaoValor: "1", DataPedido: &good}
	order, err := inputGood.toModel(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if order.DataPedido == nil || order.DataPedido.Format("2006-01-02") != good {
		t.Errorf("DataPedido not parsed: %v", order.DataPedido)
	}

	inputBad := NewOrder{Numero: "PED-006", ClientId: 1, ComissaoValor: "1", DataPedido: &bad}
	if _, err := inputBad.toModel(context.Background(), "ws-1"); err == nil {
		t.Error("expected error for malformed DataPedido")
	}
}

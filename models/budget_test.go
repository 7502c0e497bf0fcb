package models

import "testing"

// The quote total is quantity × unit price in whatever unit the quote
// is in; the unit never changes the arithmetic.
func TestBudgetTotal(t *testing.T) {
	tests := []struct {
		name       string
		unidade    QuantityUnit
		quantidade string
		valor      string
		want       string
	}{
		{"thousands", QuantityUnitMilheiro, "500", "1.25", "625"},
		{"kilograms", QuantityUnitKilogramas, "1200", "18.4", "22080"},
		{"blank quantity", QuantityUnitMilheiro, "", "10", "0"},
		{"malformed price", QuantityUnitMilheiro, "100", "x", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := NewBudget{
				Numero:        "ORC-001",
				ClientId:      1,
				Unidade:       tt.unidade,
				Quantidade:    tt.quantidade,
				ValorUnitario: tt.valor,
			}
			budget, err := input.toModel("ws-1")
			if err != nil {
				t.Fatalf("toModel: %v", err)
			}
			if got := budget.ValorTotal.String(); got != tt.want {
				t.Errorf("ValorTotal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBudgetDefaults(t *testing.T) {
	input := NewBudget{Numero: "ORC-002", ClientId: 1}
	budget, err := input.toModel("ws-1")
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if budget.Unidade != QuantityUnitMilheiro {
		t.Errorf("Unidade = %s, want MIL", budget.Unidade)
	}
	if budget.Status != BudgetStatusEnviado {
		t.Errorf("Status = %s, want Enviado", budget.Status)
	}
}

func TestBudgetValidadeParsing(t *testing.T) {
	bad := "31-12-2026"
	input := NewBudget{Numero: "ORC-003", ClientId: 1, Validade: &bad}
	if _, err := input.toModel("ws-1"); err == nil {
		t.Error("expected error for malformed validade")
	}
}

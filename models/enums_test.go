package models

import (
	"encoding/json"
	"testing"
)

func TestKanbanStageUnmarshal(t *testing.T) {
	for _, stage := range KanbanStages {
		var got KanbanStage
		if err := json.Unmarshal([]byte(`"`+string(stage)+`"`), &got); err != nil {
			t.Fatalf("stage %s: %v", stage, err)
		}
		if got != stage {
			t.Errorf("stage %s: got %s", stage, got)
		}
	}

	var got KanbanStage
	if err := json.Unmarshal([]byte(`"Cancelado"`), &got); err == nil {
		t.Error("unknown stage should be rejected")
	}
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Error("non-string stage should be rejected")
	}
}

func TestKanbanStagesOrder(t *testing.T) {
	want := []KanbanStage{
		KanbanStageProspeccao,
		KanbanStageOrcamento,
		KanbanStagePedido,
		KanbanStageDesenvolvimento,
		KanbanStageFaturado,
	}
	if len(KanbanStages) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(KanbanStages))
	}
	for i, stage := range want {
		if KanbanStages[i] != stage {
			t.Errorf("position %d: expected %s, got %s", i, stage, KanbanStages[i])
		}
	}
}

func TestCommissionStatusUnmarshal(t *testing.T) {
	cases := map[string]CommissionStatus{
		"Prevista": CommissionStatusPrevista,
		"Faturada": CommissionStatusFaturada,
		"Paga":     CommissionStatusPaga,
	}
	for raw, want := range cases {
		var got CommissionStatus
		if err := json.Unmarshal([]byte(`"`+raw+`"`), &got); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if got != want {
			t.Errorf("%s: got %s", raw, got)
		}
	}

	var got CommissionStatus
	if err := json.Unmarshal([]byte(`"Estornada"`), &got); err == nil {
		t.Error("unknown commission status should be rejected")
	}
}

func TestUserRoleUnmarshal(t *testing.T) {
	cases := map[string]UserRole{
		"A": UserRoleAdmin,
		"V": UserRoleVendedor,
	}
	for raw, want := range cases {
		var got UserRole
		if err := json.Unmarshal([]byte(`"`+raw+`"`), &got); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if got != want {
			t.Errorf("%s: got %s", raw, got)
		}
	}

	var got UserRole
	if err := json.Unmarshal([]byte(`"Admin"`), &got); err == nil {
		t.Error("long-form role should be rejected, the column stores A/V")
	}
	if err := json.Unmarshal([]byte(`7`), &got); err == nil {
		t.Error("non-string role should be rejected")
	}
}

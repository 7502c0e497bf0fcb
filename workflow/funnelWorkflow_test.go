package workflow

import (
	"testing"

	"github.com/Andersonriberpro/ribersolucoespack/models"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
)

func TestStageEntryOnePerMove(t *testing.T) {
	client := &models.Client{ID: 7, Status: models.KanbanStageProspeccao}

	moves := []models.KanbanStage{
		models.KanbanStageOrcamento,
		models.KanbanStageOrcamento, // same-stage drop still logs
		models.KanbanStagePedido,
		models.KanbanStageProspeccao, // moving backwards is free
	}

	var history []models.StageHistory
	for _, status := range moves {
		history = append(history, stageEntry("ws-1", client, status))
		client.Status = status
	}

	if len(history) != len(moves) {
		t.Fatalf("expected %d history rows, got %d", len(moves), len(history))
	}
	for i, entry := range history {
		if entry.Status != moves[i] {
			t.Errorf("row %d: expected status %s, got %s", i, moves[i], entry.Status)
		}
		if entry.ClientId != client.ID {
			t.Errorf("row %d: expected client %d, got %d", i, client.ID, entry.ClientId)
		}
		if entry.WorkspaceId != "ws-1" {
			t.Errorf("row %d: unexpected workspace %q", i, entry.WorkspaceId)
		}
	}
}

func TestStageEntrySameStage(t *testing.T) {
	// Re-dropping a card on its own column resets "time in stage", so the
	// entry is built exactly like any other move.
	client := &models.Client{ID: 3, Status: models.KanbanStageFaturado}
	entry := stageEntry("ws-1", client, models.KanbanStageFaturado)
	if entry.Status != models.KanbanStageFaturado || entry.ClientId != 3 {
		t.Fatalf("unexpected entry for same-stage move: %+v", entry)
	}
}

func TestAlreadyArchived(t *testing.T) {
	cases := []struct {
		name     string
		archived *bool
		expected bool
	}{
		{"nil flag", nil, false},
		{"active", utils.NewFalse(), false},
		{"archived", utils.NewTrue(), true},
	}
	for _, tc := range cases {
		client := &models.Client{Archived: tc.archived}
		if got := alreadyArchived(client); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

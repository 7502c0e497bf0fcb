package models

import (
	"testing"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/utils"
)

// NOTE: These tests are intentionally DB-free. They validate the pure
// funnel reads over in-memory records; the mutation-side rules live in
// the workflow package and its tests.

func historyAt(stage KanbanStage, at time.Time) *StageHistory {
	return &StageHistory{Status: stage, CreatedAt: at}
}

func TestTimeInCurrentStage(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	client := &Client{
		Status: KanbanStageOrcamento,
		StageHistory: []*StageHistory{
			historyAt(KanbanStageProspeccao, now.Add(-96*time.Hour)),
			historyAt(KanbanStageOrcamento, now.Add(-48*time.Hour)),
		},
	}

	d, ok := TimeInCurrentStage(client, now)
	if !ok {
		t.Fatal("expected ok for client with history")
	}
	if d != 48*time.Hour {
		t.Fatalf("expected 48h in stage, got %s", d)
	}

	days, ok := DaysInCurrentStage(client, now)
	if !ok || days != 2 {
		t.Fatalf("expected 2 days, got %d (ok=%v)", days, ok)
	}
}

func TestTimeInCurrentStage_UnorderedHistory(t *testing.T) {
	// History rows can arrive out of insertion order from a preload; the
	// latest timestamp wins regardless of position.
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	client := &Client{
		StageHistory: []*StageHistory{
			historyAt(KanbanStagePedido, now.Add(-24*time.Hour)),
			historyAt(KanbanStageProspeccao, now.Add(-240*time.Hour)),
		},
	}
	d, ok := TimeInCurrentStage(client, now)
	if !ok || d != 24*time.Hour {
		t.Fatalf("expected 24h, got %s (ok=%v)", d, ok)
	}
}

func TestTimeInCurrentStage_EmptyHistory(t *testing.T) {
	if _, ok := TimeInCurrentStage(&Client{}, time.Now()); ok {
		t.Fatal("expected ok=false for empty history")
	}
	if _, ok := TimeInCurrentStage(nil, time.Now()); ok {
		t.Fatal("expected ok=false for nil client")
	}
}

func TestIsActionDue(t *testing.T) {
	today := time.Date(2025, 7, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name       string
		nextAction *time.Time
		expected   bool
	}{
		{"no next action", nil, false},
		{"due today (earlier hour)", timePtr(time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)), true},
		{"due today (later hour)", timePtr(time.Date(2025, 7, 10, 23, 0, 0, 0, time.UTC)), true},
		{"overdue", timePtr(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)), true},
		{"tomorrow", timePtr(time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)), false},
	}
	for _, tc := range cases {
		client := &Client{NextActionDate: tc.nextAction}
		if got := IsActionDue(client, today, "UTC"); got != tc.expected {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestTimeline_MergesAndSortsDescending(t *testing.T) {
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	client := &Client{
		StageHistory: []*StageHistory{
			historyAt(KanbanStageProspeccao, base),
			historyAt(KanbanStageOrcamento, base.Add(2*time.Hour)),
		},
		Interactions: []*Interaction{
			{Tipo: InteractionTypeLigacao, Descricao: "primeiro contato", CreatedAt: base.Add(1 * time.Hour)},
			{Tipo: InteractionTypeEmail, Descricao: "proposta enviada", CreatedAt: base.Add(3 * time.Hour)},
		},
	}

	events := Timeline(client)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].CreatedAt.After(events[i-1].CreatedAt) {
			t.Fatalf("timeline not descending at index %d", i)
		}
	}
	if events[0].Kind != TimelineEventInteraction || events[0].Descricao != "proposta enviada" {
		t.Fatalf("expected newest event first, got %+v", events[0])
	}
	if events[3].Kind != TimelineEventStage || events[3].Status != KanbanStageProspeccao {
		t.Fatalf("expected creation stage last, got %+v", events[3])
	}

	// Source logs must be untouched.
	if len(client.StageHistory) != 2 || len(client.Interactions) != 2 {
		t.Fatal("timeline mutated the source logs")
	}
	if client.StageHistory[0].Status != KanbanStageProspeccao {
		t.Fatal("timeline reordered the stage history")
	}
}

func TestBuildFunnelBoard(t *testing.T) {
	clients := []*Client{
		{ID: 1, Status: KanbanStageProspeccao, Archived: utils.NewFalse()},
		{ID: 2, Status: KanbanStageOrcamento, Archived: utils.NewFalse()},
		{ID: 3, Status: KanbanStageOrcamento, Archived: utils.NewTrue()},
		{ID: 4, Status: KanbanStageFaturado, Archived: utils.NewFalse()},
	}

	board := BuildFunnelBoard(clients)
	if len(board) != len(KanbanStages) {
		t.Fatalf("expected %d columns, got %d", len(KanbanStages), len(board))
	}
	for i, stage := range KanbanStages {
		if board[i].Status != stage {
			t.Fatalf("column %d: expected %s, got %s", i, stage, board[i].Status)
		}
	}
	if len(board[0].Clients) != 1 || board[0].Clients[0].ID != 1 {
		t.Fatalf("unexpected Prospeccao column: %+v", board[0].Clients)
	}
	// Archived client 3 must not appear on the board.
	if len(board[1].Clients) != 1 || board[1].Clients[0].ID != 2 {
		t.Fatalf("archived client leaked into the board: %+v", board[1].Clients)
	}
	if len(board[4].Clients) != 1 || board[4].Clients[0].ID != 4 {
		t.Fatalf("unexpected Faturado column: %+v", board[4].Clients)
	}
}

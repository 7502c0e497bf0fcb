package models

import (
	"sort"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/utils"
)

// Pure funnel reads. Nothing here touches the database or mutates the
// client's logs; callers pass records loaded elsewhere.

// TimeInCurrentStage returns how long the client has been in its current
// stage, measured from the last stage-history entry. ok is false when the
// history is empty (defended even though creation always writes an
// entry); the card then displays as new instead of erroring.
func TimeInCurrentStage(client *Client, now time.Time) (time.Duration, bool) {
	if client == nil || len(client.StageHistory) == 0 {
		return 0, false
	}
	last := client.StageHistory[0]
	for _, h := range client.StageHistory[1:] {
		if h.CreatedAt.After(last.CreatedAt) {
			last = h
		}
	}
	return now.Sub(last.CreatedAt), true
}

// DaysInCurrentStage is TimeInCurrentStage in whole days, for the card
// badge ("Hoje" at zero).
func DaysInCurrentStage(client *Client, now time.Time) (int, bool) {
	d, ok := TimeInCurrentStage(client, now)
	if !ok {
		return 0, false
	}
	return int(d.Hours() / 24), true
}

// IsActionDue reports whether the scheduled follow-up is due: the
// next-action date, truncated to a calendar date, is today or earlier.
// Time of day is ignored. Advisory only; nothing is enforced.
func IsActionDue(client *Client, today time.Time, timezone string) bool {
	if client == nil || client.NextActionDate == nil {
		return false
	}
	actionDate, err := utils.ConvertToDate(*client.NextActionDate, timezone)
	if err != nil {
		return false
	}
	todayDate, err := utils.ConvertToDate(today, timezone)
	if err != nil {
		return false
	}
	return !actionDate.After(todayDate)
}

type TimelineEventKind string

const (
	TimelineEventStage       TimelineEventKind = "StageChange"
	TimelineEventInteraction TimelineEventKind = "Interaction"
)

type TimelineEvent struct {
	Kind        TimelineEventKind `json:"kind"`
	Status      KanbanStage       `json:"status,omitempty"`
	Tipo        InteractionType   `json:"tipo,omitempty"`
	Descricao   string            `json:"descricao,omitempty"`
	Responsavel string            `json:"responsavel,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Timeline merges stage changes and interactions into one audit view,
// newest first. The merge is stable and copies into a fresh slice; the
// source logs are left untouched.
func Timeline(client *Client) []TimelineEvent {
	if client == nil {
		return nil
	}
	events := make([]TimelineEvent, 0, len(client.StageHistory)+len(client.Interactions))
	for _, h := range client.StageHistory {
		events = append(events, TimelineEvent{
			Kind:      TimelineEventStage,
			Status:    h.Status,
			CreatedAt: h.CreatedAt,
		})
	}
	for _, i := range client.Interactions {
		events = append(events, TimelineEvent{
			Kind:        TimelineEventInteraction,
			Tipo:        i.Tipo,
			Descricao:   i.Descricao,
			Responsavel: i.Responsavel,
			CreatedAt:   i.CreatedAt,
		})
	}
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].CreatedAt.After(events[b].CreatedAt)
	})
	return events
}

type FunnelColumn struct {
	Status  KanbanStage `json:"status"`
	Clients []*Client   `json:"clients"`
}

// BuildFunnelBoard groups clients into the five columns in funnel order.
// Archived clients never appear on the board; they remain reachable from
// the flat list views.
func BuildFunnelBoard(clients []*Client) []FunnelColumn {
	columns := make([]FunnelColumn, 0, len(KanbanStages))
	for _, stage := range KanbanStages {
		column := FunnelColumn{Status: stage, Clients: []*Client{}}
		for _, c := range clients {
			if c.Archived != nil && *c.Archived {
				continue
			}
			if c.Status == stage {
				column.Clients = append(column.Clients, c)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

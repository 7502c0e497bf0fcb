package models

import "time"

// StageHistory is the append-only stage-change log of a client. Rows are
// only ever inserted: no update or delete path exists in the funnel, and
// the first row is written in the same transaction as the client itself.
type StageHistory struct {
	ID          int         `gorm:"primary_key" json:"id"`
	WorkspaceId string      `gorm:"index;not null" json:"workspace_id"`
	ClientId    int         `gorm:"index;not null" json:"client_id"`
	Status      KanbanStage `gorm:"type:enum('Prospeccao','Orcamento','Pedido','Desenvolvimento','Faturado');not null" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

package models

import "time"

// Interaction is one logged contact with a client (call, WhatsApp, email,
// visit or meeting). Append-only, like StageHistory. Scheduling a
// follow-up is not an interaction and never writes here.
type Interaction struct {
	ID          int             `gorm:"primary_key" json:"id"`
	WorkspaceId string          `gorm:"index;not null" json:"workspace_id"`
	ClientId    int             `gorm:"index;not null" json:"client_id"`
	Tipo        InteractionType `gorm:"type:enum('Ligacao','WhatsApp','Email','Visita','Reuniao');not null" json:"tipo"`
	Descricao   string          `gorm:"type:text;not null" json:"descricao" binding:"required"`
	Responsavel string          `gorm:"size:100" json:"responsavel"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

type NewInteraction struct {
	Tipo      InteractionType `json:"tipo" binding:"required"`
	Descricao string          `json:"descricao" binding:"required"`
}

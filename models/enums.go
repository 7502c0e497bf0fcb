package models

import (
	"encoding/json"
	"errors"
)

type ClientType string

const (
	ClientTypeLead    ClientType = "Lead"
	ClientTypeCliente ClientType = "Cliente"
)

func (t *ClientType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("client type must be string")
	}
	switch str {
	case "Lead":
		*t = ClientTypeLead
	case "Cliente":
		*t = ClientTypeCliente
	default:
		return errors.New("invalid client type")
	}
	return nil
}

// KanbanStage labels the five commercial stages of the sales funnel.
// Transitions are free: the board allows moving a card to any column, in
// either direction, because real sales processes regress (an order can be
// cancelled back to quoting). The audit trail lives in StageHistory, not
// in an ordering graph.
type KanbanStage string

const (
	KanbanStageProspeccao      KanbanStage = "Prospeccao"
	KanbanStageOrcamento       KanbanStage = "Orcamento"
	KanbanStagePedido          KanbanStage = "Pedido"
	KanbanStageDesenvolvimento KanbanStage = "Desenvolvimento"
	KanbanStageFaturado        KanbanStage = "Faturado"
)

// KanbanStages lists the stages in funnel (display) order.
var KanbanStages = []KanbanStage{
	KanbanStageProspeccao,
	KanbanStageOrcamento,
	KanbanStagePedido,
	KanbanStageDesenvolvimento,
	KanbanStageFaturado,
}

func (s *KanbanStage) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("kanban stage must be string")
	}
	switch str {
	case "Prospeccao":
		*s = KanbanStageProspeccao
	case "Orcamento":
		*s = KanbanStageOrcamento
	case "Pedido":
		*s = KanbanStagePedido
	case "Desenvolvimento":
		*s = KanbanStageDesenvolvimento
	case "Faturado":
		*s = KanbanStageFaturado
	default:
		return errors.New("invalid kanban stage")
	}
	return nil
}

type InteractionType string

const (
	InteractionTypeLigacao  InteractionType = "Ligacao"
	InteractionTypeWhatsApp InteractionType = "WhatsApp"
	InteractionTypeEmail    InteractionType = "Email"
	InteractionTypeVisita   InteractionType = "Visita"
	InteractionTypeReuniao  InteractionType = "Reuniao"
)

func (t *InteractionType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("interaction type must be string")
	}
	interactionTypes := map[string]InteractionType{
		"Ligacao":  InteractionTypeLigacao,
		"WhatsApp": InteractionTypeWhatsApp,
		"Email":    InteractionTypeEmail,
		"Visita":   InteractionTypeVisita,
		"Reuniao":  InteractionTypeReuniao,
	}
	v, ok := interactionTypes[str]
	if !ok {
		return errors.New("invalid interaction type")
	}
	*t = v
	return nil
}

type BudgetStatus string

const (
	BudgetStatusEnviado    BudgetStatus = "Enviado"
	BudgetStatusNegociacao BudgetStatus = "Negociacao"
	BudgetStatusAprovado   BudgetStatus = "Aprovado"
	BudgetStatusRecusado   BudgetStatus = "Recusado"
)

func (s *BudgetStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("budget status must be string")
	}
	switch str {
	case "Enviado":
		*s = BudgetStatusEnviado
	case "Negociacao":
		*s = BudgetStatusNegociacao
	case "Aprovado":
		*s = BudgetStatusAprovado
	case "Recusado":
		*s = BudgetStatusRecusado
	default:
		return errors.New("invalid budget status")
	}
	return nil
}

type CommissionStatus string

const (
	CommissionStatusPrevista CommissionStatus = "Prevista"
	CommissionStatusFaturada CommissionStatus = "Faturada"
	CommissionStatusPaga     CommissionStatus = "Paga"
)

func (s *CommissionStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("commission status must be string")
	}
	switch str {
	case "Prevista":
		*s = CommissionStatusPrevista
	case "Faturada":
		*s = CommissionStatusFaturada
	case "Paga":
		*s = CommissionStatusPaga
	default:
		return errors.New("invalid commission status")
	}
	return nil
}

// QuantityUnit is the authoritative quantity input mode of a sales
// document: milheiros of printed units or kilograms of film. The values
// match utils.UnitThousands / utils.UnitKilograms.
type QuantityUnit string

const (
	QuantityUnitMilheiro   QuantityUnit = "MIL"
	QuantityUnitKilogramas QuantityUnit = "KG"
)

func (u *QuantityUnit) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("quantity unit must be string")
	}
	switch str {
	case "MIL":
		*u = QuantityUnitMilheiro
	case "KG":
		*u = QuantityUnitKilogramas
	default:
		return errors.New("invalid quantity unit")
	}
	return nil
}

type UserRole string

const (
	UserRoleAdmin    UserRole = "A"
	UserRoleVendedor UserRole = "V"
)

func (r *UserRole) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("user role must be string")
	}
	switch str {
	case "A":
		*r = UserRoleAdmin
	case "V":
		*r = UserRoleVendedor
	default:
		return errors.New("invalid user role")
	}
	return nil
}

package models

import (
	"context"
	"errors"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
)

// Client is a lead or customer moving through the sales funnel. Funnel
// state is the Status column plus two append-only logs: StageHistory
// (one row per stage change, never mutated) and Interactions. Archived
// clients stay queryable; archival only removes them from the board.
type Client struct {
	ID             int             `gorm:"primary_key" json:"id"`
	WorkspaceId    string          `gorm:"index;not null" json:"workspace_id"`
	Type           ClientType      `gorm:"type:enum('Lead','Cliente');not null;default:'Lead'" json:"type"`
	RazaoSocial    string          `gorm:"size:150;not null" json:"razao_social" binding:"required"`
	NomeFantasia   string          `gorm:"size:150" json:"nome_fantasia"`
	Documento      string          `gorm:"size:20" json:"documento"`
	Contato        string          `gorm:"size:100" json:"contato"`
	Whatsapp       string          `gorm:"size:20" json:"whatsapp"`
	Email          string          `gorm:"size:100" json:"email"`
	Endereco       string          `gorm:"size:255" json:"endereco"`
	Segmento       string          `gorm:"size:100" json:"segmento"`
	Origem         string          `gorm:"size:100" json:"origem"`
	Responsavel    string          `gorm:"size:100" json:"responsavel"`
	Status         KanbanStage     `gorm:"type:enum('Prospeccao','Orcamento','Pedido','Desenvolvimento','Faturado');not null;default:'Prospeccao'" json:"status"`
	IsActive       *bool           `gorm:"not null;default:true" json:"is_active"`
	Archived       *bool           `gorm:"not null;default:false" json:"archived"`
	Obs            string          `gorm:"type:text" json:"obs"`
	NextActionDate *time.Time      `json:"next_action_date"`
	NextActionDesc string          `gorm:"size:255" json:"next_action_desc"`
	StageHistory   []*StageHistory `gorm:"foreignKey:ClientId" json:"stage_history"`
	Interactions   []*Interaction  `gorm:"foreignKey:ClientId" json:"interactions"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewClient struct {
	Type         ClientType  `json:"type"`
	RazaoSocial  string      `json:"razao_social" binding:"required"`
	NomeFantasia string      `json:"nome_fantasia"`
	Documento    string      `json:"documento"`
	Contato      string      `json:"contato"`
	Whatsapp     string      `json:"whatsapp"`
	Email        string      `json:"email"`
	Endereco     string      `json:"endereco"`
	Segmento     string      `json:"segmento"`
	Origem       string      `json:"origem"`
	Responsavel  string      `json:"responsavel"`
	Status       KanbanStage `json:"status"`
	Obs          string      `json:"obs"`
}

/*
caches:
	ClientList:$workspaceId
*/

func (client Client) RemoveAllRedis() error {
	return config.RemoveRedisKey("ClientList:" + client.WorkspaceId)
}

func (input *NewClient) validate(ctx context.Context, workspaceId string, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Client](ctx, workspaceId, id); err != nil {
			return err
		}
	}
	// validate unique company name
	if err := utils.ValidateUnique[Client](ctx, workspaceId, "razao_social", input.RazaoSocial, id); err != nil {
		return err
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email")
	}
	if input.Whatsapp != "" {
		if err := utils.ValidatePhoneNumber(input.Whatsapp, utils.CountryCode); err != nil {
			return errors.New("invalid whatsapp number")
		}
	}
	return nil
}

// CreateClient inserts the client and its first stage-history entry in
// one transaction, so a funnel record never exists without history.
func CreateClient(ctx context.Context, input *NewClient) (*Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	if err := input.validate(ctx, workspaceId, 0); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = KanbanStageProspeccao
	}
	clientType := input.Type
	if clientType == "" {
		clientType = ClientTypeLead
	}

	client := Client{
		WorkspaceId:  workspaceId,
		Type:         clientType,
		RazaoSocial:  input.RazaoSocial,
		NomeFantasia: input.NomeFantasia,
		Documento:    input.Documento,
		Contato:      input.Contato,
		Whatsapp:     input.Whatsapp,
		Email:        input.Email,
		Endereco:     input.Endereco,
		Segmento:     input.Segmento,
		Origem:       input.Origem,
		Responsavel:  input.Responsavel,
		Status:       status,
		IsActive:     utils.NewTrue(),
		Archived:     utils.NewFalse(),
		Obs:          input.Obs,
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Create(&client).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	entry := StageHistory{
		WorkspaceId: workspaceId,
		ClientId:    client.ID,
		Status:      client.Status,
	}
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	client.StageHistory = []*StageHistory{&entry}

	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}

	return &client, nil
}

func UpdateClient(ctx context.Context, id int, input *NewClient) (*Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	if err := input.validate(ctx, workspaceId, id); err != nil {
		return nil, err
	}

	client, err := utils.FetchModel[Client](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	// Status is deliberately not updatable here: stage changes go through
	// workflow.TransitionStage so the history log stays consistent.
	db := config.GetDB()
	err = db.WithContext(ctx).Model(client).Updates(map[string]interface{}{
		"Type":         input.Type,
		"RazaoSocial":  input.RazaoSocial,
		"NomeFantasia": input.NomeFantasia,
		"Documento":    input.Documento,
		"Contato":      input.Contato,
		"Whatsapp":     input.Whatsapp,
		"Email":        input.Email,
		"Endereco":     input.Endereco,
		"Segmento":     input.Segmento,
		"Origem":       input.Origem,
		"Responsavel":  input.Responsavel,
		"Obs":          input.Obs,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}

	return client, nil
}

func GetClient(ctx context.Context, id int) (*Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	return utils.FetchModel[Client](ctx, workspaceId, id, "StageHistory", "Interactions")
}

// ListClients returns every client of the workspace, newest first, with
// both logs preloaded. Results are cached; every mutation invalidates.
func ListClients(ctx context.Context, includeArchived bool) ([]*Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var clients []*Client
	cacheKey := "ClientList:" + workspaceId
	exists, err := config.GetRedisObject(cacheKey, &clients)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).
			Where("workspace_id = ?", workspaceId).
			Preload("StageHistory").
			Preload("Interactions").
			Order("created_at DESC").
			Find(&clients).Error
		if err != nil {
			return nil, err
		}
		if err := config.SetRedisObject(cacheKey, &clients, 0); err != nil {
			return nil, err
		}
	}

	if includeArchived {
		return clients, nil
	}
	filtered := make([]*Client, 0, len(clients))
	for _, c := range clients {
		if c.Archived != nil && *c.Archived {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

// DeleteClient hard-deletes the record and both logs. The funnel itself
// never deletes (archival is the workflow operation); this exists for
// the administrative cleanup the app exposes outside the funnel.
func DeleteClient(ctx context.Context, id int) (*Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	client, err := utils.FetchModel[Client](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Where("client_id = ?", id).Delete(&StageHistory{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Where("client_id = ?", id).Delete(&Interaction{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Delete(client).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}

	return client, nil
}

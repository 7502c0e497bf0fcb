package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/models"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/sirupsen/logrus"
)

// Funnel mutations. Every write here goes through gorm and invalidates
// the workspace's client-list cache; read shapes live in models.

const funnelLockKey = "FunnelTransitionLock"

// stageEntry builds the audit row for one stage move. One call, one
// row, whatever the previous status was.
func stageEntry(workspaceId string, client *models.Client, newStatus models.KanbanStage) models.StageHistory {
	return models.StageHistory{
		WorkspaceId: workspaceId,
		ClientId:    client.ID,
		Status:      newStatus,
	}
}

// alreadyArchived is the idempotency guard: a second archive call is a
// no-op with no write and no audit entry.
func alreadyArchived(client *models.Client) bool {
	return client.Archived != nil && *client.Archived
}

// TransitionStage moves the client to newStatus and appends the matching
// stage-history row in ONE transaction: a status change can never be
// committed without its audit entry. Moving a card onto its own column
// still appends, matching the board's behavior, so "time in stage"
// resets on every drop.
//
// The redis lock is a best-effort serialization of concurrent drags in
// the same workspace; if it cannot be obtained the write proceeds
// (last-write-wins, as everywhere else in this system).
func TransitionStage(ctx context.Context, clientId int, newStatus models.KanbanStage) (*models.Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	logger := config.GetLogger()
	lock, err := utils.WorkspaceLock(ctx, workspaceId, funnelLockKey, "funnelWorkflow.go", "TransitionStage")
	if err != nil {
		logger.WithFields(logrus.Fields{
			"field":        "TransitionStage",
			"workspace_id": workspaceId,
			"client_id":    clientId,
		}).Warn("proceeding without funnel lock: " + err.Error())
		lock = nil
	}
	defer func() {
		if lock != nil {
			_ = lock.Release(ctx)
		}
	}()

	client, err := utils.FetchModel[models.Client](ctx, workspaceId, clientId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Model(client).Update("status", newStatus).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	entry := stageEntry(workspaceId, client, newStatus)
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	client.Status = newStatus
	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return client, nil
}

// LogInteraction appends one interaction to the client's log. The
// responsible defaults to the session user when the input leaves it to
// us; the entry's timestamp is system-assigned.
func LogInteraction(ctx context.Context, clientId int, input *models.NewInteraction) (*models.Interaction, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if strings.TrimSpace(input.Descricao) == "" {
		return nil, errors.New("descricao is required")
	}

	client, err := utils.FetchModel[models.Client](ctx, workspaceId, clientId)
	if err != nil {
		return nil, err
	}

	responsavel, _ := utils.GetUserNameFromContext(ctx)

	interaction := models.Interaction{
		WorkspaceId: workspaceId,
		ClientId:    client.ID,
		Tipo:        input.Tipo,
		Descricao:   input.Descricao,
		Responsavel: responsavel,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&interaction).Error; err != nil {
		return nil, err
	}

	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &interaction, nil
}

// ScheduleNextAction overwrites the two follow-up fields. Deliberately
// NOT an interaction: planning a follow-up leaves no trace in the logs,
// and rescheduling simply replaces the previous plan.
func ScheduleNextAction(ctx context.Context, clientId int, date *time.Time, description string) (*models.Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	client, err := utils.FetchModel[models.Client](ctx, workspaceId, clientId)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(client).Updates(map[string]interface{}{
		"next_action_date": date,
		"next_action_desc": description,
	}).Error
	if err != nil {
		return nil, err
	}

	client.NextActionDate = date
	client.NextActionDesc = description
	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return client, nil
}

// ArchiveClient sets the tombstone flag. Idempotent: archiving an
// archived client changes nothing and appends nothing. The record stays
// queryable in the flat list views.
func ArchiveClient(ctx context.Context, clientId int) (*models.Client, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	client, err := utils.FetchModel[models.Client](ctx, workspaceId, clientId)
	if err != nil {
		return nil, err
	}
	if alreadyArchived(client) {
		return client, nil
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Model(client).Update("archived", true).Error; err != nil {
		return nil, err
	}

	client.Archived = utils.NewTrue()
	if err := client.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return client, nil
}

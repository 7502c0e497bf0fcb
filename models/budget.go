package models

import (
	"context"
	"errors"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
)

// Budget is a quote (orcamento) sent to a client. ValorTotal is always
// Quantidade × ValorUnitario regardless of unit: the unit only says what
// the quantity counts (milheiros or kilograms), the unit price is quoted
// in the same unit.
type Budget struct {
	ID            int             `gorm:"primary_key" json:"id"`
	WorkspaceId   string          `gorm:"index;not null" json:"workspace_id"`
	Numero        string          `gorm:"size:30;not null" json:"numero" binding:"required"`
	ClientId      int             `gorm:"index;not null" json:"client_id" binding:"required"`
	ProductId     *int            `gorm:"index" json:"product_id"`
	ProviderId    *int            `gorm:"index" json:"provider_id"`
	Unidade       QuantityUnit    `gorm:"type:ENUM('MIL','KG');default:'MIL'" json:"unidade"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantidade"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valor_unitario"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valor_total"`
	Status        BudgetStatus    `gorm:"type:ENUM('Enviado','Negociacao','Aprovado','Recusado');default:'Enviado'" json:"status"`
	Validade      *time.Time      `json:"validade"`
	Observacoes   string          `gorm:"type:text" json:"observacoes"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBudget struct {
	Numero        string       `json:"numero" binding:"required"`
	ClientId      int          `json:"client_id" binding:"required"`
	ProductId     *int         `json:"product_id"`
	ProviderId    *int         `json:"provider_id"`
	Unidade       QuantityUnit `json:"unidade"`
	Quantidade    string       `json:"quantidade"`
	ValorUnitario string       `json:"valor_unitario"`
	Status        BudgetStatus `json:"status"`
	Validade      *string      `json:"validade"`
	Observacoes   string       `json:"observacoes"`
}

/*
caches:
	BudgetList:$workspaceId
*/

func (budget Budget) RemoveAllRedis() error {
	return config.RemoveRedisKey("BudgetList:" + budget.WorkspaceId)
}

func (input *NewBudget) validate(ctx context.Context, workspaceId string, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Budget](ctx, workspaceId, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Budget](ctx, workspaceId, "numero", input.Numero, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Client](ctx, workspaceId, input.ClientId); err != nil {
		return err
	}
	if input.ProductId != nil {
		if err := utils.ValidateResourceId[Product](ctx, workspaceId, *input.ProductId); err != nil {
			return err
		}
	}
	if input.ProviderId != nil {
		if err := utils.ValidateResourceId[Provider](ctx, workspaceId, *input.ProviderId); err != nil {
			return err
		}
	}
	return nil
}

func (input *NewBudget) toModel(workspaceId string) (Budget, error) {
	quantidade := utils.ParseDecimalOrZero(input.Quantidade)
	valorUnitario := utils.ParseDecimalOrZero(input.ValorUnitario)

	unidade := input.Unidade
	if unidade == "" {
		unidade = QuantityUnitMilheiro
	}
	status := input.Status
	if status == "" {
		status = BudgetStatusEnviado
	}

	budget := Budget{
		WorkspaceId:   workspaceId,
		Numero:        input.Numero,
		ClientId:      input.ClientId,
		ProductId:     input.ProductId,
		ProviderId:    input.ProviderId,
		Unidade:       unidade,
		Quantidade:    quantidade,
		ValorUnitario: valorUnitario,
		ValorTotal:    quantidade.Mul(valorUnitario),
		Status:        status,
		Observacoes:   input.Observacoes,
	}

	if input.Validade != nil && *input.Validade != "" {
		validade, err := time.Parse("2006-01-02", *input.Validade)
		if err != nil {
			return budget, errors.New("invalid validade date")
		}
		budget.Validade = &validade
	}
	return budget, nil
}

func CreateBudget(ctx context.Context, input *NewBudget) (*Budget, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, 0); err != nil {
		return nil, err
	}

	budget, err := input.toModel(workspaceId)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&budget).Error; err != nil {
		return nil, err
	}
	if err := budget.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &budget, nil
}

func UpdateBudget(ctx context.Context, id int, input *NewBudget) (*Budget, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, id); err != nil {
		return nil, err
	}

	budget, err := utils.FetchModel[Budget](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	updated, err := input.toModel(workspaceId)
	if err != nil {
		return nil, err
	}
	updated.ID = budget.ID
	updated.CreatedAt = budget.CreatedAt

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	if err := updated.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func GetBudget(ctx context.Context, id int) (*Budget, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	return utils.FetchModel[Budget](ctx, workspaceId, id)
}

func ListBudgets(ctx context.Context) ([]*Budget, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var budgets []*Budget
	cacheKey := "BudgetList:" + workspaceId
	exists, err := config.GetRedisObject(cacheKey, &budgets)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).
			Where("workspace_id = ?", workspaceId).
			Order("created_at DESC").
			Find(&budgets).Error
		if err != nil {
			return nil, err
		}
		if err := config.SetRedisObject(cacheKey, &budgets, 0); err != nil {
			return nil, err
		}
	}
	return budgets, nil
}

func DeleteBudget(ctx context.Context, id int) (*Budget, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	budget, err := utils.FetchModel[Budget](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	count, err := utils.ResourceCountWhere[Order](ctx, workspaceId, "budget_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("budget has orders")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(budget).Error; err != nil {
		return nil, err
	}
	if err := budget.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return budget, nil
}

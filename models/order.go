package models

import (
	"context"
	"errors"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
)

// Order is a confirmed sale placed with a represented supplier. The
// dimensional fields (Passo, Largura, Gramatura) are snapshotted from
// the product spec at order time so the stored money amounts stay
// reproducible even if the spec is edited later.
//
// Money derivation: PesoUnitario = passo × largura × gramatura / 1e6 (g),
// the quantity in Unidade resolves to both milheiro count and total kg,
// ValorSemIpi = count × PrecoUnitarioIcms, IPI is charged on top, and
// ValorFinal = ValorSemIpi + ValorIpi.
type Order struct {
	ID                 int              `gorm:"primary_key" json:"id"`
	WorkspaceId        string           `gorm:"index;not null" json:"workspace_id"`
	Numero             string           `gorm:"size:30;not null" json:"numero" binding:"required"`
	BudgetId           *int             `gorm:"index" json:"budget_id"`
	ClientId           int              `gorm:"index;not null" json:"client_id" binding:"required"`
	ProviderId         *int             `gorm:"index" json:"provider_id"`
	ProductId          *int             `gorm:"index" json:"product_id"`
	Unidade            QuantityUnit     `gorm:"type:ENUM('MIL','KG');default:'MIL'" json:"unidade"`
	Quantidade         decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"quantidade"`
	Passo              decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"passo"`
	Largura            decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"largura"`
	Gramatura          decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"gramatura"`
	PesoUnitario       decimal.Decimal  `gorm:"type:decimal(20,8);default:0" json:"peso_unitario"`
	QuantidadeMilheiro decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"quantidade_milheiro"`
	PesoTotalKg        decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"peso_total_kg"`
	PrecoUnitarioIcms  decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"preco_unitario_icms"`
	PercentualIpi      decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"percentual_ipi"`
	PercentualIcms     decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"percentual_icms"`
	ValorSemIpi        decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"valor_sem_ipi"`
	ValorIpi           decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"valor_ipi"`
	ValorFinal         decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"valor_final"`
	ComissaoValor      decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"comissao_valor"`
	ComissaoStatus     CommissionStatus `gorm:"type:ENUM('Prevista','Faturada','Paga');default:'Prevista'" json:"comissao_status"`
	StatusOperacional  string           `gorm:"size:50" json:"status_operacional"`
	DataPedido         *time.Time       `json:"data_pedido"`
	DataEntrega        *time.Time       `json:"data_entrega"`
	DataFaturamento    *time.Time       `json:"data_faturamento"`
	CondicaoPagamento  string           `gorm:"size:100" json:"condicao_pagamento"`
	Transportadora     string           `gorm:"size:100" json:"transportadora"`
	NotaFiscal         string           `gorm:"size:50" json:"nota_fiscal"`
	Observacoes        string           `gorm:"type:text" json:"observacoes"`
	CreatedAt          time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewOrder carries numeric fields as strings so blank form input lands
// as zero. ComissaoValor is rep-entered; when blank and a provider is
// set, it defaults to the provider's standard percent over ValorSemIpi.
type NewOrder struct {
	Numero            string       `json:"numero" binding:"required"`
	BudgetId          *int         `json:"budget_id"`
	ClientId          int          `json:"client_id" binding:"required"`
	ProviderId        *int         `json:"provider_id"`
	ProductId         *int         `json:"product_id"`
	Unidade           QuantityUnit `json:"unidade"`
	Quantidade        string       `json:"quantidade"`
	Passo             string       `json:"passo"`
	Largura           string       `json:"largura"`
	Gramatura         string       `json:"gramatura"`
	PrecoUnitarioIcms string       `json:"preco_unitario_icms"`
	PercentualIpi     *string      `json:"percentual_ipi"`
	PercentualIcms    *string      `json:"percentual_icms"`
	ComissaoValor     string       `json:"comissao_valor"`
	StatusOperacional string       `json:"status_operacional"`
	DataPedido        *string      `json:"data_pedido"`
	DataEntrega       *string      `json:"data_entrega"`
	DataFaturamento   *string      `json:"data_faturamento"`
	CondicaoPagamento string       `json:"condicao_pagamento"`
	Transportadora    string       `json:"transportadora"`
	NotaFiscal        string       `json:"nota_fiscal"`
	Observacoes       string       `json:"observacoes"`
}

// Brazilian tax regime defaults for flexible packaging.
var (
	defaultIpiPercent  = decimal.NewFromFloat(9.75)
	defaultIcmsPercent = decimal.NewFromFloat(12.0)
)

/*
caches:
	OrderList:$workspaceId
*/

func (order Order) RemoveAllRedis() error {
	return config.RemoveRedisKey("OrderList:" + order.WorkspaceId)
}

func (input *NewOrder) validate(ctx context.Context, workspaceId string, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Order](ctx, workspaceId, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Order](ctx, workspaceId, "numero", input.Numero, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Client](ctx, workspaceId, input.ClientId); err != nil {
		return err
	}
	if input.BudgetId != nil {
		if err := utils.ValidateResourceId[Budget](ctx, workspaceId, *input.BudgetId); err != nil {
			return err
		}
	}
	if input.ProviderId != nil {
		if err := utils.ValidateResourceId[Provider](ctx, workspaceId, *input.ProviderId); err != nil {
			return err
		}
	}
	if input.ProductId != nil {
		if err := utils.ValidateResourceId[Product](ctx, workspaceId, *input.ProductId); err != nil {
			return err
		}
	}
	return nil
}

func parseOrderDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return &parsed, nil
}

func (input *NewOrder) toModel(ctx context.Context, workspaceId string) (Order, error) {
	order := Order{
		WorkspaceId:       workspaceId,
		Numero:            input.Numero,
		BudgetId:          input.BudgetId,
		ClientId:          input.ClientId,
		ProviderId:        input.ProviderId,
		ProductId:         input.ProductId,
		Unidade:           input.Unidade,
		Quantidade:        utils.ParseDecimalOrZero(input.Quantidade),
		Passo:             utils.ParseDecimalOrZero(input.Passo),
		Largura:           utils.ParseDecimalOrZero(input.Largura),
		Gramatura:         utils.ParseDecimalOrZero(input.Gramatura),
		PrecoUnitarioIcms: utils.ParseDecimalOrZero(input.PrecoUnitarioIcms),
		PercentualIpi:     defaultIpiPercent,
		PercentualIcms:    defaultIcmsPercent,
		StatusOperacional: input.StatusOperacional,
		CondicaoPagamento: input.CondicaoPagamento,
		Transportadora:    input.Transportadora,
		NotaFiscal:        input.NotaFiscal,
		Observacoes:       input.Observacoes,
	}
	if order.Unidade == "" {
		order.Unidade = QuantityUnitMilheiro
	}
	if input.PercentualIpi != nil {
		order.PercentualIpi = utils.ParseDecimalOrZero(*input.PercentualIpi)
	}
	if input.PercentualIcms != nil {
		order.PercentualIcms = utils.ParseDecimalOrZero(*input.PercentualIcms)
	}

	// dimension snapshot falls back to the product spec
	if input.ProductId != nil && order.Passo.IsZero() && order.Largura.IsZero() && order.Gramatura.IsZero() {
		product, err := utils.FetchModel[Product](ctx, workspaceId, *input.ProductId)
		if err != nil {
			return order, err
		}
		order.Passo = product.Passo
		order.Largura = product.Largura
		order.Gramatura = product.Gramatura
	}

	order.PesoUnitario = utils.ComputeUnitWeight(order.Passo, order.Largura, order.Gramatura)
	order.QuantidadeMilheiro, order.PesoTotalKg = utils.ResolveQuantity(
		string(order.Unidade), order.Quantidade, order.PesoUnitario)
	order.ValorSemIpi, order.ValorIpi, order.ValorFinal = utils.ComputeTotals(
		order.QuantidadeMilheiro, order.PrecoUnitarioIcms, order.PercentualIpi)

	order.ComissaoValor = utils.ParseDecimalOrZero(input.ComissaoValor)
	if order.ComissaoValor.IsZero() && input.ProviderId != nil {
		provider, err := utils.FetchModel[Provider](ctx, workspaceId, *input.ProviderId)
		if err != nil {
			return order, err
		}
		order.ComissaoValor = order.ValorSemIpi.Mul(provider.ComissaoPadrao).Div(decimal.NewFromInt(100))
	}

	var err error
	if order.DataPedido, err = parseOrderDate(input.DataPedido); err != nil {
		return order, err
	}
	if order.DataEntrega, err = parseOrderDate(input.DataEntrega); err != nil {
		return order, err
	}
	if order.DataFaturamento, err = parseOrderDate(input.DataFaturamento); err != nil {
		return order, err
	}
	return order, nil
}

func CreateOrder(ctx context.Context, input *NewOrder) (*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, 0); err != nil {
		return nil, err
	}

	order, err := input.toModel(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, err
	}
	if err := order.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &order, nil
}

func UpdateOrder(ctx context.Context, id int, input *NewOrder) (*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, id); err != nil {
		return nil, err
	}

	order, err := utils.FetchModel[Order](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	updated, err := input.toModel(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	updated.ID = order.ID
	updated.ComissaoStatus = order.ComissaoStatus
	updated.CreatedAt = order.CreatedAt

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	if err := updated.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func GetOrder(ctx context.Context, id int) (*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	return utils.FetchModel[Order](ctx, workspaceId, id)
}

func ListOrders(ctx context.Context) ([]*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var orders []*Order
	cacheKey := "OrderList:" + workspaceId
	exists, err := config.GetRedisObject(cacheKey, &orders)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).
			Where("workspace_id = ?", workspaceId).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			return nil, err
		}
		if err := config.SetRedisObject(cacheKey, &orders, 0); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateCommissionStatus moves a single order's commission along the
// Prevista → Faturada → Paga lifecycle. Any value of the enum is
// accepted in any direction; the report only groups by current status.
func UpdateCommissionStatus(ctx context.Context, id int, status CommissionStatus) (*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	order, err := utils.FetchModel[Order](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(order).
		Update("comissao_status", status).Error
	if err != nil {
		return nil, err
	}
	order.ComissaoStatus = status
	if err := order.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return order, nil
}

func DeleteOrder(ctx context.Context, id int) (*Order, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	order, err := utils.FetchModel[Order](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(order).Error; err != nil {
		return nil, err
	}
	if err := order.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return order, nil
}

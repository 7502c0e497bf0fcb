package reports

import (
	"context"
	"errors"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse aggregates the rep's KPIs over orders: total
// billing and commission, operational-status counts, budget-to-order
// conversion, plus the monthly and per-supplier breakdowns for the
// charts. An optional data_pedido window narrows every order-based
// figure; the budget count stays unfiltered (conversion reads as
// "orders in the window over all budgets").
type DashboardSummaryResponse struct {
	TotalFaturado     decimal.Decimal            `json:"TotalFaturado"`
	TotalComissao     decimal.Decimal            `json:"TotalComissao"`
	TotalPedidos      int                        `json:"TotalPedidos"`
	PedidosAtivos     int                        `json:"PedidosAtivos"`
	PedidosAguardando int                        `json:"PedidosAguardando"`
	PedidosCancelados int                        `json:"PedidosCancelados"`
	TotalOrcamentos   int                        `json:"TotalOrcamentos"`
	TaxaConversao     decimal.Decimal            `json:"TaxaConversao"`
	FaturamentoMensal []*MonthlyTotalResponse    `json:"FaturamentoMensal"`
	VolumeMensalKg    []*MonthlyVolumeResponse   `json:"VolumeMensalKg"`
	PorRepresentada   []*ProviderBillingResponse `json:"PorRepresentada"`
}

type MonthlyTotalResponse struct {
	Mes   string          `json:"Mes"`
	Valor decimal.Decimal `json:"Valor"`
}

type MonthlyVolumeResponse struct {
	Mes string          `json:"Mes"`
	Kg  decimal.Decimal `json:"Kg"`
}

type ProviderBillingResponse struct {
	Nome  string          `json:"Nome"`
	Valor decimal.Decimal `json:"Valor"`
}

var monthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// monthLabel maps a MySQL MONTH() ordinal to its chart label.
func monthLabel(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return monthLabels[mes-1]
}

// conversionRate is orders over budgets as a percentage, 0 when there
// are no budgets to convert.
func conversionRate(orders, budgets int) decimal.Decimal {
	if budgets <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(orders)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(budgets)))
}

// GetDashboardSummary runs the KPI aggregations for the workspace.
// startDate and endDate are YYYY-MM-DD strings; empty means unbounded.
// The kg-volume series sums the stored peso_total_kg, which is the
// unit-weight engine's output snapshotted on every order write.
func GetDashboardSummary(ctx context.Context, startDate, endDate string) (*DashboardSummaryResponse, error) {

	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	params := map[string]interface{}{
		"workspaceId": workspaceId,
		"startDate":   startDate,
		"endDate":     endDate,
	}
	db := config.GetDB()

	kpiSql := `
SELECT
    COALESCE(SUM(valor_final), 0) AS total_faturado,
    COALESCE(SUM(comissao_valor), 0) AS total_comissao,
    COUNT(*) AS total_pedidos,
    COALESCE(SUM(CASE WHEN LOWER(status_operacional) NOT LIKE '%cancelado%' THEN 1 ELSE 0 END), 0) AS ativos,
    COALESCE(SUM(CASE WHEN LOWER(status_operacional) LIKE '%aguardando%' THEN 1 ELSE 0 END), 0) AS aguardando,
    COALESCE(SUM(CASE WHEN LOWER(status_operacional) LIKE '%cancelado%' THEN 1 ELSE 0 END), 0) AS cancelados
FROM
    orders
WHERE
    workspace_id = @workspaceId
    AND (@startDate = '' OR data_pedido >= @startDate)
    AND (@endDate = '' OR data_pedido <= @endDate);
`
	var kpi struct {
		TotalFaturado decimal.Decimal
		TotalComissao decimal.Decimal
		TotalPedidos  int
		Ativos        int
		Aguardando    int
		Cancelados    int
	}
	if err := db.WithContext(ctx).Raw(kpiSql, params).Scan(&kpi).Error; err != nil {
		return nil, err
	}

	var budgetCount int
	budgetSql := `SELECT COUNT(*) FROM budgets WHERE workspace_id = @workspaceId;`
	if err := db.WithContext(ctx).Raw(budgetSql, params).Scan(&budgetCount).Error; err != nil {
		return nil, err
	}

	monthlySql := `
SELECT
    MONTH(data_pedido) AS mes,
    COALESCE(SUM(valor_final), 0) AS valor,
    COALESCE(SUM(peso_total_kg), 0) AS kg
FROM
    orders
WHERE
    workspace_id = @workspaceId
    AND data_pedido IS NOT NULL
    AND (@startDate = '' OR data_pedido >= @startDate)
    AND (@endDate = '' OR data_pedido <= @endDate)
GROUP BY MONTH(data_pedido)
ORDER BY mes;
`
	var monthly []struct {
		Mes   int
		Valor decimal.Decimal
		Kg    decimal.Decimal
	}
	if err := db.WithContext(ctx).Raw(monthlySql, params).Scan(&monthly).Error; err != nil {
		return nil, err
	}

	providerSql := `
SELECT
    COALESCE(NULLIF(providers.nome_fantasia, ''), 'Outros') AS nome,
    COALESCE(SUM(orders.valor_final), 0) AS valor
FROM
    orders
        LEFT JOIN
    providers ON providers.id = orders.provider_id
WHERE
    orders.workspace_id = @workspaceId
    AND (@startDate = '' OR orders.data_pedido >= @startDate)
    AND (@endDate = '' OR orders.data_pedido <= @endDate)
GROUP BY nome
ORDER BY valor DESC;
`
	var byProvider []*ProviderBillingResponse
	if err := db.WithContext(ctx).Raw(providerSql, params).Scan(&byProvider).Error; err != nil {
		return nil, err
	}

	summary := &DashboardSummaryResponse{
		TotalFaturado:     kpi.TotalFaturado,
		TotalComissao:     kpi.TotalComissao,
		TotalPedidos:      kpi.TotalPedidos,
		PedidosAtivos:     kpi.Ativos,
		PedidosAguardando: kpi.Aguardando,
		PedidosCancelados: kpi.Cancelados,
		TotalOrcamentos:   budgetCount,
		TaxaConversao:     conversionRate(kpi.TotalPedidos, budgetCount),
		FaturamentoMensal: []*MonthlyTotalResponse{},
		VolumeMensalKg:    []*MonthlyVolumeResponse{},
		PorRepresentada:   byProvider,
	}
	for _, row := range monthly {
		summary.FaturamentoMensal = append(summary.FaturamentoMensal, &MonthlyTotalResponse{
			Mes:   monthLabel(row.Mes),
			Valor: row.Valor,
		})
		summary.VolumeMensalKg = append(summary.VolumeMensalKg, &MonthlyVolumeResponse{
			Mes: monthLabel(row.Mes),
			Kg:  row.Kg,
		})
	}
	return summary, nil
}

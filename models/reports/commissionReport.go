package reports

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/models"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// CommissionSummaryResponse totals the rep's commissions by lifecycle
// status. Pendente covers everything not yet paid (Prevista + Faturada).
type CommissionSummaryResponse struct {
	Total    decimal.Decimal `json:"Total"`
	Paga     decimal.Decimal `json:"Paga"`
	Pendente decimal.Decimal `json:"Pendente"`
}

type CommissionRowResponse struct {
	OrderID        int             `json:"OrderId"`
	Numero         string          `json:"Numero"`
	ClientName     *string         `json:"ClientName,omitempty"`
	ProviderName   *string         `json:"ProviderName,omitempty"`
	ValorFinal     decimal.Decimal `json:"ValorFinal"`
	ComissaoValor  decimal.Decimal `json:"ComissaoValor"`
	ComissaoStatus string          `json:"ComissaoStatus"`
}

func GetCommissionSummary(ctx context.Context) (*CommissionSummaryResponse, error) {

	sql := `
SELECT
    COALESCE(SUM(comissao_valor), 0) AS total,
    COALESCE(SUM(CASE WHEN comissao_status = @paidStatus THEN comissao_valor ELSE 0 END), 0) AS paga
FROM
    orders
WHERE
    workspace_id = @workspaceId;
`

	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var row struct {
		Total decimal.Decimal
		Paga  decimal.Decimal
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"workspaceId": workspaceId,
		"paidStatus":  models.CommissionStatusPaga,
	}).Scan(&row).Error; err != nil {
		return nil, err
	}

	return &CommissionSummaryResponse{
		Total:    row.Total,
		Paga:     row.Paga,
		Pendente: row.Total.Sub(row.Paga),
	}, nil
}

func getCommissionRows(ctx context.Context, workspaceId string) ([]*CommissionRowResponse, error) {

	sql := `
SELECT
    orders.id AS order_id,
    orders.numero,
    clients.razao_social AS client_name,
    providers.razao_social AS provider_name,
    orders.valor_final,
    orders.comissao_valor,
    orders.comissao_status
FROM
    orders
        LEFT JOIN
    clients ON clients.id = orders.client_id
        LEFT JOIN
    providers ON providers.id = orders.provider_id
WHERE
    orders.workspace_id = @workspaceId
ORDER BY orders.created_at DESC;
`

	var records []*CommissionRowResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, map[string]interface{}{
		"workspaceId": workspaceId,
	}).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ExportCommissionsXLSX streams the commission rows of the workspace as
// an xlsx workbook. The caller sets the response headers.
func ExportCommissionsXLSX(ctx context.Context, w io.Writer) error {

	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return errors.New("workspace id is required")
	}
	records, err := getCommissionRows(ctx, workspaceId)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheetName := "Comissoes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	// Add headers
	f.SetCellValue(sheetName, "A1", "Pedido")
	f.SetCellValue(sheetName, "B1", "Cliente")
	f.SetCellValue(sheetName, "C1", "Representada")
	f.SetCellValue(sheetName, "D1", "ValorFinal")
	f.SetCellValue(sheetName, "E1", "Comissao")
	f.SetCellValue(sheetName, "F1", "Status")

	// Add data
	for i, d := range records {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), d.Numero)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), utils.DereferencePtr(d.ClientName, ""))
		f.SetCellValue(sheetName, "C"+fmt.Sprint(i+2), utils.DereferencePtr(d.ProviderName, ""))
		f.SetCellValue(sheetName, "D"+fmt.Sprint(i+2), d.ValorFinal.InexactFloat64())
		f.SetCellValue(sheetName, "E"+fmt.Sprint(i+2), d.ComissaoValor.InexactFloat64())
		f.SetCellValue(sheetName, "F"+fmt.Sprint(i+2), d.ComissaoStatus)
	}

	return f.Write(w)
}

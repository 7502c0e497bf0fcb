package models

import (
	"context"
	"errors"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
)

// Product is a technical specification (ficha tecnica) of a packaging
// item. Passo, Largura and Gramatura drive the unit-weight conversion;
// they stay zero for items quoted without dimensional data.
type Product struct {
	ID                    int             `gorm:"primary_key" json:"id"`
	WorkspaceId           string          `gorm:"index;not null" json:"workspace_id"`
	Sku                   string          `gorm:"size:50" json:"sku"`
	Barcode               string          `gorm:"size:50" json:"barcode"`
	Nome                  string          `gorm:"size:150;not null" json:"nome" binding:"required"`
	TipoEmbalagem         string          `gorm:"size:100" json:"tipo_embalagem"`
	Material              string          `gorm:"size:100" json:"material"`
	Medidas               string          `gorm:"size:100" json:"medidas"`
	Passo                 decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"passo"`
	Largura               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"largura"`
	Gramatura             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"gramatura"`
	Espessura             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"espessura"`
	Personalizado         bool            `gorm:"default:false" json:"personalizado"`
	ImpressaoTipo         string          `gorm:"size:100" json:"impressao_tipo"`
	Cores                 []string        `gorm:"serializer:json;type:json" json:"cores"`
	SentidoDesbobinamento string          `gorm:"size:50" json:"sentido_desbobinamento"`
	DiametroMaximoBobina  string          `gorm:"size:50" json:"diametro_maximo_bobina"`
	ProviderId            *int            `gorm:"index" json:"provider_id"`
	ClientId              *int            `gorm:"index" json:"client_id"`
	ObservacoesTecnicas   string          `gorm:"type:text" json:"observacoes_tecnicas"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewProduct takes the dimensional fields as strings: the specs arrive
// from supplier datasheets where blank and malformed values are common,
// and both must land as zero rather than reject the record.
type NewProduct struct {
	Sku                   string   `json:"sku"`
	Barcode               string   `json:"barcode"`
	Nome                  string   `json:"nome" binding:"required"`
	TipoEmbalagem         string   `json:"tipo_embalagem"`
	Material              string   `json:"material"`
	Medidas               string   `json:"medidas"`
	Passo                 string   `json:"passo"`
	Largura               string   `json:"largura"`
	Gramatura             string   `json:"gramatura"`
	Espessura             string   `json:"espessura"`
	Personalizado         bool     `json:"personalizado"`
	ImpressaoTipo         string   `json:"impressao_tipo"`
	Cores                 []string `json:"cores"`
	SentidoDesbobinamento string   `json:"sentido_desbobinamento"`
	DiametroMaximoBobina  string   `json:"diametro_maximo_bobina"`
	ProviderId            *int     `json:"provider_id"`
	ClientId              *int     `json:"client_id"`
	ObservacoesTecnicas   string   `json:"observacoes_tecnicas"`
}

// UnitWeight is the theoretical weight of one unit in grams.
func (product Product) UnitWeight() decimal.Decimal {
	return utils.ComputeUnitWeight(product.Passo, product.Largura, product.Gramatura)
}

// Yield is units per kilogram of material.
func (product Product) Yield() decimal.Decimal {
	return utils.ComputeYield(product.UnitWeight())
}

// IsRollFed reports whether the packaging type is sold by weight.
func (product Product) IsRollFed() bool {
	return utils.IsRollFed(product.TipoEmbalagem)
}

// DefaultUnit is the quantity unit a quote for this product starts in.
func (product Product) DefaultUnit() QuantityUnit {
	return QuantityUnit(utils.NaturalQuantityUnit(product.TipoEmbalagem))
}

/*
caches:
	ProductList:$workspaceId
*/

func (product Product) RemoveAllRedis() error {
	return config.RemoveRedisKey("ProductList:" + product.WorkspaceId)
}

func (input *NewProduct) validate(ctx context.Context, workspaceId string, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Product](ctx, workspaceId, id); err != nil {
			return err
		}
	}
	if input.Sku != "" {
		if err := utils.ValidateUnique[Product](ctx, workspaceId, "sku", input.Sku, id); err != nil {
			return err
		}
	}
	if input.ProviderId != nil {
		if err := utils.ValidateResourceId[Provider](ctx, workspaceId, *input.ProviderId); err != nil {
			return err
		}
	}
	if input.ClientId != nil {
		if err := utils.ValidateResourceId[Client](ctx, workspaceId, *input.ClientId); err != nil {
			return err
		}
	}
	return nil
}

func (input *NewProduct) toModel(workspaceId string) Product {
	return Product{
		WorkspaceId:           workspaceId,
		Sku:                   input.Sku,
		Barcode:               input.Barcode,
		Nome:                  input.Nome,
		TipoEmbalagem:         input.TipoEmbalagem,
		Material:              input.Material,
		Medidas:               input.Medidas,
		Passo:                 utils.ParseDecimalOrZero(input.Passo),
		Largura:               utils.ParseDecimalOrZero(input.Largura),
		Gramatura:             utils.ParseDecimalOrZero(input.Gramatura),
		Espessura:             utils.ParseDecimalOrZero(input.Espessura),
		Personalizado:         input.Personalizado,
		ImpressaoTipo:         input.ImpressaoTipo,
		Cores:                 utils.UniqueSlice(input.Cores),
		SentidoDesbobinamento: input.SentidoDesbobinamento,
		DiametroMaximoBobina:  input.DiametroMaximoBobina,
		ProviderId:            input.ProviderId,
		ClientId:              input.ClientId,
		ObservacoesTecnicas:   input.ObservacoesTecnicas,
	}
}

func CreateProduct(ctx context.Context, input *NewProduct) (*Product, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, 0); err != nil {
		return nil, err
	}

	product := input.toModel(workspaceId)
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	if err := product.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(ctx context.Context, id int, input *NewProduct) (*Product, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, id); err != nil {
		return nil, err
	}

	product, err := utils.FetchModel[Product](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	updated := input.toModel(workspaceId)
	updated.ID = product.ID
	updated.CreatedAt = product.CreatedAt

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	if err := updated.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func GetProduct(ctx context.Context, id int) (*Product, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	return utils.FetchModel[Product](ctx, workspaceId, id)
}

func ListProducts(ctx context.Context) ([]*Product, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var products []*Product
	cacheKey := "ProductList:" + workspaceId
	exists, err := config.GetRedisObject(cacheKey, &products)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).
			Where("workspace_id = ?", workspaceId).
			Order("created_at DESC").
			Find(&products).Error
		if err != nil {
			return nil, err
		}
		if err := config.SetRedisObject(cacheKey, &products, 0); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func DeleteProduct(ctx context.Context, id int) (*Product, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	product, err := utils.FetchModel[Product](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(product).Error; err != nil {
		return nil, err
	}
	if err := product.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return product, nil
}

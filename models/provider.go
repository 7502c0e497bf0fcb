package models

import (
	"context"
	"errors"
	"time"

	"github.com/Andersonriberpro/ribersolucoespack/config"
	"github.com/Andersonriberpro/ribersolucoespack/utils"
	"github.com/shopspring/decimal"
)

// ContactInfo is one named contact block of a represented supplier
// (commercial, financial, quality, management).
type ContactInfo struct {
	Nome     string `gorm:"size:100" json:"nome"`
	Email    string `gorm:"size:100" json:"email"`
	Telefone string `gorm:"size:20" json:"telefone"`
}

// Provider is a "representada": a packaging manufacturer the sales rep
// represents. ComissaoPadrao is the default commission percent applied
// to orders placed with this supplier.
type Provider struct {
	ID                  int             `gorm:"primary_key" json:"id"`
	WorkspaceId         string          `gorm:"index;not null" json:"workspace_id"`
	RazaoSocial         string          `gorm:"size:150;not null" json:"razao_social" binding:"required"`
	NomeFantasia        string          `gorm:"size:150" json:"nome_fantasia"`
	Cnpj                string          `gorm:"size:20" json:"cnpj"`
	LogoUrl             string          `gorm:"size:500" json:"logo_url"`
	ContatoComercial    ContactInfo     `gorm:"embedded;embeddedPrefix:contato_comercial_" json:"contato_comercial"`
	ContatoFinanceiro   ContactInfo     `gorm:"embedded;embeddedPrefix:contato_financeiro_" json:"contato_financeiro"`
	ContatoQualidade    ContactInfo     `gorm:"embedded;embeddedPrefix:contato_qualidade_" json:"contato_qualidade"`
	ContatoGerencia     ContactInfo     `gorm:"embedded;embeddedPrefix:contato_gerencia_" json:"contato_gerencia"`
	Whatsapp            string          `gorm:"size:20" json:"whatsapp"`
	Email               string          `gorm:"size:100" json:"email"`
	Site                string          `gorm:"size:255" json:"site"`
	Instagram           string          `gorm:"size:255" json:"instagram"`
	Linkedin            string          `gorm:"size:255" json:"linkedin"`
	Endereco            string          `gorm:"size:255" json:"endereco"`
	Cep                 string          `gorm:"size:10" json:"cep"`
	Cidade              string          `gorm:"size:100" json:"cidade"`
	Estado              string          `gorm:"size:2" json:"estado"`
	LinhaProdutos       []string        `gorm:"serializer:json;type:json" json:"linha_produtos"`
	PrazoProducao       string          `gorm:"size:100" json:"prazo_producao"`
	CondicoesComerciais string          `gorm:"type:text" json:"condicoes_comerciais"`
	ComissaoPadrao      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"comissao_padrao"`
	Observacoes         string          `gorm:"type:text" json:"observacoes"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewProvider struct {
	RazaoSocial         string          `json:"razao_social" binding:"required"`
	NomeFantasia        string          `json:"nome_fantasia"`
	Cnpj                string          `json:"cnpj"`
	LogoUrl             string          `json:"logo_url"`
	ContatoComercial    ContactInfo     `json:"contato_comercial"`
	ContatoFinanceiro   ContactInfo     `json:"contato_financeiro"`
	ContatoQualidade    ContactInfo     `json:"contato_qualidade"`
	ContatoGerencia     ContactInfo     `json:"contato_gerencia"`
	Whatsapp            string          `json:"whatsapp"`
	Email               string          `json:"email"`
	Site                string          `json:"site"`
	Instagram           string          `json:"instagram"`
	Linkedin            string          `json:"linkedin"`
	Endereco            string          `json:"endereco"`
	Cep                 string          `json:"cep"`
	Cidade              string          `json:"cidade"`
	Estado              string          `json:"estado"`
	LinhaProdutos       []string        `json:"linha_produtos"`
	PrazoProducao       string          `json:"prazo_producao"`
	CondicoesComerciais string          `json:"condicoes_comerciais"`
	ComissaoPadrao      decimal.Decimal `json:"comissao_padrao"`
	Observacoes         string          `json:"observacoes"`
}

/*
caches:
	ProviderList:$workspaceId
*/

func (provider Provider) RemoveAllRedis() error {
	return config.RemoveRedisKey("ProviderList:" + provider.WorkspaceId)
}

func (input *NewProvider) validate(ctx context.Context, workspaceId string, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Provider](ctx, workspaceId, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateUnique[Provider](ctx, workspaceId, "razao_social", input.RazaoSocial, id); err != nil {
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

func (input *NewProvider) toModel(workspaceId string) Provider {
	return Provider{
		WorkspaceId:         workspaceId,
		RazaoSocial:         input.RazaoSocial,
		NomeFantasia:        input.NomeFantasia,
		Cnpj:                input.Cnpj,
		LogoUrl:             input.LogoUrl,
		ContatoComercial:    input.ContatoComercial,
		ContatoFinanceiro:   input.ContatoFinanceiro,
		ContatoQualidade:    input.ContatoQualidade,
		ContatoGerencia:     input.ContatoGerencia,
		Whatsapp:            input.Whatsapp,
		Email:               input.Email,
		Site:                input.Site,
		Instagram:           input.Instagram,
		Linkedin:            input.Linkedin,
		Endereco:            input.Endereco,
		Cep:                 input.Cep,
		Cidade:              input.Cidade,
		Estado:              input.Estado,
		LinhaProdutos:       utils.UniqueSlice(input.LinhaProdutos),
		PrazoProducao:       input.PrazoProducao,
		CondicoesComerciais: input.CondicoesComerciais,
		ComissaoPadrao:      input.ComissaoPadrao,
		Observacoes:         input.Observacoes,
	}
}

func CreateProvider(ctx context.Context, input *NewProvider) (*Provider, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, 0); err != nil {
		return nil, err
	}

	provider := input.toModel(workspaceId)
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&provider).Error; err != nil {
		return nil, err
	}
	if err := provider.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &provider, nil
}

func UpdateProvider(ctx context.Context, id int, input *NewProvider) (*Provider, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	if err := input.validate(ctx, workspaceId, id); err != nil {
		return nil, err
	}

	provider, err := utils.FetchModel[Provider](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	updated := input.toModel(workspaceId)
	updated.ID = provider.ID
	updated.CreatedAt = provider.CreatedAt

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, err
	}
	if err := updated.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func GetProvider(ctx context.Context, id int) (*Provider, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}
	return utils.FetchModel[Provider](ctx, workspaceId, id)
}

func ListProviders(ctx context.Context) ([]*Provider, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	var providers []*Provider
	cacheKey := "ProviderList:" + workspaceId
	exists, err := config.GetRedisObject(cacheKey, &providers)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		err = db.WithContext(ctx).
			Where("workspace_id = ?", workspaceId).
			Order("created_at DESC").
			Find(&providers).Error
		if err != nil {
			return nil, err
		}
		if err := config.SetRedisObject(cacheKey, &providers, 0); err != nil {
			return nil, err
		}
	}
	return providers, nil
}

func DeleteProvider(ctx context.Context, id int) (*Provider, error) {
	workspaceId, ok := utils.GetWorkspaceIdFromContext(ctx)
	if !ok || workspaceId == "" {
		return nil, errors.New("workspace id is required")
	}

	provider, err := utils.FetchModel[Provider](ctx, workspaceId, id)
	if err != nil {
		return nil, err
	}

	// don't orphan product specifications
	count, err := utils.ResourceCountWhere[Product](ctx, workspaceId, "provider_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("provider has product specifications")
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(provider).Error; err != nil {
		return nil, err
	}
	if err := provider.RemoveAllRedis(); err != nil {
		return nil, err
	}
	return provider, nil
}

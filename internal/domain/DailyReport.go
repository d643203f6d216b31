package domain

import (
	"time"
)

// DailyReport é o documento normalizado de desempenho diário de um usuário.
// Cada documento cobre um par (data, usuário) e carrega os registros por
// escopo (campanhas, conjuntos, anúncios) mais os registros de clientes.
type DailyReport struct {
	ID        string                      `json:"id"`
	UserID    string                      `json:"user_id"`
	Date      string                      `json:"date"`
	Campaigns map[string]ScopeAssetRecord `json:"campaigns"`
	AdSets    map[string]ScopeAssetRecord `json:"adsets"`
	Ads       map[string]ScopeAssetRecord `json:"ads"`
	Customers map[string]CustomerRecord   `json:"customers"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// ScopeAssetRecord é o registro diário de um ativo dentro de um escopo
type ScopeAssetRecord struct {
	Details AssetDetails  `json:"details"`
	Stats   AssetDayStats `json:"stats"`
}

// AssetDetails identifica o ativo dentro do documento diário
type AssetDetails struct {
	AssetID   string `json:"asset_id"`
	AssetName string `json:"asset_name"`
}

// AssetDayStats são as métricas de plataforma de um ativo em um dia
type AssetDayStats struct {
	Spend   float64 `json:"spend"`
	Leads   int     `json:"leads"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Clicks  int     `json:"clicks"`
}

// CustomerRecord agrega as associações de anúncio e os snapshots de
// estatísticas de um cliente dentro do documento diário
type CustomerRecord struct {
	Ads   map[string]CustomerAd    `json:"ads"`
	Stats map[string]CustomerStats `json:"stats"`
}

// CustomerAd é uma associação cliente -> anúncio, com a hierarquia completa
// de ids para permitir a re-chaveação por escopo
type CustomerAd struct {
	Email        string `json:"email"`
	Timestamp    int64  `json:"timestamp"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdSetID      string `json:"adset_id"`
	AdSetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`
}

// CustomerStats é o snapshot de receita/vendas atribuídas a um cliente
type CustomerStats struct {
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

// ScopeRecords retorna os registros do escopo pedido dentro do documento
func (r *DailyReport) ScopeRecords(scope Scope) map[string]ScopeAssetRecord {
	switch scope {
	case ScopeCampaigns:
		return r.Campaigns
	case ScopeAdSets:
		return r.AdSets
	case ScopeAds:
		return r.Ads
	}
	return nil
}

// AssetIDForScope resolve o id do ativo da associação conforme o escopo
func (a CustomerAd) AssetIDForScope(scope Scope) string {
	switch scope {
	case ScopeCampaigns:
		return a.CampaignID
	case ScopeAdSets:
		return a.AdSetID
	case ScopeAds:
		return a.AdID
	}
	return ""
}

// AssetNameForScope resolve o nome do ativo da associação conforme o escopo
func (a CustomerAd) AssetNameForScope(scope Scope) string {
	switch scope {
	case ScopeCampaigns:
		return a.CampaignName
	case ScopeAdSets:
		return a.AdSetName
	case ScopeAds:
		return a.AdName
	}
	return ""
}

package aggregating

import (
	"strings"

	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/pkg/utils"
)

// StatsAggregator funde os documentos diários de um intervalo de datas em um
// mapeamento plano de asset_id -> métricas unificadas para um escopo
type StatsAggregator interface {
	MergeStats(reports []*domain.DailyReport, scope domain.Scope) map[string]*domain.AssetStats
}

type Service struct{}

// NewService cria uma nova instância do agregador de estatísticas
func NewService() StatsAggregator {
	return &Service{}
}

// Acumulador das somas diárias dos registros por escopo de um ativo
type assetAggregator struct {
	assetID   string
	assetName string
	spend     float64
	leads     int
	sales     int
	revenue   float64
	clicks    int
}

// Acumulador das somas atribuídas a um cliente (chaveado por email)
type customerAggregator struct {
	revenue float64
	sales   int
}

// Somas atribuídas a clientes já re-chaveadas pelo ativo do escopo
type customerAssetAggregator struct {
	assetID   string
	assetName string
	revenue   float64
	sales     int
}

// MergeStats reconcilia as somas dos registros por escopo com as somas
// atribuídas a clientes em um único registro por ativo. A fusão é por união
// de chaves: ativos sem atividade de cliente mantêm as métricas de razão
// zeradas; clientes sem associação de anúncio resolvida ficam fora da visão
// por ativo. O resultado é recalculado a cada avaliação, sem estado.
func (s *Service) MergeStats(reports []*domain.DailyReport, scope domain.Scope) map[string]*domain.AssetStats {
	assets := s.sumScopeRecords(reports, scope)
	customerAssets := s.sumCustomerRecords(reports, scope)

	// União de chaves entre as duas visões
	merged := make(map[string]*domain.AssetStats)

	for assetID, asset := range assets {
		merged[assetID] = &domain.AssetStats{
			AssetID:   asset.assetID,
			AssetName: asset.assetName,
			Spend:     asset.spend,
			Leads:     asset.leads,
			Sales:     asset.sales,
			Revenue:   asset.revenue,
			Clicks:    asset.clicks,
		}
	}

	for assetID, customer := range customerAssets {
		stats, ok := merged[assetID]
		if !ok {
			stats = &domain.AssetStats{}
			merged[assetID] = stats
		}

		stats.CustomerRevenue = customer.revenue
		stats.CustomerSales = customer.sales

		// Fallback para os campos derivados do escopo quando o ativo não
		// tem registro canônico no intervalo
		if stats.AssetID == "" {
			stats.AssetID = customer.assetID
		}
		if stats.AssetName == "" {
			stats.AssetName = customer.assetName
		}
	}

	for _, stats := range merged {
		stats.ROAS = utils.NumOrZero(stats.CustomerRevenue / stats.Spend)
	}

	return merged
}

// sumScopeRecords achata os registros diários do escopo de todos os
// documentos e soma as métricas por ativo. A identidade do ativo vem do
// primeiro registro encontrado (documentos são consistentes entre dias).
func (s *Service) sumScopeRecords(reports []*domain.DailyReport, scope domain.Scope) map[string]*assetAggregator {
	assets := make(map[string]*assetAggregator)

	for _, report := range reports {
		for key, record := range report.ScopeRecords(scope) {
			assetID := record.Details.AssetID
			if assetID == "" {
				assetID = key
			}

			aggregator, ok := assets[assetID]
			if !ok {
				aggregator = &assetAggregator{
					assetID:   assetID,
					assetName: record.Details.AssetName,
				}
				assets[assetID] = aggregator
			}

			aggregator.spend += record.Stats.Spend
			aggregator.leads += record.Stats.Leads
			aggregator.sales += record.Stats.Sales
			aggregator.revenue += record.Stats.Revenue
			aggregator.clicks += record.Stats.Clicks
		}
	}

	return assets
}

// sumCustomerRecords resolve, por email normalizado, a associação de anúncio
// mais recente por timestamp, soma receita/vendas por cliente no intervalo e
// re-chaveia as somas pelo ativo do escopo derivado da associação
func (s *Service) sumCustomerRecords(reports []*domain.DailyReport, scope domain.Scope) map[string]*customerAssetAggregator {
	latestAds := make(map[string]domain.CustomerAd)
	customers := make(map[string]*customerAggregator)

	for _, report := range reports {
		for _, customer := range report.Customers {
			for _, ad := range customer.Ads {
				email := strings.ToLower(ad.Email)
				if email == "" {
					continue
				}

				latest, ok := latestAds[email]
				if !ok || ad.Timestamp >= latest.Timestamp {
					latestAds[email] = ad
				}
			}

			for email, stats := range customer.Stats {
				email = strings.ToLower(email)
				if email == "" {
					continue
				}

				aggregator, ok := customers[email]
				if !ok {
					aggregator = &customerAggregator{}
					customers[email] = aggregator
				}

				aggregator.revenue += stats.Revenue
				aggregator.sales += stats.Sales
			}
		}
	}

	// Re-chaveia por ativo, somando clientes que compartilham o mesmo ativo.
	// Clientes sem associação resolvida não entram na visão por ativo.
	customerAssets := make(map[string]*customerAssetAggregator)

	for email, customer := range customers {
		ad, ok := latestAds[email]
		if !ok {
			continue
		}

		assetID := ad.AssetIDForScope(scope)
		if assetID == "" {
			continue
		}

		aggregator, ok := customerAssets[assetID]
		if !ok {
			aggregator = &customerAssetAggregator{
				assetID:   assetID,
				assetName: ad.AssetNameForScope(scope),
			}
			customerAssets[assetID] = aggregator
		}

		aggregator.revenue += customer.revenue
		aggregator.sales += customer.sales
	}

	return customerAssets
}

package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-automation-api/internal/domain"
)

func TestMergeStats(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		reports  []*domain.DailyReport
		scope    domain.Scope
		validate func(t *testing.T, merged map[string]*domain.AssetStats)
	}{
		{
			name:  "Sem relatórios - resultado vazio",
			scope: domain.ScopeCampaigns,
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Empty(t, merged)
			},
		},
		{
			name:  "Soma de múltiplos dias para o mesmo ativo",
			scope: domain.ScopeCampaigns,
			reports: []*domain.DailyReport{
				{
					Campaigns: map[string]domain.ScopeAssetRecord{
						"C1": {
							Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
							Stats:   domain.AssetDayStats{Spend: 40, Leads: 2, Sales: 1, Revenue: 90, Clicks: 10},
						},
					},
				},
				{
					Campaigns: map[string]domain.ScopeAssetRecord{
						"C1": {
							Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
							Stats:   domain.AssetDayStats{Spend: 60, Leads: 3, Sales: 2, Revenue: 110, Clicks: 15},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Len(t, merged, 1)
				assert.Equal(t, "Campanha A", merged["C1"].AssetName)
				assert.Equal(t, 100.0, merged["C1"].Spend)
				assert.Equal(t, 5, merged["C1"].Leads)
				assert.Equal(t, 3, merged["C1"].Sales)
				assert.Equal(t, 200.0, merged["C1"].Revenue)
				assert.Equal(t, 25, merged["C1"].Clicks)
				// Sem clientes, receita atribuída é zero e o ROAS colapsa para zero
				assert.Equal(t, 0.0, merged["C1"].ROAS)
			},
		},
		{
			name:  "Receita de clientes re-chaveada pela campanha e ROAS derivado",
			scope: domain.ScopeCampaigns,
			reports: []*domain.DailyReport{
				{
					Campaigns: map[string]domain.ScopeAssetRecord{
						"C1": {
							Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
							Stats:   domain.AssetDayStats{Spend: 100},
						},
					},
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Ads: map[string]domain.CustomerAd{
								"ad-1": {
									Email:      "Maria@Example.com",
									Timestamp:  100,
									CampaignID: "C1",
									AdSetID:    "S1",
									AdID:       "A1",
								},
							},
							Stats: map[string]domain.CustomerStats{
								"maria@example.com": {Revenue: 300, Sales: 2},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Len(t, merged, 1)
				assert.Equal(t, 300.0, merged["C1"].CustomerRevenue)
				assert.Equal(t, 2, merged["C1"].CustomerSales)
				assert.Equal(t, 3.0, merged["C1"].ROAS)
			},
		},
		{
			name:  "União de chaves - cliente com campanha sem registro canônico",
			scope: domain.ScopeCampaigns,
			reports: []*domain.DailyReport{
				{
					Campaigns: map[string]domain.ScopeAssetRecord{
						"C1": {
							Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
							Stats:   domain.AssetDayStats{Spend: 50},
						},
					},
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Ads: map[string]domain.CustomerAd{
								"ad-1": {
									Email:        "joao@example.com",
									Timestamp:    10,
									CampaignID:   "C2",
									CampaignName: "Campanha B",
								},
							},
							Stats: map[string]domain.CustomerStats{
								"joao@example.com": {Revenue: 150, Sales: 1},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Len(t, merged, 2)

				// C1 só tem métricas de plataforma
				assert.Equal(t, 50.0, merged["C1"].Spend)
				assert.Equal(t, 0.0, merged["C1"].CustomerRevenue)

				// C2 só existe pela visão de clientes, com identidade derivada
				// da associação e razão colapsada (divisão por gasto zero)
				assert.Equal(t, "C2", merged["C2"].AssetID)
				assert.Equal(t, "Campanha B", merged["C2"].AssetName)
				assert.Equal(t, 150.0, merged["C2"].CustomerRevenue)
				assert.Equal(t, 0.0, merged["C2"].ROAS)
			},
		},
		{
			name:  "Associação mais recente por timestamp decide o ativo do cliente",
			scope: domain.ScopeAdSets,
			reports: []*domain.DailyReport{
				{
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Ads: map[string]domain.CustomerAd{
								"ad-antigo": {Email: "ana@example.com", Timestamp: 100, AdSetID: "S1"},
								"ad-novo":   {Email: "ana@example.com", Timestamp: 200, AdSetID: "S2"},
							},
							Stats: map[string]domain.CustomerStats{
								"ana@example.com": {Revenue: 500, Sales: 3},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Len(t, merged, 1)
				assert.Contains(t, merged, "S2")
				assert.Equal(t, 500.0, merged["S2"].CustomerRevenue)
				assert.Equal(t, 3, merged["S2"].CustomerSales)
			},
		},
		{
			name:  "Emails somados sem distinção de caixa",
			scope: domain.ScopeAds,
			reports: []*domain.DailyReport{
				{
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Ads: map[string]domain.CustomerAd{
								"ad-1": {Email: "Bia@Example.com", Timestamp: 1, AdID: "A1"},
							},
							Stats: map[string]domain.CustomerStats{
								"Bia@Example.com": {Revenue: 100, Sales: 1},
							},
						},
					},
				},
				{
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Stats: map[string]domain.CustomerStats{
								"bia@example.com": {Revenue: 50, Sales: 1},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Len(t, merged, 1)
				assert.Equal(t, 150.0, merged["A1"].CustomerRevenue)
				assert.Equal(t, 2, merged["A1"].CustomerSales)
			},
		},
		{
			name:  "Cliente sem associação resolvida fica fora da visão por ativo",
			scope: domain.ScopeCampaigns,
			reports: []*domain.DailyReport{
				{
					Customers: map[string]domain.CustomerRecord{
						"lead-1": {
							Stats: map[string]domain.CustomerStats{
								"sem-anuncio@example.com": {Revenue: 900, Sales: 5},
							},
						},
					},
				},
			},
			validate: func(t *testing.T, merged map[string]*domain.AssetStats) {
				assert.Empty(t, merged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.MergeStats(tt.reports, tt.scope))
		})
	}
}

func TestMergeStatsIdempotente(t *testing.T) {
	service := NewService()

	reports := []*domain.DailyReport{
		{
			Campaigns: map[string]domain.ScopeAssetRecord{
				"C1": {
					Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
					Stats:   domain.AssetDayStats{Spend: 100, Revenue: 250},
				},
			},
			Customers: map[string]domain.CustomerRecord{
				"lead-1": {
					Ads: map[string]domain.CustomerAd{
						"ad-1": {Email: "x@example.com", Timestamp: 1, CampaignID: "C1"},
					},
					Stats: map[string]domain.CustomerStats{
						"x@example.com": {Revenue: 250, Sales: 1},
					},
				},
			},
		},
	}

	first := service.MergeStats(reports, domain.ScopeCampaigns)
	second := service.MergeStats(reports, domain.ScopeCampaigns)

	// Reavaliar o mesmo conjunto de relatórios não acumula estado
	assert.Equal(t, first, second)
	assert.Equal(t, 2.5, first["C1"].ROAS)
}

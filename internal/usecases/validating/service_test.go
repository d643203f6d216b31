package validating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"github.com/vfg2006/ad-automation-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-automation-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestDatesArray(t *testing.T) {
	tests := []struct {
		name        string
		timeframe   *domain.Timeframe
		expected    func() []string
		expectError bool
	}{
		{
			name:      "Sem janela - intervalo vazio",
			timeframe: nil,
			expected:  func() []string { return []string{} },
		},
		{
			name:      "Janela de 7 dias terminando hoje",
			timeframe: &domain.Timeframe{Amount: 7, Unit: "days"},
			expected: func() []string {
				return utils.DateRangeArray(time.Now().AddDate(0, 0, -7), time.Now())
			},
		},
		{
			name:      "Janela de 2 semanas",
			timeframe: &domain.Timeframe{Amount: 2, Unit: "weeks"},
			expected: func() []string {
				return utils.DateRangeArray(time.Now().AddDate(0, 0, -14), time.Now())
			},
		},
		{
			name:      "Janela de 1 mês",
			timeframe: &domain.Timeframe{Amount: 1, Unit: "months"},
			expected: func() []string {
				return utils.DateRangeArray(time.Now().AddDate(0, -1, 0), time.Now())
			},
		},
		{
			name:        "Unidade desconhecida - erro explícito",
			timeframe:   &domain.Timeframe{Amount: 3, Unit: "quarters"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := DatesArray(tt.timeframe)

			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownTimeframeUnit)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected(), dates)
		})
	}
}

// dailyReport monta um documento com duas campanhas e os respectivos clientes
// atribuídos, repetido para cada data do intervalo nos testes
func dailyReport() *domain.DailyReport {
	return &domain.DailyReport{
		UserID: "USER1",
		Campaigns: map[string]domain.ScopeAssetRecord{
			"C1": {
				Details: domain.AssetDetails{AssetID: "C1", AssetName: "Campanha A"},
				Stats:   domain.AssetDayStats{Spend: 100},
			},
			"C2": {
				Details: domain.AssetDetails{AssetID: "C2", AssetName: "Campanha B"},
				Stats:   domain.AssetDayStats{Spend: 10},
			},
			"C3": {
				Details: domain.AssetDetails{AssetID: "C3", AssetName: "Campanha C"},
				Stats:   domain.AssetDayStats{Spend: 999},
			},
		},
		Customers: map[string]domain.CustomerRecord{
			"lead-1": {
				Ads: map[string]domain.CustomerAd{
					"ad-1": {Email: "a@example.com", Timestamp: 1, CampaignID: "C1"},
				},
				Stats: map[string]domain.CustomerStats{
					"a@example.com": {Revenue: 300, Sales: 1},
				},
			},
			"lead-2": {
				Ads: map[string]domain.CustomerAd{
					"ad-2": {Email: "b@example.com", Timestamp: 1, CampaignID: "C2"},
				},
				Stats: map[string]domain.CustomerStats{
					"b@example.com": {Revenue: 40, Sales: 1},
				},
			},
		},
	}
}

func TestValidateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo, aggregating.NewService())

	// Janela de 7 dias: 8 datas inclusivas, cada uma com o mesmo documento.
	// Somas no intervalo: C1 gasta 800 com receita 2400 (roas 3.0); C2 gasta
	// 80 com receita 320 (roas 4.0).
	mockReportRepo.EXPECT().
		GetByDateAndUser(gomock.Any(), "USER1").
		DoAndReturn(func(date, userID string) ([]*domain.DailyReport, error) {
			return []*domain.DailyReport{dailyReport()}, nil
		}).
		AnyTimes()

	rule := &domain.Rule{
		ID:     "RULE01",
		Name:   "Pausar campanhas caras",
		UserID: "USER1",
		Scope:  domain.ScopeCampaigns,
		Conditions: []domain.Condition{
			{
				ID: "COND01",
				Expressions: []domain.Expression{
					{
						ID:        "EXPR01",
						Metric:    domain.MetricROAS,
						Predicate: domain.PredicateGt,
						Value:     2,
						Timeframe: &domain.Timeframe{Amount: 7, Unit: "days"},
					},
					{
						ID:        "EXPR02",
						Metric:    domain.MetricSpend,
						Predicate: domain.PredicateLt,
						Value:     500,
						Timeframe: &domain.Timeframe{Amount: 7, Unit: "days"},
					},
				},
			},
		},
		Assets: map[string]map[string]domain.AssetSelection{
			"campaigns": {
				"C1": {AssetName: "Campanha A", Selected: true},
				"C2": {AssetName: "Campanha B", Selected: true},
				"C3": {AssetName: "Campanha C", Selected: false},
			},
		},
	}

	verdict, err := service.ValidateRule(rule)

	assert.NoError(t, err)
	assert.Equal(t, "RULE01", verdict.RuleID)
	assert.ElementsMatch(t, []string{"C1", "C2"}, verdict.SelectedIDs)

	// C2 passa nas duas expressões (roas 4.0 > 2, gasto 80 < 500)
	assert.Contains(t, verdict.Passed, "C2")
	assert.Equal(t, 2, verdict.Passed["C2"].NumOfPassed)
	assert.Equal(t, 0, verdict.Passed["C2"].NumOfFailed)
	assert.Equal(t, "passed", verdict.Passed["C2"].Status)

	// C1 passa no roas (3.0 > 2) mas reprova no gasto (800 >= 500)
	assert.Contains(t, verdict.Failed, "C1")
	assert.Equal(t, 1, verdict.Failed["C1"].NumOfPassed)
	assert.Equal(t, 1, verdict.Failed["C1"].NumOfFailed)
	assert.Equal(t, "failed", verdict.Failed["C1"].Status)
	assert.Equal(t, 2, verdict.Failed["C1"].NumOfExpressions)

	// C3 não está selecionada e fica fora do veredito
	assert.NotContains(t, verdict.Passed, "C3")
	assert.NotContains(t, verdict.Failed, "C3")

	// Registros carregam o intervalo avaliado e a condição de origem
	for _, record := range verdict.Failed["C1"].Validations {
		assert.Equal(t, "COND01", record.ConditionID)
		assert.NotEmpty(t, record.StartDate)
		assert.NotEmpty(t, record.EndDate)
	}
}

func TestValidateRuleFalhaDeLeituraAbortaAvaliacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo, aggregating.NewService())

	mockReportRepo.EXPECT().
		GetByDateAndUser(gomock.Any(), "USER1").
		Return(nil, assert.AnError).
		AnyTimes()

	rule := &domain.Rule{
		ID:     "RULE01",
		UserID: "USER1",
		Scope:  domain.ScopeCampaigns,
		Conditions: []domain.Condition{
			{
				ID: "COND01",
				Expressions: []domain.Expression{
					{
						ID:        "EXPR01",
						Metric:    domain.MetricSpend,
						Predicate: domain.PredicateGt,
						Value:     0,
						Timeframe: &domain.Timeframe{Amount: 3, Unit: "days"},
					},
				},
			},
		},
	}

	verdict, err := service.ValidateRule(rule)

	// Sem o conjunto completo de relatórios não há veredito parcial
	assert.Error(t, err)
	assert.Nil(t, verdict)
}

func TestValidateRuleMetricaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo, aggregating.NewService())

	mockReportRepo.EXPECT().
		GetByDateAndUser(gomock.Any(), "USER1").
		DoAndReturn(func(date, userID string) ([]*domain.DailyReport, error) {
			return []*domain.DailyReport{dailyReport()}, nil
		}).
		AnyTimes()

	rule := &domain.Rule{
		ID:     "RULE01",
		UserID: "USER1",
		Scope:  domain.ScopeCampaigns,
		Conditions: []domain.Condition{
			{
				ID: "COND01",
				Expressions: []domain.Expression{
					{
						ID:        "EXPR01",
						Metric:    "ctr",
						Predicate: domain.PredicateGt,
						Value:     1,
						Timeframe: &domain.Timeframe{Amount: 1, Unit: "days"},
					},
				},
			},
		},
		Assets: map[string]map[string]domain.AssetSelection{
			"campaigns": {
				"C1": {Selected: true},
			},
		},
	}

	verdict, err := service.ValidateRule(rule)

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
	assert.Nil(t, verdict)
}

func TestValidateRuleSemJanelaNaoProduzRegistros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(mockReportRepo, aggregating.NewService())

	// Expressão sem janela: nenhuma data, nenhuma busca de relatório

	rule := &domain.Rule{
		ID:     "RULE01",
		UserID: "USER1",
		Scope:  domain.ScopeCampaigns,
		Conditions: []domain.Condition{
			{
				ID: "COND01",
				Expressions: []domain.Expression{
					{
						ID:        "EXPR01",
						Metric:    domain.MetricSpend,
						Predicate: domain.PredicateGt,
						Value:     0,
					},
				},
			},
		},
		Assets: map[string]map[string]domain.AssetSelection{
			"campaigns": {
				"C1": {Selected: true},
			},
		},
	}

	verdict, err := service.ValidateRule(rule)

	assert.NoError(t, err)
	assert.Empty(t, verdict.Passed)
	assert.Empty(t, verdict.Failed)
}

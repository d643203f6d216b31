package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Scope
		expectError bool
	}{
		{name: "Plural de campanhas", input: "campaigns", expected: ScopeCampaigns},
		{name: "Singular de campanha", input: "campaign", expected: ScopeCampaigns},
		{name: "Plural de conjuntos", input: "adsets", expected: ScopeAdSets},
		{name: "Singular de anúncio", input: "ad", expected: ScopeAds},
		{name: "Escopo desconhecido", input: "audiences", expectError: true},
		{name: "Vazio", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ParseScope(tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrUnknownScope)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, scope)
		})
	}
}

func TestScopeSingularFields(t *testing.T) {
	assert.Equal(t, "campaign_id", ScopeCampaigns.AssetIDField())
	assert.Equal(t, "adset_name", ScopeAdSets.AssetNameField())
	assert.Equal(t, "ad", ScopeAds.Singular())
}

func TestPredicateCompare(t *testing.T) {
	tests := []struct {
		name      string
		predicate Predicate
		observed  float64
		threshold float64
		expected  bool
	}{
		{name: "gt verdadeiro", predicate: PredicateGt, observed: 3, threshold: 2, expected: true},
		{name: "gt no limiar é falso", predicate: PredicateGt, observed: 2, threshold: 2, expected: false},
		{name: "gte no limiar é verdadeiro", predicate: PredicateGte, observed: 2, threshold: 2, expected: true},
		{name: "lt verdadeiro", predicate: PredicateLt, observed: 1, threshold: 2, expected: true},
		{name: "lte no limiar é verdadeiro", predicate: PredicateLte, observed: 2, threshold: 2, expected: true},
		{name: "equals verdadeiro", predicate: PredicateEquals, observed: 2, threshold: 2, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.predicate.Compare(tt.observed, tt.threshold)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := Predicate("between").Compare(1, 2)
	assert.ErrorIs(t, err, ErrUnknownPredicate)
}

func TestMetricValueFrom(t *testing.T) {
	stats := &AssetStats{Spend: 120.5, CustomerSales: 4, ROAS: 2.3}

	roas, err := MetricROAS.ValueFrom(stats)
	assert.NoError(t, err)
	assert.Equal(t, 2.3, roas)

	spend, err := MetricSpend.ValueFrom(stats)
	assert.NoError(t, err)
	assert.Equal(t, 120.5, spend)

	// Vendas vêm da atribuição a clientes, não das vendas de plataforma
	sales, err := MetricSales.ValueFrom(stats)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, sales)

	_, err = Metric("ctr").ValueFrom(stats)
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestScheduleUnitMinutes(t *testing.T) {
	minutes, err := ScheduleUnitMinutes.Minutes(45)
	assert.NoError(t, err)
	assert.Equal(t, 45, minutes)

	minutes, err = ScheduleUnitHours.Minutes(2)
	assert.NoError(t, err)
	assert.Equal(t, 120, minutes)

	minutes, err = ScheduleUnitDays.Minutes(3)
	assert.NoError(t, err)
	assert.Equal(t, 4320, minutes)

	_, err = ScheduleUnit("weeks").Minutes(1)
	assert.ErrorIs(t, err, ErrUnknownScheduleUnit)
}

func TestRuleExpressions(t *testing.T) {
	rule := &Rule{
		Conditions: []Condition{
			{
				ID: "COND01",
				Expressions: []Expression{
					{ID: "EXPR01", Metric: MetricROAS},
					{ID: "EXPR02", Metric: MetricSpend},
				},
			},
			{
				ID: "COND02",
				Expressions: []Expression{
					{ID: "EXPR03", Metric: MetricSales},
				},
			},
		},
	}

	expressions := rule.Expressions()

	assert.Len(t, expressions, 3)
	assert.Equal(t, "COND01", expressions[0].ConditionID)
	assert.Equal(t, "COND01", expressions[1].ConditionID)
	assert.Equal(t, "COND02", expressions[2].ConditionID)
}

func TestRuleSelectedAssets(t *testing.T) {
	rule := &Rule{
		Scope: ScopeCampaigns,
		Assets: map[string]map[string]AssetSelection{
			"campaigns": {
				"C1": {AssetName: "Campanha A", Selected: true},
				"C2": {AssetName: "Campanha B", Selected: false},
			},
			"ads": {
				"A1": {AssetName: "Anúncio X", Selected: true},
			},
		},
	}

	selected := rule.SelectedAssets()

	// Apenas o escopo da regra e apenas os marcados
	assert.Len(t, selected, 1)
	assert.Equal(t, "C1", selected["C1"].AssetID)
	assert.ElementsMatch(t, []string{"C1"}, rule.SelectedAssetIDs())
}

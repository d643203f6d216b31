package actioning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-automation-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func todayForTest(t *testing.T) string {
	t.Helper()
	location, err := time.LoadLocation(platformTimeZone)
	if err != nil {
		location = time.UTC
	}
	return time.Now().In(location).Format(time.DateOnly)
}

func TestPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockIntegrator(ctrl))

	tests := []struct {
		name        string
		action      domain.Action
		budget      domain.Budget
		scope       domain.Scope
		assetID     string
		expectError error
		validate    func(t *testing.T, payload domain.ActionPayload)
	}{
		{
			name:    "Aumento de orçamento em campanha",
			action:  domain.Action{Value: domain.ActionIncreaseBudget},
			budget:  domain.Budget{Type: "percentage", Value: "20"},
			scope:   domain.ScopeCampaigns,
			assetID: "C1",
			validate: func(t *testing.T, payload domain.ActionPayload) {
				entry, ok := payload["campaign"]
				assert.True(t, ok)
				assert.Equal(t, "C1", entry.Params.CampaignID)
				assert.Equal(t, "increase_budget", entry.Params.Action)
				assert.Equal(t, "percentage", entry.Params.Type)
				assert.Equal(t, 20.0, entry.Params.Value)

				today := todayForTest(t)
				assert.Equal(t, today, entry.Params.TimeRange.Since)
				assert.Equal(t, today, entry.Params.TimeRange.Until)
			},
		},
		{
			name:    "Redução de orçamento em conjunto de anúncios",
			action:  domain.Action{Value: domain.ActionDecreaseBudget},
			budget:  domain.Budget{Type: "amount", Value: "15.5"},
			scope:   domain.ScopeAdSets,
			assetID: "S1",
			validate: func(t *testing.T, payload domain.ActionPayload) {
				entry, ok := payload["adset"]
				assert.True(t, ok)
				assert.Equal(t, "S1", entry.Params.AdSetID)
				assert.Empty(t, entry.Params.CampaignID)
				assert.Equal(t, "decrease_budget", entry.Params.Action)
				assert.Equal(t, 15.5, entry.Params.Value)
			},
		},
		{
			name:    "Pausa de anúncio",
			action:  domain.Action{Value: domain.ActionPause},
			scope:   domain.ScopeAds,
			assetID: "A1",
			validate: func(t *testing.T, payload domain.ActionPayload) {
				entry, ok := payload["ad"]
				assert.True(t, ok)
				assert.Equal(t, "A1", entry.Params.AdID)
				assert.Equal(t, "stop", entry.Params.Action)
				assert.Equal(t, "PAUSED", entry.Params.Status)
				assert.Nil(t, entry.Params.TimeRange)
			},
		},
		{
			name:        "Método desconhecido - erro explícito",
			action:      domain.Action{Value: "duplicate"},
			scope:       domain.ScopeCampaigns,
			assetID:     "C1",
			expectError: domain.ErrUnknownActionMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := service.Plan(tt.action, tt.budget, tt.scope, tt.assetID)

			if tt.expectError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, payload)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, payload, 1)
			tt.validate(t, payload)
		})
	}
}

func TestPlanOrcamentoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockIntegrator(ctrl))

	payload, err := service.Plan(
		domain.Action{Value: domain.ActionIncreaseBudget},
		domain.Budget{Type: "percentage", Value: "vinte"},
		domain.ScopeCampaigns,
		"C1",
	)

	assert.Error(t, err)
	assert.Nil(t, payload)
}

func TestExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	service := NewService(mockIntegrator)

	payload := domain.ActionPayload{
		"campaign": {Params: domain.ActionParams{CampaignID: "C1", Action: "stop", Status: "PAUSED"}},
	}

	tests := []struct {
		name     string
		setup    func()
		expected map[string]any
		wantErr  bool
	}{
		{
			name: "Resposta com dados - devolve o primeiro item",
			setup: func() {
				mockIntegrator.EXPECT().
					ExecuteAction("ACC01", "token", payload).
					Return([]metadomain.ActionResult{
						{Data: map[string]any{"success": true}},
						{Data: map[string]any{"ignored": true}},
					}, nil)
			},
			expected: map[string]any{"success": true},
		},
		{
			name: "Resposta vazia - objeto vazio",
			setup: func() {
				mockIntegrator.EXPECT().
					ExecuteAction("ACC01", "token", payload).
					Return([]metadomain.ActionResult{}, nil)
			},
			expected: map[string]any{},
		},
		{
			name: "Resposta malformada sem data - objeto vazio",
			setup: func() {
				mockIntegrator.EXPECT().
					ExecuteAction("ACC01", "token", payload).
					Return([]metadomain.ActionResult{{}}, nil)
			},
			expected: map[string]any{},
		},
		{
			name: "Falha transitória propagada sem retry",
			setup: func() {
				mockIntegrator.EXPECT().
					ExecuteAction("ACC01", "token", payload).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Execute("ACC01", "token", payload)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

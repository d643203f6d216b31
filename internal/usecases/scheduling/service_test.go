package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestIsDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(mockRuleRepo)

	schedule := domain.Schedule{Amount: 2, Unit: domain.ScheduleUnitHours} // 120 minutos

	tests := []struct {
		name        string
		rule        *domain.Rule
		expected    bool
		expectError bool
	}{
		{
			name: "Regra nunca verificada - sempre devida",
			rule: &domain.Rule{
				ID:       "RULE01",
				Schedule: schedule,
			},
			expected: true,
		},
		{
			name: "Verificada há 121 minutos com agendamento de 120 - devida",
			rule: &domain.Rule{
				ID:          "RULE02",
				Schedule:    schedule,
				LastChecked: time.Now().Add(-121 * time.Minute).Unix(),
			},
			expected: true,
		},
		{
			name: "Verificada há 119 minutos com agendamento de 120 - não devida",
			rule: &domain.Rule{
				ID:          "RULE03",
				Schedule:    schedule,
				LastChecked: time.Now().Add(-119 * time.Minute).Unix(),
			},
			expected: false,
		},
		{
			name: "Unidade de agendamento desconhecida - erro explícito",
			rule: &domain.Rule{
				ID:          "RULE04",
				Schedule:    domain.Schedule{Amount: 1, Unit: "fortnights"},
				LastChecked: time.Now().Add(-10 * time.Minute).Unix(),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := service.IsDue(tt.rule)

			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnknownScheduleUnit)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, due)
		})
	}
}

func TestElapsedMinutesRegraNuncaVerificada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(mockRuleRepo)

	rule := &domain.Rule{ID: "RULE01"}

	// Ausência de last_checked conta como verificada há 10 anos
	elapsed := service.ElapsedMinutes(rule)
	tenYearsInMinutes := int(time.Since(time.Now().AddDate(-10, 0, 0)).Minutes())
	assert.InDelta(t, tenYearsInMinutes, elapsed, 2)
}

func TestMarkChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(mockRuleRepo)

	rule := &domain.Rule{ID: "RULE01", LastChecked: 0}

	var persisted int64
	mockRuleRepo.EXPECT().
		UpdateLastChecked("RULE01", gomock.Any()).
		DoAndReturn(func(_ string, lastChecked int64) error {
			persisted = lastChecked
			return nil
		})

	before := time.Now().Unix()
	updated, err := service.MarkChecked(rule)
	after := time.Now().Unix()

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, updated.LastChecked, before)
	assert.LessOrEqual(t, updated.LastChecked, after)
	assert.Equal(t, updated.LastChecked, persisted)

	// A regra original não é mutada
	assert.Equal(t, int64(0), rule.LastChecked)
}

func TestResetChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(mockRuleRepo)

	rule := &domain.Rule{ID: "RULE01", LastChecked: time.Now().Unix()}

	mockRuleRepo.EXPECT().
		UpdateLastChecked("RULE01", int64(0)).
		Return(nil)

	updated, err := service.ResetChecked(rule)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), updated.LastChecked)
}

func TestMarkCheckedErroDePersistencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(mockRuleRepo)

	rule := &domain.Rule{ID: "RULE01"}

	mockRuleRepo.EXPECT().
		UpdateLastChecked("RULE01", gomock.Any()).
		Return(assert.AnError)

	updated, err := service.MarkChecked(rule)

	assert.Error(t, err)
	assert.Nil(t, updated)
}

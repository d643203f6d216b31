package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRangeArray(t *testing.T) {
	tests := []struct {
		name      string
		startDate time.Time
		endDate   time.Time
		expected  []string
	}{
		{
			name:      "Intervalo de três dias inclusivo",
			startDate: time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expected:  []string{"2024-01-30", "2024-01-31", "2024-02-01"},
		},
		{
			name:      "Mesmo dia - um único elemento",
			startDate: time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC),
			endDate:   time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC),
			expected:  []string{"2024-05-10"},
		},
		{
			name:      "Início depois do fim - intervalo vazio",
			startDate: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC),
			endDate:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateRangeArray(tt.startDate, tt.endDate))
		})
	}
}

func TestNumOrZero(t *testing.T) {
	assert.Equal(t, 2.5, NumOrZero(2.5))
	assert.Equal(t, 0.0, NumOrZero(-1.0))

	// Divisões por gasto zero colapsam para zero
	zero := 0.0
	assert.Equal(t, 0.0, NumOrZero(100.0/zero))
	assert.Equal(t, 0.0, NumOrZero(zero/zero))
}

package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlab.com/andhika/duit-bot/internal/models"
)

func TestGenerateMonthChart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		days        []models.DailyTotal
		expectError bool
	}{
		{
			name: "multiple days",
			days: []models.DailyTotal{
				{Date: time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC), Total: 15000},
				{Date: time.Date(2025, time.December, 7, 0, 0, 0, 0, time.UTC), Total: 25000},
				{Date: time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC), Total: 8000},
			},
		},
		{
			name: "single day",
			days: []models.DailyTotal{
				{Date: time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC), Total: 15000},
			},
		},
		{
			name:        "no days",
			days:        nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := GenerateMonthChart(tt.days, 2025, time.December)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, data)

			// PNG magic bytes.
			require.GreaterOrEqual(t, len(data), 8)
			require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
		})
	}
}

func TestGenerateChartFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "grafik_2025-12.png", generateChartFilename(2025, time.December))
	require.Equal(t, "grafik_2024-07.png", generateChartFilename(2024, time.July))
}

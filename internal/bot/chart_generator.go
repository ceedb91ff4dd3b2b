package bot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-analyze/charts"

	"gitlab.com/andhika/duit-bot/internal/models"
)

// GenerateMonthChart creates a bar chart of per-day totals for one month.
// Returns PNG image as bytes.
func GenerateMonthChart(days []models.DailyTotal, year int, month time.Month) ([]byte, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("no expenses to chart")
	}

	values := make([]float64, 0, len(days))
	labels := make([]string, 0, len(days))
	for _, d := range days {
		values = append(values, float64(d.Total))
		labels = append(labels, strconv.Itoa(d.Date.Day()))
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Pengeluaran %s %d", MonthName(month), year),
		}),
		charts.XAxisLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

// generateChartFilename creates filename like "grafik_2025-12.png".
func generateChartFilename(year int, month time.Month) string {
	return fmt.Sprintf("grafik_%04d-%02d.png", year, int(month))
}

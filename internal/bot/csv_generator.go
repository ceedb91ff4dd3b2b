package bot

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"gitlab.com/andhika/duit-bot/internal/models"
)

// GenerateExpensesCSV generates a CSV file from a list of expenses.
func GenerateExpensesCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Tanggal", "Deskripsi", "Jumlah"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		row := []string{
			strconv.FormatInt(expenses[i].ID, 10),
			expenses[i].Date.Format("2006-01-02"),
			expenses[i].Description,
			strconv.FormatInt(expenses[i].Amount, 10),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// generateReportFilename creates a descriptive filename for the CSV report.
func generateReportFilename(year int, month time.Month) string {
	return fmt.Sprintf("pengeluaran_%04d-%02d.csv", year, int(month))
}

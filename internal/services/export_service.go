package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"accrue/internal/models"

	"gorm.io/gorm"
)

// exportService writes transaction history to an export sink.
type exportService struct {
	db *gorm.DB
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db}
}

// exportRow is one joined transaction row for export.
type exportRow struct {
	ID           string
	AccountName  string
	CategoryName *string
	Type         models.TransactionType
	Amount       int64
	Date         time.Time
	Notes        string
	IsRecurring  bool
}

// ExportTransactionsCSV writes every transaction, joined with its account
// and category names and ordered by date descending, as RFC 4180 CSV.
// Field quoting is handled by encoding/csv, so commas and quotes in notes
// survive round trips.
func (s *exportService) ExportTransactionsCSV(w io.Writer) error {
	var rows []exportRow
	err := s.db.Model(&models.Transaction{}).
		Select("transactions.id AS id, accounts.name AS account_name, categories.name AS category_name, " +
			"transactions.type AS type, transactions.amount AS amount, transactions.date AS date, " +
			"transactions.notes AS notes, transactions.is_recurring AS is_recurring").
		Joins("LEFT JOIN accounts ON accounts.id = transactions.account_id").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Order("transactions.date DESC, transactions.id DESC").
		Scan(&rows).Error
	if err != nil {
		return storeErr(err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "account", "category", "type", "amount", "date", "notes", "is_recurring"}); err != nil {
		return err
	}

	for i := range rows {
		category := ""
		if rows[i].CategoryName != nil {
			category = *rows[i].CategoryName
		}
		record := []string{
			rows[i].ID,
			rows[i].AccountName,
			category,
			string(rows[i].Type),
			formatAmount(rows[i].Amount),
			rows[i].Date.Format("2006-01-02"),
			rows[i].Notes,
			strconv.FormatBool(rows[i].IsRecurring),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatAmount renders minor currency units with two decimals.
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

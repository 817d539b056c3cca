package services

import (
	"fmt"
	"time"

	apperrors "accrue/internal/errors"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// reportService computes dashboard and period aggregates from the ledger.
// It is a read-only consumer of the store; nothing here is cached.
type reportService struct {
	db           *gorm.DB
	accounts     AccountServicer
	transactions TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, accounts AccountServicer, transactions TransactionServicer) ReportServicer {
	return &reportService{
		db:           db,
		accounts:     accounts,
		transactions: transactions,
	}
}

// Dashboard assembles the landing-view snapshot: net worth, active
// accounts with balances, current-month totals, the 10 most recent
// transactions, and current-month spending grouped by category.
func (s *reportService) Dashboard() (*models.DashboardData, error) {
	accounts, err := s.accounts.ListAccounts(false)
	if err != nil {
		return nil, err
	}

	var netWorth int64
	for i := range accounts {
		if accounts[i].IsCredit() {
			netWorth -= accounts[i].Balance
		} else {
			netWorth += accounts[i].Balance
		}
	}

	period := monthKey(time.Now())
	income, err := s.sumForPeriod(models.TransactionTypeIncome, period)
	if err != nil {
		return nil, err
	}
	expenses, err := s.sumForPeriod(models.TransactionTypeExpense, period)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactions.ListTransactions(TransactionFilter{Limit: 10})
	if err != nil {
		return nil, err
	}

	spending, err := s.categorySpend(period)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		NetWorth:           netWorth,
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		Accounts:           accounts,
		RecentTransactions: recent,
		SpendingByCategory: spending,
	}, nil
}

// SpendingBreakdown aggregates a single calendar month: income and expense
// totals plus the per-category expense breakdown.
func (s *reportService) SpendingBreakdown(year, month int) (*models.SpendingBreakdown, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year or month")
	}

	period := fmt.Sprintf("%04d-%02d", year, month)
	income, err := s.sumForPeriod(models.TransactionTypeIncome, period)
	if err != nil {
		return nil, err
	}
	expenses, err := s.sumForPeriod(models.TransactionTypeExpense, period)
	if err != nil {
		return nil, err
	}
	categories, err := s.categorySpend(period)
	if err != nil {
		return nil, err
	}

	return &models.SpendingBreakdown{
		Year:          year,
		Month:         month,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Categories:    categories,
	}, nil
}

// MonthlyTrends returns per-period income, expense and net for the most
// recent months periods, clamped to [1,24], in ascending chronological
// order.
func (s *reportService) MonthlyTrends(months int) ([]models.MonthSummary, error) {
	limit := months
	if limit < 1 {
		limit = 1
	}
	if limit > 24 {
		limit = 24
	}

	var rows []struct {
		Label    string
		Income   int64
		Expenses int64
	}
	err := s.db.Model(&models.Transaction{}).
		Select("strftime('%Y-%m', date) AS label, " +
			"COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expenses").
		Group("strftime('%Y-%m', date)").
		Order("label DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}

	// Rows come back newest first; the report reads oldest to newest.
	summaries := make([]models.MonthSummary, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		period, err := time.Parse("2006-01", rows[i].Label)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStoreFailure, err)
		}
		summaries = append(summaries, models.MonthSummary{
			Year:     period.Year(),
			Month:    int(period.Month()),
			Label:    rows[i].Label,
			Income:   rows[i].Income,
			Expenses: rows[i].Expenses,
			Net:      rows[i].Income - rows[i].Expenses,
		})
	}
	return summaries, nil
}

func (s *reportService) sumForPeriod(txType models.TransactionType, period string) (int64, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND strftime('%Y-%m', date) = ?", txType, period).
		Scan(&total).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

func (s *reportService) categorySpend(period string) ([]models.CategorySpend, error) {
	var spend []models.CategorySpend
	err := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, COALESCE(categories.name, ?) AS category_name, SUM(transactions.amount) AS amount",
			models.UncategorizedLabel).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.type = ? AND strftime('%Y-%m', transactions.date) = ?",
			models.TransactionTypeExpense, period).
		Group("transactions.category_id").
		Order("SUM(transactions.amount) DESC").
		Scan(&spend).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return spend, nil
}

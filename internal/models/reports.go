package models

// UncategorizedLabel is the sentinel bucket for expense transactions
// without a category in per-category spend groupings.
const UncategorizedLabel = "Uncategorized"

// CategorySpend is one bucket of a per-category expense grouping.
type CategorySpend struct {
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name"`
	Amount       int64   `json:"amount"`
}

// DashboardData is the snapshot shown on the application's landing view.
type DashboardData struct {
	NetWorth           int64                `json:"net_worth"`
	MonthlyIncome      int64                `json:"monthly_income"`
	MonthlyExpenses    int64                `json:"monthly_expenses"`
	Accounts           []AccountWithBalance `json:"accounts"`
	RecentTransactions []Transaction        `json:"recent_transactions"`
	SpendingByCategory []CategorySpend      `json:"spending_by_category"`
}

// SpendingBreakdown aggregates a single calendar month.
type SpendingBreakdown struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalIncome   int64           `json:"total_income"`
	TotalExpenses int64           `json:"total_expenses"`
	Categories    []CategorySpend `json:"categories"`
}

// MonthSummary is one period of the monthly trend report.
type MonthSummary struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

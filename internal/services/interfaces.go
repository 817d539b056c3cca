// Package services contains the business logic of the ledger: CRUD over
// accounts, categories, transactions and transfers, balance derivation,
// report aggregation, and CSV export.
package services

import (
	"io"
	"time"

	"accrue/internal/models"
)

// maxListedTransactions caps transaction listings to bound response size.
const maxListedTransactions = 500

// CreateAccountParams holds the fields for creating an account. Type is
// fixed at creation and cannot be changed afterwards.
type CreateAccountParams struct {
	Name           string             `validate:"required"`
	Type           models.AccountType `validate:"required,account_type"`
	Subtype        string             `validate:"-"`
	Currency       string             `validate:"omitempty,iso4217"`
	OpeningBalance int64              `validate:"-"`

	// Credit accounts only.
	CreditLimit     *int64 `validate:"omitempty,min=0"`
	BillingCycleDay *int   `validate:"omitempty,min=1,max=31"`
	PaymentDueDay   *int   `validate:"omitempty,min=1,max=31"`
}

// UpdateAccountParams holds the updatable fields of an account. Nil fields
// are left unchanged.
type UpdateAccountParams struct {
	Name           *string `validate:"omitempty,min=1"`
	Subtype        *string `validate:"-"`
	Currency       *string `validate:"omitempty,iso4217"`
	OpeningBalance *int64  `validate:"-"`

	// Credit accounts only.
	CreditLimit     *int64 `validate:"omitempty,min=0"`
	BillingCycleDay *int   `validate:"omitempty,min=1,max=31"`
	PaymentDueDay   *int   `validate:"omitempty,min=1,max=31"`
}

// AccountServicer defines the contract for account-related business logic,
// including balance derivation.
type AccountServicer interface {
	CreateAccount(params CreateAccountParams) (*models.AccountWithBalance, error)
	ListAccounts(includeInactive bool) ([]models.AccountWithBalance, error)
	GetAccount(accountID string) (*models.AccountWithBalance, error)
	UpdateAccount(accountID string, params UpdateAccountParams) (*models.AccountWithBalance, error)
	ArchiveAccount(accountID string) error
	RestoreAccount(accountID string) error

	// AccountBalance derives the account's current balance from its
	// transaction history. It is recomputed on every call.
	AccountBalance(account *models.Account) (int64, error)

	// NetWorth is the sum of asset-account balances minus credit-account
	// balances, over active accounts only.
	NetWorth() (int64, error)
}

// CreateCategoryParams holds the fields for creating a category.
type CreateCategoryParams struct {
	Name      string                   `validate:"required"`
	Direction models.CategoryDirection `validate:"required,category_direction"`
	Icon      string                   `validate:"-"`
}

// UpdateCategoryParams holds the updatable fields of a category.
type UpdateCategoryParams struct {
	Name      *string                   `validate:"omitempty,min=1"`
	Direction *models.CategoryDirection `validate:"omitempty,category_direction"`
	Icon      *string                   `validate:"-"`
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(params CreateCategoryParams) (*models.Category, error)
	ListCategories(includeArchived bool) ([]models.Category, error)
	GetCategory(categoryID string) (*models.Category, error)
	UpdateCategory(categoryID string, params UpdateCategoryParams) (*models.Category, error)
	ArchiveCategory(categoryID string) error
	RestoreCategory(categoryID string) error
}

// CreateTransactionParams holds the fields for creating a transaction.
type CreateTransactionParams struct {
	AccountID           string                      `validate:"required,uuid"`
	CategoryID          *string                     `validate:"omitempty,uuid"`
	Type                models.TransactionType      `validate:"required,tx_type"`
	Amount              int64                       `validate:"required,gt=0"`
	Date                time.Time                   `validate:"required"`
	Notes               string                      `validate:"-"`
	IsRecurring         bool                        `validate:"-"`
	RecurrenceFrequency *models.RecurrenceFrequency `validate:"omitempty,recurrence_frequency"`
	NextDueDate         *time.Time                  `validate:"-"`
}

// UpdateTransactionParams holds the updatable fields of a transaction.
type UpdateTransactionParams struct {
	AccountID           *string                     `validate:"omitempty,uuid"`
	CategoryID          *string                     `validate:"omitempty,uuid"`
	ClearCategory       bool                        `validate:"-"`
	Type                *models.TransactionType     `validate:"omitempty,tx_type"`
	Amount              *int64                      `validate:"omitempty,gt=0"`
	Date                *time.Time                  `validate:"-"`
	Notes               *string                     `validate:"-"`
	IsRecurring         *bool                       `validate:"-"`
	RecurrenceFrequency *models.RecurrenceFrequency `validate:"omitempty,recurrence_frequency"`
	NextDueDate         *time.Time                  `validate:"-"`
}

// TransactionFilter holds optional filter parameters for listing
// transactions. All set fields are AND-combined. Search matches notes,
// category name and account name. Every value is parameter-bound; none is
// ever interpolated into query text.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	Type       *models.TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string

	// Limit caps the result count; zero or anything above the maximum
	// falls back to the maximum of 500.
	Limit int
}

// TransactionServicer defines the contract for transaction-related business
// logic.
type TransactionServicer interface {
	CreateTransaction(params CreateTransactionParams) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter) ([]models.Transaction, error)
	GetTransaction(transactionID string) (*models.Transaction, error)
	UpdateTransaction(transactionID string, params UpdateTransactionParams) (*models.Transaction, error)

	// DeleteTransaction deletes a transaction. Deleting a transfer leg
	// cascades to both legs and the owning transfer.
	DeleteTransaction(transactionID string) error
}

// CreateTransferParams holds the fields for creating a transfer.
type CreateTransferParams struct {
	FromAccountID string              `validate:"required,uuid"`
	ToAccountID   string              `validate:"required,uuid"`
	Amount        int64               `validate:"required,gt=0"`
	Date          time.Time           `validate:"required"`
	Notes         string              `validate:"-"`
	Type          models.TransferType `validate:"omitempty,transfer_type"`
}

// TransferServicer defines the contract for the transfer coordinator.
type TransferServicer interface {
	// CreateTransfer atomically materializes a transfer as a Transfer row
	// plus an expense leg on the source account and an income leg on the
	// destination account.
	CreateTransfer(params CreateTransferParams) (*models.Transfer, error)
	ListTransfers() ([]models.Transfer, error)
	GetTransfer(transferID string) (*models.Transfer, error)

	// DeleteTransfer atomically deletes both legs and the transfer row.
	DeleteTransfer(transferID string) error
}

// ReportServicer defines the contract for dashboard and period aggregates.
type ReportServicer interface {
	Dashboard() (*models.DashboardData, error)
	SpendingBreakdown(year, month int) (*models.SpendingBreakdown, error)

	// MonthlyTrends returns per-period income/expense/net for the most
	// recent months periods (clamped to [1,24]), in ascending
	// chronological order.
	MonthlyTrends(months int) ([]models.MonthSummary, error)
}

// ExportServicer defines the contract for the transaction export sink.
type ExportServicer interface {
	// ExportTransactionsCSV writes all transactions as RFC 4180 CSV with
	// header id,account,category,type,amount,date,notes,is_recurring.
	ExportTransactionsCSV(w io.Writer) error
}

package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurrenceFrequency represents how often a recurring transaction repeats.
type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "daily"
	RecurrenceWeekly  RecurrenceFrequency = "weekly"
	RecurrenceMonthly RecurrenceFrequency = "monthly"
	RecurrenceYearly  RecurrenceFrequency = "yearly"
)

// Transaction represents a single ledger entry. Amount is always
// non-negative; the signed contribution to a balance is derived from Type.
// When TransferID is set the row is one leg of a transfer pair and carries
// no category.
type Transaction struct {
	Base
	AccountID  string          `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	TransferID *string         `gorm:"type:uuid;index" json:"transfer_id,omitempty"`
	Type       TransactionType `gorm:"column:type;not null" json:"type"`
	Amount     int64           `gorm:"not null" json:"amount"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	Notes      string          `json:"notes,omitempty"`

	IsRecurring         bool                 `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceFrequency *RecurrenceFrequency `json:"recurrence_frequency,omitempty"`
	NextDueDate         *time.Time           `json:"next_due_date,omitempty"`

	// Relationships
	Account  Account   `gorm:"foreignKey:AccountID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`

	// Display names joined in by listing queries.
	AccountName  string `gorm:"-" json:"account_name,omitempty"`
	CategoryName string `gorm:"-" json:"category_name,omitempty"`
}

// SignedAmount returns the transaction's contribution to an asset-account
// balance: positive for income, negative for expense.
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}

package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeDebit      AccountType = "debit"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// Account represents a financial account in the ledger. An account's
// balance is never stored; it is derived from the transaction history on
// every read.
type Account struct {
	Base
	Name           string      `gorm:"not null" json:"name"`
	Type           AccountType `gorm:"column:type;not null" json:"type"`
	Subtype        string      `json:"subtype,omitempty"`
	Currency       string      `gorm:"not null;default:'PHP'" json:"currency"`
	OpeningBalance int64       `gorm:"not null;default:0" json:"opening_balance"`
	IsActive       bool        `gorm:"not null;default:true" json:"is_active"`

	// For credit accounts
	CreditLimit     *int64 `json:"credit_limit,omitempty"`
	BillingCycleDay *int   `json:"billing_cycle_day,omitempty"`
	PaymentDueDay   *int   `json:"payment_due_day,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}

// IsCredit reports whether the account is a liability account.
func (a *Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// AccountWithBalance is an account snapshot enriched with its derived
// balance, in minor currency units.
type AccountWithBalance struct {
	Account
	Balance int64 `json:"balance"`
}

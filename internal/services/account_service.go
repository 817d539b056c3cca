package services

import (
	"errors"

	apperrors "accrue/internal/errors"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// accountService handles account-related business logic and balance
// derivation.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account. The account type is fixed at
// creation; credit-specific fields are rejected on non-credit accounts.
func (s *accountService) CreateAccount(params CreateAccountParams) (*models.AccountWithBalance, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if params.Type != models.AccountTypeCredit {
		if params.CreditLimit != nil || params.BillingCycleDay != nil || params.PaymentDueDay != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"credit limit and billing fields are only valid for credit accounts")
		}
	}

	if params.Currency == "" {
		params.Currency = "PHP" // Default currency
	}

	account := &models.Account{
		Name:            params.Name,
		Type:            params.Type,
		Subtype:         params.Subtype,
		Currency:        params.Currency,
		OpeningBalance:  params.OpeningBalance,
		CreditLimit:     params.CreditLimit,
		BillingCycleDay: params.BillingCycleDay,
		PaymentDueDay:   params.PaymentDueDay,
		IsActive:        true,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, storeErr(err)
	}

	return s.withBalance(account)
}

// ListAccounts retrieves accounts ordered by name, each with its derived
// balance. Archived accounts are included only when requested.
func (s *accountService) ListAccounts(includeInactive bool) ([]models.AccountWithBalance, error) {
	q := s.db.Model(&models.Account{}).Order("name")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var accounts []models.Account
	if err := q.Find(&accounts).Error; err != nil {
		return nil, storeErr(err)
	}

	result := make([]models.AccountWithBalance, 0, len(accounts))
	for i := range accounts {
		enriched, err := s.withBalance(&accounts[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *enriched)
	}
	return result, nil
}

// GetAccount retrieves an account by ID with its derived balance.
func (s *accountService) GetAccount(accountID string) (*models.AccountWithBalance, error) {
	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}
	return s.withBalance(account)
}

// UpdateAccount updates an existing account. The account type cannot be
// changed; credit-specific fields are applied only to credit accounts.
func (s *accountService) UpdateAccount(accountID string, params UpdateAccountParams) (*models.AccountWithBalance, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	account, err := s.getAccount(accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Subtype != nil {
		updates["subtype"] = *params.Subtype
	}
	if params.Currency != nil {
		updates["currency"] = *params.Currency
	}
	if params.OpeningBalance != nil {
		updates["opening_balance"] = *params.OpeningBalance
	}

	if account.IsCredit() {
		if params.CreditLimit != nil {
			updates["credit_limit"] = *params.CreditLimit
		}
		if params.BillingCycleDay != nil {
			updates["billing_cycle_day"] = *params.BillingCycleDay
		}
		if params.PaymentDueDay != nil {
			updates["payment_due_day"] = *params.PaymentDueDay
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, storeErr(err)
		}
		// Reload to get fresh data
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, storeErr(err)
		}
	}

	return s.withBalance(account)
}

// ArchiveAccount soft-deletes an account. Transactions referencing it are
// left untouched.
func (s *accountService) ArchiveAccount(accountID string) error {
	return s.setActive(accountID, false)
}

// RestoreAccount reactivates an archived account.
func (s *accountService) RestoreAccount(accountID string) error {
	return s.setActive(accountID, true)
}

func (s *accountService) setActive(accountID string, active bool) error {
	account, err := s.getAccount(accountID)
	if err != nil {
		return err
	}
	if err := s.db.Model(account).Update("is_active", active).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

// AccountBalance derives the account's current balance from its
// transaction history. For credit accounts the balance is the amount owed,
// Σexpense − Σincome; for all other types it is
// opening_balance + Σincome − Σexpense. An account with no transactions
// returns its opening balance (0 for credit).
func (s *accountService) AccountBalance(account *models.Account) (int64, error) {
	income, err := s.sumAmounts(account.ID, models.TransactionTypeIncome)
	if err != nil {
		return 0, err
	}
	expenses, err := s.sumAmounts(account.ID, models.TransactionTypeExpense)
	if err != nil {
		return 0, err
	}

	if account.IsCredit() {
		return expenses - income, nil
	}
	return account.OpeningBalance + income - expenses, nil
}

// NetWorth sums asset-account balances and subtracts credit-account
// balances, over active accounts only.
func (s *accountService) NetWorth() (int64, error) {
	accounts, err := s.ListAccounts(false)
	if err != nil {
		return 0, err
	}

	var total int64
	for i := range accounts {
		if accounts[i].IsCredit() {
			total -= accounts[i].Balance
		} else {
			total += accounts[i].Balance
		}
	}
	return total, nil
}

func (s *accountService) getAccount(accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, storeErr(err)
	}
	return &account, nil
}

func (s *accountService) withBalance(account *models.Account) (*models.AccountWithBalance, error) {
	balance, err := s.AccountBalance(account)
	if err != nil {
		return nil, err
	}
	return &models.AccountWithBalance{Account: *account, Balance: balance}, nil
}

func (s *accountService) sumAmounts(accountID string, txType models.TransactionType) (int64, error) {
	var total int64
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("account_id = ? AND type = ?", accountID, txType).
		Scan(&total).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

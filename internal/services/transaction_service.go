package services

import (
	"errors"

	apperrors "accrue/internal/errors"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db       *gorm.DB
	accounts AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accounts AccountServicer) TransactionServicer {
	return &transactionService{
		db:       db,
		accounts: accounts,
	}
}

// CreateTransaction creates a new ledger entry. The date is normalized to
// its calendar day; recurring transactions must carry a frequency and a
// next due date.
func (s *transactionService) CreateTransaction(params CreateTransactionParams) (*models.Transaction, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if params.IsRecurring && (params.RecurrenceFrequency == nil || params.NextDueDate == nil) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"recurring transactions require a recurrence frequency and a next due date")
	}

	if _, err := s.accounts.GetAccount(params.AccountID); err != nil {
		return nil, err
	}
	if params.CategoryID != nil {
		if err := s.checkCategoryExists(*params.CategoryID); err != nil {
			return nil, err
		}
	}

	transaction := &models.Transaction{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Type:       params.Type,
		Amount:     params.Amount,
		Date:       civilDate(params.Date),
		Notes:      params.Notes,
	}
	if params.IsRecurring {
		due := civilDate(*params.NextDueDate)
		transaction.IsRecurring = true
		transaction.RecurrenceFrequency = params.RecurrenceFrequency
		transaction.NextDueDate = &due
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, storeErr(err)
	}

	return s.GetTransaction(transaction.ID)
}

// ListTransactions retrieves a filtered list of transactions ordered by
// date descending then id descending, capped at 500 rows. All filter
// values are bound as parameters.
func (s *transactionService) ListTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	limit := filter.Limit
	if limit <= 0 || limit > maxListedTransactions {
		limit = maxListedTransactions
	}

	q := s.db.Model(&models.Transaction{}).Select("transactions.*")
	if filter.AccountID != nil {
		q = q.Where("transactions.account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.Type != nil {
		q = q.Where("transactions.type = ?", *filter.Type)
	}
	if filter.DateFrom != nil {
		q = q.Where("transactions.date >= ?", civilDate(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		q = q.Where("transactions.date <= ?", civilDate(*filter.DateTo))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.
			Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
			Joins("LEFT JOIN accounts ON accounts.id = transactions.account_id").
			Where("transactions.notes LIKE ? OR categories.name LIKE ? OR accounts.name LIKE ?",
				pattern, pattern, pattern)
	}

	var transactions []models.Transaction
	err := q.Preload("Account").Preload("Category").
		Order("transactions.date DESC, transactions.id DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, storeErr(err)
	}

	for i := range transactions {
		fillDisplayNames(&transactions[i])
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction by ID with display names filled
// in.
func (s *transactionService) GetTransaction(transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("Account").Preload("Category").
		Where("id = ?", transactionID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, storeErr(err)
	}

	fillDisplayNames(&transaction)
	return &transaction, nil
}

// UpdateTransaction updates an existing transaction. Transfer legs cannot
// be edited directly; they change only through their transfer.
func (s *transactionService) UpdateTransaction(transactionID string, params UpdateTransactionParams) (*models.Transaction, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	var transaction models.Transaction
	if err := s.db.Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, storeErr(err)
	}

	if transaction.TransferID != nil {
		return nil, apperrors.ErrTransferLegLocked
	}

	if params.AccountID != nil {
		if _, err := s.accounts.GetAccount(*params.AccountID); err != nil {
			return nil, err
		}
		transaction.AccountID = *params.AccountID
	}
	if params.ClearCategory {
		transaction.CategoryID = nil
	} else if params.CategoryID != nil {
		if err := s.checkCategoryExists(*params.CategoryID); err != nil {
			return nil, err
		}
		transaction.CategoryID = params.CategoryID
	}
	if params.Type != nil {
		transaction.Type = *params.Type
	}
	if params.Amount != nil {
		transaction.Amount = *params.Amount
	}
	if params.Date != nil {
		transaction.Date = civilDate(*params.Date)
	}
	if params.Notes != nil {
		transaction.Notes = *params.Notes
	}
	if params.IsRecurring != nil {
		transaction.IsRecurring = *params.IsRecurring
	}
	if params.RecurrenceFrequency != nil {
		transaction.RecurrenceFrequency = params.RecurrenceFrequency
	}
	if params.NextDueDate != nil {
		due := civilDate(*params.NextDueDate)
		transaction.NextDueDate = &due
	}

	if transaction.IsRecurring {
		if transaction.RecurrenceFrequency == nil || transaction.NextDueDate == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"recurring transactions require a recurrence frequency and a next due date")
		}
	} else {
		transaction.RecurrenceFrequency = nil
		transaction.NextDueDate = nil
	}

	if err := s.db.Save(&transaction).Error; err != nil {
		return nil, storeErr(err)
	}

	return s.GetTransaction(transaction.ID)
}

// DeleteTransaction deletes a transaction. If the row is a transfer leg,
// the deletion cascades to both legs and the owning transfer so the ledger
// never holds an orphan leg.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return storeErr(err)
	}

	if transaction.TransferID == nil {
		if err := s.db.Delete(&transaction).Error; err != nil {
			return storeErr(err)
		}
		return nil
	}

	transferID := *transaction.TransferID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transfer_id = ?", transferID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", transferID).Delete(&models.Transfer{}).Error
	})
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *transactionService) checkCategoryExists(categoryID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return storeErr(err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

func fillDisplayNames(t *models.Transaction) {
	t.AccountName = t.Account.Name
	if t.Category != nil {
		t.CategoryName = t.Category.Name
	}
}

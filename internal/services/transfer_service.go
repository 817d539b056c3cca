package services

import (
	"errors"

	apperrors "accrue/internal/errors"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// transferService coordinates transfers between accounts. Every transfer
// is materialized as a Transfer row plus two coupled transaction legs, and
// all writes for one transfer share a single database transaction.
type transferService struct {
	db       *gorm.DB
	accounts AccountServicer
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB, accounts AccountServicer) TransferServicer {
	return &transferService{
		db:       db,
		accounts: accounts,
	}
}

// CreateTransfer atomically inserts the transfer, an expense leg on the
// source account and an income leg on the destination account. Both legs
// carry the transfer id, the amount and no category. Self-transfers are
// rejected.
func (s *transferService) CreateTransfer(params CreateTransferParams) (*models.Transfer, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	if params.FromAccountID == params.ToAccountID {
		return nil, apperrors.ErrSameAccountTransfer
	}

	if _, err := s.accounts.GetAccount(params.FromAccountID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.GetAccount(params.ToAccountID); err != nil {
		return nil, err
	}

	if params.Type == "" {
		params.Type = models.TransferTypeRegular
	}

	date := civilDate(params.Date)
	transfer := &models.Transfer{
		FromAccountID: params.FromAccountID,
		ToAccountID:   params.ToAccountID,
		Amount:        params.Amount,
		Date:          date,
		Notes:         params.Notes,
		Type:          params.Type,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transfer).Error; err != nil {
			return err
		}

		legs := []models.Transaction{
			{
				AccountID:  params.FromAccountID,
				TransferID: &transfer.ID,
				Type:       models.TransactionTypeExpense,
				Amount:     params.Amount,
				Date:       date,
				Notes:      params.Notes,
			},
			{
				AccountID:  params.ToAccountID,
				TransferID: &transfer.ID,
				Type:       models.TransactionTypeIncome,
				Amount:     params.Amount,
				Date:       date,
				Notes:      params.Notes,
			},
		}
		return tx.Create(&legs).Error
	})
	if err != nil {
		return nil, storeErr(err)
	}

	return s.GetTransfer(transfer.ID)
}

// ListTransfers retrieves all transfers, most recent first.
func (s *transferService) ListTransfers() ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := s.db.Order("date DESC, id DESC").Find(&transfers).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return transfers, nil
}

// GetTransfer retrieves a transfer by ID with its legs.
func (s *transferService) GetTransfer(transferID string) (*models.Transfer, error) {
	var transfer models.Transfer
	err := s.db.Preload("Legs").Where("id = ?", transferID).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransferNotFound
		}
		return nil, storeErr(err)
	}
	return &transfer, nil
}

// DeleteTransfer atomically deletes both legs and the transfer row.
func (s *transferService) DeleteTransfer(transferID string) error {
	if _, err := s.GetTransfer(transferID); err != nil {
		return err
	}

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

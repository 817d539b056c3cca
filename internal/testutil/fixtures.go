package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"accrue/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account of the given type with the given
// opening balance (in cents).
func CreateTestAccount(t *testing.T, db *gorm.DB, accountType models.AccountType, openingBalance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           accountType,
		Currency:       "PHP",
		OpeningBalance: openingBalance,
		IsActive:       true,
	}
	if accountType == models.AccountTypeCredit {
		limit := int64(500000) // 5000.00
		account.CreditLimit = &limit
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with the given direction.
func CreateTestCategory(t *testing.T, db *gorm.DB, direction models.CategoryDirection) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:      fmt.Sprintf("Test Category %d", nextID()),
		Direction: direction,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount
// (in cents) on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AccountID: accountID,
		Type:      txType,
		Amount:    amount,
		Date:      date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Day returns UTC midnight of the given calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

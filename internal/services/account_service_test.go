package services

import (
	"testing"
	"time"

	"accrue/internal/models"
	"accrue/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("creates_cash_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account, err := svc.CreateAccount(CreateAccountParams{
			Name:           "Wallet",
			Type:           models.AccountTypeCash,
			OpeningBalance: 100000,
		})
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.Currency != "PHP" {
			t.Errorf("expected default currency PHP, got %s", account.Currency)
		}
		if account.Balance != 100000 {
			t.Errorf("expected balance 100000 with no transactions, got %d", account.Balance)
		}
	})

	t.Run("creates_credit_account_with_billing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		limit := int64(500000)
		cycle, due := 15, 5
		account, err := svc.CreateAccount(CreateAccountParams{
			Name:            "Visa",
			Type:            models.AccountTypeCredit,
			CreditLimit:     &limit,
			BillingCycleDay: &cycle,
			PaymentDueDay:   &due,
		})
		testutil.AssertNoError(t, err)

		if account.Balance != 0 {
			t.Errorf("expected zero owed on a fresh credit account, got %d", account.Balance)
		}
		if account.CreditLimit == nil || *account.CreditLimit != limit {
			t.Errorf("expected credit limit %d, got %v", limit, account.CreditLimit)
		}
	})

	t.Run("invalid_account_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(CreateAccountParams{Name: "X", Type: "crypto"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(CreateAccountParams{Type: models.AccountTypeCash})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		_, err := svc.CreateAccount(CreateAccountParams{
			Name: "X", Type: models.AccountTypeCash, Currency: "ZZZ",
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("credit_fields_rejected_on_cash_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		limit := int64(100000)
		_, err := svc.CreateAccount(CreateAccountParams{
			Name: "Wallet", Type: models.AccountTypeCash, CreditLimit: &limit,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("billing_day_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		day := 32
		_, err := svc.CreateAccount(CreateAccountParams{
			Name: "Visa", Type: models.AccountTypeCredit, BillingCycleDay: &day,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAccountBalance(t *testing.T) {
	t.Run("cash_account_scenario", func(t *testing.T) {
		// Wallet: opening 1000.00, income 500.00, expense 200.00 -> 1300.00
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 100000)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeIncome, 50000, testutil.Day(2026, time.March, 1))
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 20000, testutil.Day(2026, time.March, 2))

		balance, err := svc.AccountBalance(account)
		testutil.AssertNoError(t, err)
		if balance != 130000 {
			t.Errorf("expected balance 130000, got %d", balance)
		}
	})

	t.Run("credit_account_scenario", func(t *testing.T) {
		// Credit card: expense 300.00, payment 100.00 -> 200.00 owed.
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCredit, 0)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 30000, testutil.Day(2026, time.March, 1))
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeIncome, 10000, testutil.Day(2026, time.March, 5))

		balance, err := svc.AccountBalance(account)
		testutil.AssertNoError(t, err)
		if balance != 20000 {
			t.Errorf("expected 20000 owed, got %d", balance)
		}
	})

	t.Run("credit_ignores_opening_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCredit, 99999)
		balance, err := svc.AccountBalance(account)
		testutil.AssertNoError(t, err)
		if balance != 0 {
			t.Errorf("expected 0 owed regardless of opening balance, got %d", balance)
		}
	})

	t.Run("empty_history_returns_opening_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeSavings, 42500)
		balance, err := svc.AccountBalance(account)
		testutil.AssertNoError(t, err)
		if balance != 42500 {
			t.Errorf("expected 42500, got %d", balance)
		}
	})
}

func TestNetWorth(t *testing.T) {
	t.Run("assets_minus_credit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		cash := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 100000)
		credit := testutil.CreateTestAccount(t, db, models.AccountTypeCredit, 0)
		testutil.CreateTestTransaction(t, db, cash.ID, models.TransactionTypeIncome, 25000, testutil.Day(2026, time.April, 1))
		testutil.CreateTestTransaction(t, db, credit.ID, models.TransactionTypeExpense, 40000, testutil.Day(2026, time.April, 2))

		// 1250.00 in assets minus 400.00 owed.
		total, err := svc.NetWorth()
		testutil.AssertNoError(t, err)
		if total != 85000 {
			t.Errorf("expected net worth 85000, got %d", total)
		}
	})

	t.Run("excludes_archived_accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		active := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 10000)
		archived := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 90000)
		_ = active
		testutil.AssertNoError(t, svc.ArchiveAccount(archived.ID))

		total, err := svc.NetWorth()
		testutil.AssertNoError(t, err)
		if total != 10000 {
			t.Errorf("expected net worth 10000, got %d", total)
		}
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("updates_name_and_opening_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		name := "Renamed"
		opening := int64(5000)
		updated, err := svc.UpdateAccount(account.ID, UpdateAccountParams{Name: &name, OpeningBalance: &opening})
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" {
			t.Errorf("expected name Renamed, got %s", updated.Name)
		}
		if updated.Balance != 5000 {
			t.Errorf("expected balance 5000 after opening balance change, got %d", updated.Balance)
		}
	})

	t.Run("credit_fields_ignored_on_cash_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		limit := int64(100000)
		updated, err := svc.UpdateAccount(account.ID, UpdateAccountParams{CreditLimit: &limit})
		testutil.AssertNoError(t, err)
		if updated.CreditLimit != nil {
			t.Errorf("expected credit limit to stay unset, got %v", *updated.CreditLimit)
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		name := "X"
		_, err := svc.UpdateAccount("7a0911a0-0000-7000-8000-000000000000", UpdateAccountParams{Name: &name})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestArchiveAccount(t *testing.T) {
	t.Run("archive_and_restore", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeDebit, 1000)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 500, testutil.Day(2026, time.May, 1))

		testutil.AssertNoError(t, svc.ArchiveAccount(account.ID))

		archived, err := svc.GetAccount(account.ID)
		testutil.AssertNoError(t, err)
		if archived.IsActive {
			t.Error("expected account to be inactive after archive")
		}

		// Archiving must not touch the transaction history.
		var count int64
		if err := db.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 transaction to survive archive, got %d", count)
		}

		testutil.AssertNoError(t, svc.RestoreAccount(account.ID))
		restored, err := svc.GetAccount(account.ID)
		testutil.AssertNoError(t, err)
		if !restored.IsActive {
			t.Error("expected account to be active after restore")
		}
	})

	t.Run("archived_accounts_hidden_from_default_listing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		visible := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		hidden := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		testutil.AssertNoError(t, svc.ArchiveAccount(hidden.ID))

		accounts, err := svc.ListAccounts(false)
		testutil.AssertNoError(t, err)
		if len(accounts) != 1 || accounts[0].ID != visible.ID {
			t.Errorf("expected only the active account, got %d accounts", len(accounts))
		}

		all, err := svc.ListAccounts(true)
		testutil.AssertNoError(t, err)
		if len(all) != 2 {
			t.Errorf("expected 2 accounts with includeInactive, got %d", len(all))
		}
	})
}

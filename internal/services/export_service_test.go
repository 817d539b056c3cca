package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"accrue/internal/models"
	"accrue/internal/testutil"
)

func TestExportTransactionsCSV(t *testing.T) {
	t.Run("writes_header_and_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, accountSvc)
		svc := NewExportService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		category := testutil.CreateTestCategory(t, db, models.CategoryDirectionExpense)
		tx, err := txSvc.CreateTransaction(CreateTransactionParams{
			AccountID:  account.ID,
			CategoryID: &category.ID,
			Type:       models.TransactionTypeExpense,
			Amount:     123456,
			Date:       testutil.Day(2026, time.June, 10),
			Notes:      "rent",
		})
		testutil.AssertNoError(t, err)

		var buf bytes.Buffer
		testutil.AssertNoError(t, svc.ExportTransactionsCSV(&buf))

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected header plus 1 row, got %d records", len(records))
		}

		wantHeader := []string{"id", "account", "category", "type", "amount", "date", "notes", "is_recurring"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Errorf("header column %d: expected %s, got %s", i, col, records[0][i])
			}
		}

		row := records[1]
		if row[0] != tx.ID {
			t.Errorf("expected id %s, got %s", tx.ID, row[0])
		}
		if row[1] != account.Name || row[2] != category.Name {
			t.Errorf("unexpected names: %s / %s", row[1], row[2])
		}
		if row[3] != "expense" || row[4] != "1234.56" || row[5] != "2026-06-10" {
			t.Errorf("unexpected row values: %v", row)
		}
		if row[6] != "rent" || row[7] != "false" {
			t.Errorf("unexpected notes or recurring flag: %v", row)
		}
	})

	t.Run("quotes_commas_and_quotes_in_notes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		accountSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, accountSvc)
		svc := NewExportService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		notes := `groceries, veggies and "fancy" cheese`
		_, err := txSvc.CreateTransaction(CreateTransactionParams{
			AccountID: account.ID,
			Type:      models.TransactionTypeExpense,
			Amount:    500,
			Date:      testutil.Day(2026, time.June, 1),
			Notes:     notes,
		})
		testutil.AssertNoError(t, err)

		var buf bytes.Buffer
		testutil.AssertNoError(t, svc.ExportTransactionsCSV(&buf))

		records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected header plus 1 row, got %d", len(records))
		}
		if records[1][6] != notes {
			t.Errorf("notes did not survive the round trip: %q", records[1][6])
		}
		if !strings.Contains(buf.String(), `"groceries, veggies and ""fancy"" cheese"`) {
			t.Error("expected the notes field to be quoted on the wire")
		}
	})

	t.Run("orders_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExportService(db)

		account := testutil.CreateTestAccount(t, db, models.AccountTypeCash, 0)
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 100, testutil.Day(2026, time.June, 1))
		testutil.CreateTestTransaction(t, db, account.ID, models.TransactionTypeExpense, 200, testutil.Day(2026, time.June, 9))

		var buf bytes.Buffer
		testutil.AssertNoError(t, svc.ExportTransactionsCSV(&buf))

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(records))
		}
		if records[1][5] != "2026-06-09" || records[2][5] != "2026-06-01" {
			t.Errorf("unexpected date order: %s %s", records[1][5], records[2][5])
		}
	})

	t.Run("empty_store_exports_header_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExportService(db)

		var buf bytes.Buffer
		testutil.AssertNoError(t, svc.ExportTransactionsCSV(&buf))

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("expected header only, got %d records", len(records))
		}
	})
}

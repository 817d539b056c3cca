package database

import (
	"fmt"
	"io"
	"os"

	"accrue/internal/logger"
	"accrue/internal/models"

	"gorm.io/gorm"
)

// Backup copies the database file to dst. The copy is whole-file; there is
// no partial or incremental backup.
func (m *Manager) Backup(dst string) error {
	if err := copyFile(m.path, dst); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	logger.Get().Infof("Backed up database to %s", dst)
	return nil
}

// Restore replaces the database file with the file at src. The caller must
// reopen the store afterwards; the manager's connection is closed here so
// the copy does not race an open writer.
func (m *Manager) Restore(src string) error {
	if err := m.Close(); err != nil {
		return fmt.Errorf("restore failed to close store: %w", err)
	}
	if err := copyFile(src, m.path); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	logger.Get().Infof("Restored database from %s", src)
	return nil
}

// Reset deletes all ledger rows and reseeds the default categories.
func (m *Manager) Reset() error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		// Children before parents so foreign keys stay satisfied.
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Transfer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Account{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Category{}).Error
	})
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	logger.Get().Info("All data cleared")
	return m.Seed()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

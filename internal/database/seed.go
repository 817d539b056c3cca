package database

import (
	"fmt"

	"accrue/internal/logger"
	"accrue/internal/models"
)

// defaultCategories is the fixed set seeded on first run: 4 income and 9
// expense categories.
var defaultCategories = []models.Category{
	{Name: "Salary", Direction: models.CategoryDirectionIncome, Icon: "💼"},
	{Name: "Freelance", Direction: models.CategoryDirectionIncome, Icon: "💻"},
	{Name: "Investments", Direction: models.CategoryDirectionIncome, Icon: "📈"},
	{Name: "Other Income", Direction: models.CategoryDirectionIncome, Icon: "💰"},
	{Name: "Food & Dining", Direction: models.CategoryDirectionExpense, Icon: "🍽️"},
	{Name: "Transportation", Direction: models.CategoryDirectionExpense, Icon: "🚗"},
	{Name: "Shopping", Direction: models.CategoryDirectionExpense, Icon: "🛍️"},
	{Name: "Utilities", Direction: models.CategoryDirectionExpense, Icon: "💡"},
	{Name: "Entertainment", Direction: models.CategoryDirectionExpense, Icon: "🎬"},
	{Name: "Health", Direction: models.CategoryDirectionExpense, Icon: "🏥"},
	{Name: "Education", Direction: models.CategoryDirectionExpense, Icon: "📚"},
	{Name: "Housing", Direction: models.CategoryDirectionExpense, Icon: "🏠"},
	{Name: "Other Expense", Direction: models.CategoryDirectionExpense, Icon: "💸"},
}

// Seed populates the category table with the default set when it is empty.
// Running it against an already-seeded database is a no-op.
func (m *Manager) Seed() error {
	var count int64
	if err := m.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := make([]models.Category, len(defaultCategories))
	copy(seed, defaultCategories)
	if err := m.db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	logger.Get().Infof("Seeded %d default categories", len(seed))
	return nil
}

package models

// CategoryDirection represents whether a category applies to income,
// expense, or both.
type CategoryDirection string

const (
	CategoryDirectionIncome  CategoryDirection = "income"
	CategoryDirectionExpense CategoryDirection = "expense"
	CategoryDirectionBoth    CategoryDirection = "both"
)

// Category represents a transaction category. Archived categories stay
// referenceable by historical transactions but are excluded from active
// pickers.
type Category struct {
	Base
	Name       string            `gorm:"not null" json:"name"`
	Direction  CategoryDirection `gorm:"not null" json:"direction"`
	Icon       string            `json:"icon,omitempty"`
	IsArchived bool              `gorm:"not null;default:false" json:"is_archived"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

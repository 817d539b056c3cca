package models

import "time"

// TransferType represents the type of transfer
type TransferType string

const (
	TransferTypeRegular       TransferType = "regular"
	TransferTypeCreditPayment TransferType = "credit_payment"
)

// Transfer represents money moved between two accounts. A transfer owns
// exactly two transaction legs referencing it: an expense leg on the source
// account and an income leg on the destination account, both carrying the
// transfer amount and no category. Deleting the transfer or either leg
// removes the whole pairing.
type Transfer struct {
	Base
	FromAccountID string       `gorm:"type:uuid;not null" json:"from_account_id"`
	ToAccountID   string       `gorm:"type:uuid;not null" json:"to_account_id"`
	Amount        int64        `gorm:"not null" json:"amount"`
	Date          time.Time    `gorm:"not null" json:"date"`
	Notes         string       `json:"notes,omitempty"`
	Type          TransferType `gorm:"column:transfer_type;not null;default:'regular'" json:"transfer_type"`

	// Relationships
	FromAccount Account       `gorm:"foreignKey:FromAccountID" json:"-"`
	ToAccount   Account       `gorm:"foreignKey:ToAccountID" json:"-"`
	Legs        []Transaction `gorm:"foreignKey:TransferID" json:"legs,omitempty"`
}

package account

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeChecking Type = "checking"
	TypeSavings  Type = "savings"
)

func (t Type) Valid() bool {
	return t == TypeChecking || t == TypeSavings
}

// Account is a bank account tracked for its balance.
type Account struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BankName      string
	AccountNumber string
	Type          Type
	Balance       int64 // cents
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

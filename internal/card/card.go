package card

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// Card is a payment card. For credit cards CurrentBalance is the usage
// against Limit, recomputable from the linked expense transactions; for
// debit cards it is the available funds.
type Card struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           Type
	Bank           string
	LastFour       string
	Limit          int64 // cents, credit only
	CurrentBalance int64 // cents
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

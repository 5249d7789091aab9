package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// Entry is one record in the ledger's append-only log. The variant set is
// closed: OpenAccount, CloseAccount, and Transaction. The ledger dispatches
// with an exhaustive type switch, so a new variant must be threaded through
// validation and apply to compile into useful behavior.
type Entry interface {
	// EntryDate is the effective date of the entry.
	EntryDate() time.Time

	sealed()
}

// OpenAccount adds a new account to the directory. Reopening an existing
// account id is an invariant violation.
type OpenAccount struct {
	Date        time.Time
	AccountID   string
	AccountType AccountType
}

func (e OpenAccount) EntryDate() time.Time { return e.Date }
func (e OpenAccount) sealed()              {}

// CloseAccount marks an account closed. Recording one currently fails with
// UnsupportedEntryError; the variant exists so the log format is stable once
// closing is implemented.
type CloseAccount struct {
	Date      time.Time
	AccountID string
}

func (e CloseAccount) EntryDate() time.Time { return e.Date }
func (e CloseAccount) sealed()              {}

// Cost is an optional valuation attached to a leg. During balance validation
// it substitutes for the leg's (quantity, asset) pair, letting a security
// movement balance against its cash cost instead of a mirrored security leg.
// It is never applied as a ledger quantity.
type Cost struct {
	Amount   decimal.Decimal
	Currency asset.Asset
}

// Leg is one signed movement of one asset in one subaccount.
type Leg struct {
	AccountID    string
	SubaccountID string
	Asset        asset.Asset
	Quantity     decimal.Decimal
	Cost         *Cost
}

// Transaction moves assets between subaccounts. Its legs must sum to exactly
// zero per asset key (see validate.go).
type Transaction struct {
	Date time.Time
	Legs []Leg
}

func (e Transaction) EntryDate() time.Time { return e.Date }
func (e Transaction) sealed()              {}

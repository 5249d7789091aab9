// Package portfolio layers account operations and balance aggregation over a
// ledger. Operations build the paired pending/settled transactions of the
// asset lifecycle; balances are read-only valuations over subaccount
// snapshots.
package portfolio

import (
	"strings"
	"time"

	"github.com/roboadvisor-dev/roboadvisor/internal/ledger"
)

// ExternalBankID is the hidden counterparty account for deposits and
// withdrawals. Ids with the "__" prefix never appear in the public directory.
const ExternalBankID = "__external_bank"

// Well-known subaccounts of the asset lifecycle.
const (
	SubaccountPending = "pending"
	SubaccountSettled = "settled"
	SubaccountFees    = "fees"
)

// Portfolio owns one ledger and the public account directory derived from
// it, in insertion order.
type Portfolio struct {
	ledger   *ledger.Ledger
	accounts map[string]*Account
	order    []string
}

// New creates a portfolio with its hidden external bank already open.
func New() *Portfolio {
	p := &Portfolio{
		ledger:   ledger.New(),
		accounts: make(map[string]*Account),
	}

	// Recording the bank on a fresh ledger cannot fail. Its open date is the
	// zero time so replays stay identical across runs.
	_ = p.ledger.Record(ledger.OpenAccount{
		Date:        time.Time{},
		AccountID:   ExternalBankID,
		AccountType: ledger.AccountTypeChecking,
	})
	return p
}

// OpenAccount records an OpenAccount entry and returns the account facade.
// A zero createDate defaults to today. Public ids (no "__" prefix) join the
// directory in call order.
func (p *Portfolio) OpenAccount(id string, accountType ledger.AccountType, createDate time.Time) (*Account, error) {
	if createDate.IsZero() {
		createDate = today()
	}
	err := p.ledger.Record(ledger.OpenAccount{
		Date:        createDate,
		AccountID:   id,
		AccountType: accountType,
	})
	if err != nil {
		return nil, err
	}

	account := &Account{id: id, ledger: p.ledger}
	if !strings.HasPrefix(id, "__") {
		p.accounts[id] = account
		p.order = append(p.order, id)
	}
	return account, nil
}

// Account returns a public account by id, reporting whether it exists.
func (p *Portfolio) Account(id string) (*Account, bool) {
	a, ok := p.accounts[id]
	return a, ok
}

// AccountIDs returns the public account ids in the order they were opened.
func (p *Portfolio) AccountIDs() []string {
	ids := make([]string, len(p.order))
	copy(ids, p.order)
	return ids
}

// Ledger exposes the underlying ledger for direct entry recording and
// inspection.
func (p *Portfolio) Ledger() *ledger.Ledger {
	return p.ledger
}

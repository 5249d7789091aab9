package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// AccountType classifies accounts in the ledger directory.
type AccountType string

const (
	AccountTypeUnknown   AccountType = "unknown"
	AccountTypeChecking  AccountType = "checking"
	AccountTypeSavings   AccountType = "savings"
	AccountTypeBrokerage AccountType = "brokerage"
	AccountType401a      AccountType = "401a"
	AccountType401k      AccountType = "401k"
	AccountType403b      AccountType = "403b"
	AccountType457b      AccountType = "457b"
	AccountType529       AccountType = "529"
	AccountTypeIRA       AccountType = "ira"
	AccountTypeRothIRA   AccountType = "roth-ira"
	AccountTypeRoth401k  AccountType = "roth-401k"
	AccountTypeUGMA      AccountType = "ugma"
	AccountTypeUTMA      AccountType = "utma"
)

// Holding is one asset position within a subaccount.
type Holding struct {
	Asset    asset.Asset
	Quantity decimal.Decimal
}

// Subaccount is a named bucket (pending, settled, fees, ...) of per-asset
// signed quantities within one account. Only the ledger's apply step mutates
// it. Holdings keep first-seen order so every read-side enumeration is
// deterministic.
type Subaccount struct {
	id         string
	quantities map[asset.Asset]decimal.Decimal
	order      []asset.Asset
}

// NewSubaccount creates an empty subaccount.
func NewSubaccount(id string) *Subaccount {
	return &Subaccount{
		id:         id,
		quantities: make(map[asset.Asset]decimal.Decimal),
	}
}

// ID returns the subaccount identifier.
func (s *Subaccount) ID() string { return s.id }

// Inc adds a signed quantity to the asset's running balance, starting from
// zero for an asset not yet held, and returns the prior quantity.
func (s *Subaccount) Inc(quantity decimal.Decimal, a asset.Asset) decimal.Decimal {
	prior, held := s.quantities[a]
	if !held {
		s.order = append(s.order, a)
	}
	s.quantities[a] = prior.Add(quantity)
	return prior
}

// Quantity returns the held quantity of an asset, zero if never touched.
func (s *Subaccount) Quantity(a asset.Asset) decimal.Decimal {
	return s.quantities[a]
}

// Assets returns the held positions whose asset kind is in kinds, in
// first-seen order. Distinct lots are distinct positions.
func (s *Subaccount) Assets(kinds ...asset.Kind) []Holding {
	var holdings []Holding
	for _, a := range s.order {
		for _, k := range kinds {
			if a.Kind() == k {
				holdings = append(holdings, Holding{Asset: a, Quantity: s.quantities[a]})
				break
			}
		}
	}
	return holdings
}

// Account is one entry in the ledger's account directory. Subaccounts are
// created lazily the first time a leg touches them.
type Account struct {
	ID          string
	Type        AccountType
	subaccounts map[string]*Subaccount
}

// NewAccount creates an account with no subaccounts.
func NewAccount(id string, accountType AccountType) *Account {
	return &Account{
		ID:          id,
		Type:        accountType,
		subaccounts: make(map[string]*Subaccount),
	}
}

// Subaccount returns the named subaccount, creating it if needed.
func (a *Account) Subaccount(id string) *Subaccount {
	sub, ok := a.subaccounts[id]
	if !ok {
		sub = NewSubaccount(id)
		a.subaccounts[id] = sub
	}
	return sub
}

// Get returns the named subaccount without creating it.
func (a *Account) Get(id string) (*Subaccount, bool) {
	sub, ok := a.subaccounts[id]
	return sub, ok
}

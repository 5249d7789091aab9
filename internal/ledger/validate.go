package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// validateEntry checks an entry against the current account directory before
// it is appended or applied.
func validateEntry(e Entry, accounts map[string]*Account) error {
	switch e := e.(type) {
	case OpenAccount:
		if _, open := accounts[e.AccountID]; open {
			return AccountExistsError{AccountID: e.AccountID}
		}
		return nil
	case CloseAccount:
		// Closing an unknown or already-closed account is unchecked; the
		// apply step rejects CloseAccount outright.
		return nil
	case Transaction:
		return validateTransaction(e, accounts)
	default:
		return UnsupportedEntryError{Entry: e}
	}
}

// validateTransaction enforces the two transaction invariants: every leg
// references an open account, and the legs sum to exactly zero per asset key.
//
// The balancing key for a leg is (cost.Amount, cost.Currency) when a cost is
// present, else (quantity, asset). A buy therefore balances its security leg
// against the cash legs through the cost, with no mirrored security leg.
func validateTransaction(tx Transaction, accounts map[string]*Account) error {
	for _, leg := range tx.Legs {
		if _, open := accounts[leg.AccountID]; !open {
			return UnknownAccountError{AccountID: leg.AccountID}
		}
	}

	sums := make(map[asset.Asset]decimal.Decimal)
	var order []asset.Asset
	for _, leg := range tx.Legs {
		quantity, key := leg.Quantity, leg.Asset
		if leg.Cost != nil {
			quantity, key = leg.Cost.Amount, leg.Cost.Currency
		}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] = sums[key].Add(quantity)
	}

	for _, key := range order {
		if !sums[key].IsZero() {
			return ImbalanceError{Asset: key, Residual: sums[key]}
		}
	}
	return nil
}

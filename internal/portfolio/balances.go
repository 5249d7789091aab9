package portfolio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/ledger"
)

// ErrMissingQuote reports a held asset with no price in the injected quotes.
var ErrMissingQuote = errors.New("no quote for asset")

// BalanceOptions controls how a balance snapshot is aggregated.
type BalanceOptions struct {
	// IncludePending merges pending holdings into settled ones per asset.
	IncludePending bool
	// IncludeLots is accepted but has no effect: lot-level breakdown is not
	// implemented.
	IncludeLots bool
}

// AssetAmount is one asset's currency valuation (quantity × quote).
type AssetAmount struct {
	Asset  asset.Asset
	Amount decimal.Decimal
}

// Balances is a read-side valuation view over one account's subaccounts,
// computed at construction and never written back to the ledger. Holdings
// keep the subaccounts' insertion order so valuations and downstream
// suggestions enumerate deterministically.
type Balances struct {
	cash       []ledger.Holding
	securities []ledger.Holding
}

func newBalances(account *ledger.Account, opts BalanceOptions) *Balances {
	return &Balances{
		cash:       aggregateKind(account, opts, asset.KindCurrency),
		securities: aggregateKind(account, opts, asset.KindSecurity),
	}
}

// aggregateKind starts from the settled subaccount's holdings of one kind
// and, when requested, folds the pending subaccount's holdings into them,
// defaulting a missing settled position to zero. A missing subaccount reads
// as empty.
func aggregateKind(account *ledger.Account, opts BalanceOptions, kind asset.Kind) []ledger.Holding {
	var holdings []ledger.Holding
	index := make(map[asset.Asset]int)

	if settled, ok := account.Get(SubaccountSettled); ok {
		for _, h := range settled.Assets(kind) {
			index[h.Asset] = len(holdings)
			holdings = append(holdings, h)
		}
	}

	if opts.IncludePending {
		if pending, ok := account.Get(SubaccountPending); ok {
			for _, h := range pending.Assets(kind) {
				if i, held := index[h.Asset]; held {
					holdings[i].Quantity = holdings[i].Quantity.Add(h.Quantity)
				} else {
					index[h.Asset] = len(holdings)
					holdings = append(holdings, h)
				}
			}
		}
	}

	return holdings
}

// Cash returns the aggregated currency holdings.
func (b *Balances) Cash() []ledger.Holding { return b.cash }

// Securities returns the aggregated security holdings.
func (b *Balances) Securities() []ledger.Holding { return b.securities }

// AssetQuantities returns the aggregated holdings of one kind.
func (b *Balances) AssetQuantities(kind asset.Kind) []ledger.Holding {
	switch kind {
	case asset.KindCurrency:
		return b.cash
	default:
		return b.securities
	}
}

// AssetAmounts values every holding of one kind at its quote. A held asset
// without a quote is an error.
func (b *Balances) AssetAmounts(kind asset.Kind, quotes Quotes) ([]AssetAmount, error) {
	holdings := b.AssetQuantities(kind)
	amounts := make([]AssetAmount, 0, len(holdings))
	for _, h := range holdings {
		price, ok := quotes.Lookup(h.Asset)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingQuote, h.Asset)
		}
		amounts = append(amounts, AssetAmount{Asset: h.Asset, Amount: h.Quantity.Mul(price)})
	}
	return amounts, nil
}

// Total values cash plus securities. Every held asset must be quoted;
// securities resolve through their lot-stripped symbol.
func (b *Balances) Total(quotes Quotes) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, kind := range []asset.Kind{asset.KindCurrency, asset.KindSecurity} {
		amounts, err := b.AssetAmounts(kind, quotes)
		if err != nil {
			return decimal.Zero, err
		}
		for _, a := range amounts {
			total = total.Add(a.Amount)
		}
	}
	return total, nil
}

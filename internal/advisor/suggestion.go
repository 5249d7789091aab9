// Package advisor computes trade suggestions that move an account's holdings
// toward a target allocation, from ledger balances and injected quotes.
package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// Kind discriminates the two suggestion variants.
type Kind int

const (
	KindBuy Kind = iota
	KindSell
)

func (k Kind) String() string {
	switch k {
	case KindBuy:
		return "buy"
	case KindSell:
		return "sell"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Suggestion recommends buying or selling one asset. Amount is always a
// currency valuation, never a share count.
type Suggestion struct {
	Kind   Kind
	Asset  asset.Asset
	Amount decimal.Decimal
}

// Buy builds a buy suggestion.
func Buy(a asset.Asset, amount decimal.Decimal) Suggestion {
	return Suggestion{Kind: KindBuy, Asset: a, Amount: amount}
}

// Sell builds a sell suggestion.
func Sell(a asset.Asset, amount decimal.Decimal) Suggestion {
	return Suggestion{Kind: KindSell, Asset: a, Amount: amount}
}

// Equal reports structural equality, with exact decimal comparison on the
// amount.
func (s Suggestion) Equal(o Suggestion) bool {
	return s.Kind == o.Kind && s.Asset == o.Asset && s.Amount.Equal(o.Amount)
}

func (s Suggestion) String() string {
	return fmt.Sprintf("%s %s %s", s.Kind, s.Asset, s.Amount)
}

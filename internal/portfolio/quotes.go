package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// Quotes is an injected asset→price mapping. Prices are quoted per instrument,
// never per lot: lookups strip the lot so every lot of a security resolves to
// the same price.
type Quotes map[asset.Asset]decimal.Decimal

// Lookup returns the price for an asset, reporting whether one is quoted.
func (q Quotes) Lookup(a asset.Asset) (decimal.Decimal, bool) {
	price, ok := q[a.WithoutLot()]
	return price, ok
}

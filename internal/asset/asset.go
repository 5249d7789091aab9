// Package asset models the instruments a ledger can hold: currencies and
// securities, where a security may be pinned to a specific tax lot.
package asset

import "fmt"

// Kind discriminates the two asset variants.
type Kind int

const (
	KindCurrency Kind = iota
	KindSecurity
)

func (k Kind) String() string {
	switch k {
	case KindCurrency:
		return "currency"
	case KindSecurity:
		return "security"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Asset identifies one currency or security. It is a comparable value type:
// two assets are the same holding exactly when kind, symbol, and lot all
// match, so Asset can key maps directly. Distinct lots of the same security
// are distinct assets.
type Asset struct {
	kind   Kind
	symbol string
	lot    string
}

// Currency returns the asset for a currency symbol such as "USD".
func Currency(symbol string) Asset {
	return Asset{kind: KindCurrency, symbol: symbol}
}

// Security returns the asset for a security symbol such as "VTI".
func Security(symbol string) Asset {
	return Asset{kind: KindSecurity, symbol: symbol}
}

// SecurityLot returns the asset for a specific lot of a security. An empty
// lot is the same asset as Security(symbol).
func SecurityLot(symbol, lot string) Asset {
	return Asset{kind: KindSecurity, symbol: symbol, lot: lot}
}

// Kind reports whether the asset is a currency or a security.
func (a Asset) Kind() Kind { return a.kind }

// Symbol returns the ticker or currency code.
func (a Asset) Symbol() string { return a.symbol }

// Lot returns the tax lot identifier, empty for currencies and lot-less
// securities.
func (a Asset) Lot() string { return a.lot }

// WithoutLot strips the lot so class- and quote-level lookups see one key per
// instrument. Currencies and lot-less securities are returned unchanged.
func (a Asset) WithoutLot() Asset {
	if a.lot == "" {
		return a
	}
	return Asset{kind: a.kind, symbol: a.symbol}
}

func (a Asset) String() string {
	if a.lot != "" {
		return fmt.Sprintf("%s[%s]", a.symbol, a.lot)
	}
	return a.symbol
}

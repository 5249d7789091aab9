package advisor

import (
	"errors"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/portfolio"
)

// Configuration failures. All are fatal contract violations: callers must
// provide complete configuration before asking for suggestions.
var (
	ErrMissingAccount        = errors.New("no account found")
	ErrMissingTargets        = errors.New("no targets found")
	ErrMissingPreferredAsset = errors.New("no preferred asset for class")
)

// Advisor computes suggestions for one account.
type Advisor interface {
	AccountSuggestions(accountID string) ([]Suggestion, error)
}

// Suggestions runs an advisor over every public account of a portfolio, in
// the order the accounts were opened.
func Suggestions(p *portfolio.Portfolio, a Advisor) (map[string][]Suggestion, error) {
	suggestions := make(map[string][]Suggestion)
	for _, accountID := range p.AccountIDs() {
		s, err := a.AccountSuggestions(accountID)
		if err != nil {
			return nil, err
		}
		suggestions[accountID] = append(suggestions[accountID], s...)
	}
	return suggestions, nil
}

// heldAmounts values an account's cash and security holdings, cash first,
// preserving the balance snapshot's deterministic order.
func heldAmounts(balances *portfolio.Balances, quotes portfolio.Quotes) ([]portfolio.AssetAmount, error) {
	cash, err := balances.AssetAmounts(asset.KindCurrency, quotes)
	if err != nil {
		return nil, err
	}
	securities, err := balances.AssetAmounts(asset.KindSecurity, quotes)
	if err != nil {
		return nil, err
	}
	return append(cash, securities...), nil
}

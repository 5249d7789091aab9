package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/portfolio"
)

// Target allocates a percentage of an account's total value to one
// instrument. Percentages are fractions in [0,1]; whether an account's
// targets sum to one is deliberately unchecked.
type Target struct {
	Asset   asset.Asset
	Percent decimal.Decimal
}

// SimpleAdvisor suggests trades against per-instrument targets: one Buy or
// Sell per held asset whose valuation deviates from target × total, plus a
// Buy for every targeted asset not held at all.
type SimpleAdvisor struct {
	portfolio *portfolio.Portfolio
	targets   map[string][]Target
	quotes    portfolio.Quotes
}

// NewSimpleAdvisor creates a SimpleAdvisor from per-account target lists and
// quotes. Target list order fixes the emission order of buys for unheld
// assets.
func NewSimpleAdvisor(p *portfolio.Portfolio, targets map[string][]Target, quotes portfolio.Quotes) *SimpleAdvisor {
	return &SimpleAdvisor{portfolio: p, targets: targets, quotes: quotes}
}

// AccountSuggestions computes the account's suggestions. Held assets are
// visited in balance order, then unheld targets in target order. An exact
// zero imbalance emits nothing.
func (a *SimpleAdvisor) AccountSuggestions(accountID string) ([]Suggestion, error) {
	account, ok := a.portfolio.Account(accountID)
	if !ok {
		return nil, fmt.Errorf("%w (account_id=%q)", ErrMissingAccount, accountID)
	}
	targets, ok := a.targets[accountID]
	if !ok {
		return nil, fmt.Errorf("%w (account_id=%q)", ErrMissingTargets, accountID)
	}

	balances, err := account.Balances(portfolio.BalanceOptions{IncludePending: true})
	if err != nil {
		return nil, err
	}
	total, err := balances.Total(a.quotes)
	if err != nil {
		return nil, err
	}
	amounts, err := heldAmounts(balances, a.quotes)
	if err != nil {
		return nil, err
	}

	percentByAsset := make(map[asset.Asset]decimal.Decimal, len(targets))
	for _, t := range targets {
		percentByAsset[t.Asset] = t.Percent
	}

	var suggestions []Suggestion
	held := make(map[asset.Asset]bool, len(amounts))
	for _, current := range amounts {
		held[current.Asset] = true
		targetAmount := total.Mul(percentByAsset[current.Asset])
		imbalance := targetAmount.Sub(current.Amount)
		switch {
		case imbalance.IsPositive():
			suggestions = append(suggestions, Buy(current.Asset, imbalance))
		case imbalance.IsNegative():
			suggestions = append(suggestions, Sell(current.Asset, imbalance.Neg()))
		}
	}

	for _, t := range targets {
		if !held[t.Asset] {
			suggestions = append(suggestions, Buy(t.Asset, total.Mul(t.Percent)))
		}
	}

	return suggestions, nil
}

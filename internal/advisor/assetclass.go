package advisor

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/portfolio"
)

// Classes is an injected asset→class-name mapping. Lookups strip the lot, so
// every lot of a security belongs to the instrument's class. Assets absent
// from the mapping are unclassified and always fully liquidated.
type Classes map[asset.Asset]string

// Lookup returns the class for an asset, reporting whether one is configured.
func (c Classes) Lookup(a asset.Asset) (string, bool) {
	class, ok := c[a.WithoutLot()]
	return class, ok
}

// ClassTarget allocates a percentage of an account's total value to one
// asset class.
type ClassTarget struct {
	Class   string
	Percent decimal.Decimal
}

// AssetClassAdvisor suggests trades against per-class targets. Each class has
// one preferred instrument that receives its buys and absorbs the last
// portion of its sells; other holdings of an overweight class are liquidated
// smallest first.
type AssetClassAdvisor struct {
	portfolio *portfolio.Portfolio
	preferred []asset.Asset
	classes   Classes
	targets   map[string][]ClassTarget
	quotes    portfolio.Quotes
}

// NewAssetClassAdvisor creates an AssetClassAdvisor. Target list order fixes
// the per-class emission order.
func NewAssetClassAdvisor(
	p *portfolio.Portfolio,
	preferred []asset.Asset,
	classes Classes,
	targets map[string][]ClassTarget,
	quotes portfolio.Quotes,
) *AssetClassAdvisor {
	return &AssetClassAdvisor{
		portfolio: p,
		preferred: preferred,
		classes:   classes,
		targets:   targets,
		quotes:    quotes,
	}
}

// AccountSuggestions computes the account's suggestions: per target class a
// Buy of the preferred instrument or a liquidation sequence, then a full Sell
// of every unclassified holding. An exact zero class imbalance emits nothing.
func (a *AssetClassAdvisor) AccountSuggestions(accountID string) ([]Suggestion, error) {
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

	classValues := make(map[string]decimal.Decimal)
	for _, current := range amounts {
		if class, classified := a.classes.Lookup(current.Asset); classified {
			classValues[class] = classValues[class].Add(current.Amount)
		}
	}

	preferredByClass := make(map[string]asset.Asset, len(a.preferred))
	for _, p := range a.preferred {
		if class, classified := a.classes.Lookup(p); classified {
			preferredByClass[class] = p
		}
	}

	var suggestions []Suggestion
	for _, target := range targets {
		imbalance := total.Mul(target.Percent).Sub(classValues[target.Class])
		if imbalance.IsZero() {
			continue
		}
		preferred, ok := preferredByClass[target.Class]
		if !ok {
			return nil, fmt.Errorf("%w (class=%q)", ErrMissingPreferredAsset, target.Class)
		}
		if imbalance.IsPositive() {
			suggestions = append(suggestions, Buy(preferred, imbalance))
		} else {
			suggestions = append(suggestions, a.liquidationSells(amounts, preferred, target.Class, imbalance)...)
		}
	}

	// Holdings with no configured class are liquidated outright.
	for _, current := range amounts {
		if _, classified := a.classes.Lookup(current.Asset); !classified {
			suggestions = append(suggestions, Sell(current.Asset, current.Amount))
		}
	}

	return suggestions, nil
}

// liquidationSells orders an overweight class's sells: non-preferred holdings
// ascending by valued amount, then the preferred asset at its full valuation
// so it is sold last and only for the residual. If the class's holdings
// cannot cover the imbalance, everything is sold and the shortfall is left
// unresolved.
func (a *AssetClassAdvisor) liquidationSells(
	amounts []portfolio.AssetAmount,
	preferred asset.Asset,
	class string,
	imbalance decimal.Decimal,
) []Suggestion {
	remaining := imbalance.Abs()

	var candidates []portfolio.AssetAmount
	preferredAmount := decimal.Zero
	for _, current := range amounts {
		if current.Asset == preferred {
			preferredAmount = current.Amount
			continue
		}
		if c, classified := a.classes.Lookup(current.Asset); classified && c == class {
			candidates = append(candidates, current)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Amount.LessThan(candidates[j].Amount)
	})
	candidates = append(candidates, portfolio.AssetAmount{Asset: preferred, Amount: preferredAmount})

	var sells []Suggestion
	for _, candidate := range candidates {
		sellAmount := decimal.Min(candidate.Amount, remaining)
		if sellAmount.IsPositive() {
			sells = append(sells, Sell(candidate.Asset, sellAmount))
			remaining = remaining.Sub(sellAmount)
		}
		if !remaining.IsPositive() {
			break
		}
	}
	return sells
}

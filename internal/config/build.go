package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/advisor"
	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/ledger"
	"github.com/roboadvisor-dev/roboadvisor/internal/portfolio"
)

const dateLayout = "2006-01-02"

// Asset resolves the reference to a domain asset.
func (r AssetRef) Asset() (asset.Asset, error) {
	switch {
	case r.Currency != "" && r.Symbol != "":
		return asset.Asset{}, fmt.Errorf("asset names both currency %q and symbol %q", r.Currency, r.Symbol)
	case r.Currency != "":
		if r.Lot != "" {
			return asset.Asset{}, fmt.Errorf("currency %q cannot have a lot", r.Currency)
		}
		return asset.Currency(r.Currency), nil
	case r.Symbol != "":
		return asset.SecurityLot(r.Symbol, r.Lot), nil
	default:
		return asset.Asset{}, fmt.Errorf("asset needs a currency or a symbol")
	}
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return d, nil
}

func parseOptionalDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(field, value)
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, value, err)
	}
	return d, nil
}

var accountTypes = map[string]ledger.AccountType{
	"checking":  ledger.AccountTypeChecking,
	"savings":   ledger.AccountTypeSavings,
	"brokerage": ledger.AccountTypeBrokerage,
	"401a":      ledger.AccountType401a,
	"401k":      ledger.AccountType401k,
	"403b":      ledger.AccountType403b,
	"457b":      ledger.AccountType457b,
	"529":       ledger.AccountType529,
	"ira":       ledger.AccountTypeIRA,
	"roth-ira":  ledger.AccountTypeRothIRA,
	"roth-401k": ledger.AccountTypeRoth401k,
	"ugma":      ledger.AccountTypeUGMA,
	"utma":      ledger.AccountTypeUTMA,
}

func parseAccountType(value string) (ledger.AccountType, error) {
	if value == "" {
		return ledger.AccountTypeBrokerage, nil
	}
	t, ok := accountTypes[value]
	if !ok {
		return ledger.AccountTypeUnknown, fmt.Errorf("unknown account type %q", value)
	}
	return t, nil
}

// BuildPortfolio opens the declared accounts and replays the activity in
// file order.
func (c *Config) BuildPortfolio() (*portfolio.Portfolio, error) {
	p := portfolio.New()
	for _, a := range c.Accounts {
		accountType, err := parseAccountType(a.Type)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", a.ID, err)
		}
		openDate, err := parseDate("open_date", a.OpenDate)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", a.ID, err)
		}
		if _, err := p.OpenAccount(a.ID, accountType, openDate); err != nil {
			return nil, err
		}
	}

	for i, entry := range c.Activity {
		account, ok := p.Account(entry.Account)
		if !ok {
			return nil, fmt.Errorf("activity %d references undeclared account %q", i, entry.Account)
		}
		if err := applyActivity(account, entry); err != nil {
			return nil, fmt.Errorf("activity %d (%s): %w", i, entry.Account, err)
		}
	}
	return p, nil
}

func applyActivity(account *portfolio.Account, entry Activity) error {
	switch {
	case entry.Deposit != nil:
		params, err := transferParams(entry.Deposit)
		if err != nil {
			return err
		}
		return account.Deposit(params)
	case entry.Withdraw != nil:
		params, err := transferParams(entry.Withdraw)
		if err != nil {
			return err
		}
		return account.Withdraw(params)
	case entry.Buy != nil:
		params, err := tradeParams(entry.Buy)
		if err != nil {
			return err
		}
		return account.Buy(params)
	case entry.Sell != nil:
		params, err := tradeParams(entry.Sell)
		if err != nil {
			return err
		}
		return account.Sell(params)
	default:
		return fmt.Errorf("activity needs one of deposit, withdraw, buy, sell")
	}
}

func transferParams(t *Transfer) (portfolio.TransferParams, error) {
	amount, err := parseDecimal("amount", t.Amount)
	if err != nil {
		return portfolio.TransferParams{}, err
	}
	transferDate, err := parseDate("transfer_date", t.TransferDate)
	if err != nil {
		return portfolio.TransferParams{}, err
	}
	settlementDate, err := parseDate("settlement_date", t.SettlementDate)
	if err != nil {
		return portfolio.TransferParams{}, err
	}
	return portfolio.TransferParams{
		Amount:         amount,
		Currency:       t.Currency,
		TransferDate:   transferDate,
		SettlementDate: settlementDate,
	}, nil
}

func tradeParams(t *Trade) (portfolio.TradeParams, error) {
	shares, err := parseDecimal("shares", t.Shares)
	if err != nil {
		return portfolio.TradeParams{}, err
	}
	amount, err := parseDecimal("amount", t.Amount)
	if err != nil {
		return portfolio.TradeParams{}, err
	}
	fees, err := parseOptionalDecimal("fees", t.Fees)
	if err != nil {
		return portfolio.TradeParams{}, err
	}
	tradeDate, err := parseDate("trade_date", t.TradeDate)
	if err != nil {
		return portfolio.TradeParams{}, err
	}
	settlementDate, err := parseDate("settlement_date", t.SettlementDate)
	if err != nil {
		return portfolio.TradeParams{}, err
	}
	return portfolio.TradeParams{
		Symbol:         t.Symbol,
		Shares:         shares,
		Amount:         amount,
		Fees:           fees,
		Currency:       t.Currency,
		TradeDate:      tradeDate,
		SettlementDate: settlementDate,
		Lot:            t.Lot,
	}, nil
}

// BuildQuotes resolves the quote list.
func (c *Config) BuildQuotes() (portfolio.Quotes, error) {
	quotes := make(portfolio.Quotes, len(c.Quotes))
	for _, q := range c.Quotes {
		a, err := q.Asset()
		if err != nil {
			return nil, fmt.Errorf("quote: %w", err)
		}
		price, err := parseDecimal("price", q.Price)
		if err != nil {
			return nil, fmt.Errorf("quote for %s: %w", a, err)
		}
		quotes[a] = price
	}
	return quotes, nil
}

// BuildAdvisor assembles the configured advisor over a portfolio.
func (c *Config) BuildAdvisor(p *portfolio.Portfolio) (advisor.Advisor, error) {
	quotes, err := c.BuildQuotes()
	if err != nil {
		return nil, err
	}

	switch c.Advisor {
	case AdvisorSimple:
		targets := make(map[string][]advisor.Target, len(c.Targets))
		for accountID, list := range c.Targets {
			for _, t := range list {
				a, err := t.Asset()
				if err != nil {
					return nil, fmt.Errorf("target for %q: %w", accountID, err)
				}
				percent, err := parseDecimal("percent", t.Percent)
				if err != nil {
					return nil, fmt.Errorf("target for %q (%s): %w", accountID, a, err)
				}
				targets[accountID] = append(targets[accountID], advisor.Target{Asset: a, Percent: percent})
			}
		}
		return advisor.NewSimpleAdvisor(p, targets, quotes), nil

	case AdvisorAssetClass:
		classes := make(advisor.Classes, len(c.Classes))
		for _, cl := range c.Classes {
			a, err := cl.Asset()
			if err != nil {
				return nil, fmt.Errorf("class %q: %w", cl.Class, err)
			}
			classes[a] = cl.Class
		}
		preferred := make([]asset.Asset, 0, len(c.Preferred))
		for _, ref := range c.Preferred {
			a, err := ref.Asset()
			if err != nil {
				return nil, fmt.Errorf("preferred asset: %w", err)
			}
			preferred = append(preferred, a)
		}
		targets := make(map[string][]advisor.ClassTarget, len(c.ClassTargets))
		for accountID, list := range c.ClassTargets {
			for _, t := range list {
				percent, err := parseDecimal("percent", t.Percent)
				if err != nil {
					return nil, fmt.Errorf("class target for %q (%s): %w", accountID, t.Class, err)
				}
				targets[accountID] = append(targets[accountID], advisor.ClassTarget{Class: t.Class, Percent: percent})
			}
		}
		return advisor.NewAssetClassAdvisor(p, preferred, classes, targets, quotes), nil

	default:
		return nil, fmt.Errorf("unknown advisor %q", c.Advisor)
	}
}

package portfolio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
	"github.com/roboadvisor-dev/roboadvisor/internal/ledger"
)

// Account is the operation-level facade over one ledger account. Every
// operation synthesizes two linked transactions: a pending movement at the
// trade or transfer date, then a pending→settled movement at the settlement
// date.
type Account struct {
	id     string
	ledger *ledger.Ledger
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Balances aggregates the account's current holdings. It fails if the
// account was never opened on the ledger.
func (a *Account) Balances(opts BalanceOptions) (*Balances, error) {
	ledgerAccount, ok := a.ledger.Account(a.id)
	if !ok {
		return nil, fmt.Errorf("no ledger account found (account_id=%q)", a.id)
	}
	return newBalances(ledgerAccount, opts), nil
}

// Fees returns the raw fees-subaccount currency quantities, unvalued.
func (a *Account) Fees() ([]ledger.Holding, error) {
	ledgerAccount, ok := a.ledger.Account(a.id)
	if !ok {
		return nil, fmt.Errorf("no ledger account found (account_id=%q)", a.id)
	}
	fees, ok := ledgerAccount.Get(SubaccountFees)
	if !ok {
		return nil, nil
	}
	return fees.Assets(asset.KindCurrency), nil
}

// TransferParams parameterizes a deposit or withdrawal. Currency defaults to
// USD; a zero TransferDate defaults to today and a zero SettlementDate to the
// transfer date (same-day settlement).
type TransferParams struct {
	Amount         decimal.Decimal
	Currency       string
	TransferDate   time.Time
	SettlementDate time.Time
}

func (p TransferParams) resolve() (asset.Asset, time.Time, time.Time) {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	transferDate := p.TransferDate
	if transferDate.IsZero() {
		transferDate = today()
	}
	settlementDate := p.SettlementDate
	if settlementDate.IsZero() {
		settlementDate = transferDate
	}
	return asset.Currency(currency), transferDate, settlementDate
}

// Deposit moves cash from the hidden external bank into this account:
// pending at the transfer date, pending→settled at the settlement date.
func (a *Account) Deposit(p TransferParams) error {
	currency, transferDate, settlementDate := p.resolve()

	return a.ledger.Record(
		ledger.Transaction{Date: transferDate, Legs: []ledger.Leg{
			{AccountID: ExternalBankID, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount},
		}},
		ledger.Transaction{Date: settlementDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: currency, Quantity: p.Amount},
		}},
	)
}

// Withdraw is the mirror image of Deposit.
func (a *Account) Withdraw(p TransferParams) error {
	currency, transferDate, settlementDate := p.resolve()

	return a.ledger.Record(
		ledger.Transaction{Date: transferDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount.Neg()},
			{AccountID: ExternalBankID, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount},
		}},
		ledger.Transaction{Date: settlementDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: currency, Quantity: p.Amount.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: p.Amount},
		}},
	)
}

// TradeParams parameterizes a buy or sell. Amount is the cash value of the
// trade excluding fees. Currency defaults to USD; a zero TradeDate defaults
// to today and a zero SettlementDate to the trade date. A non-empty Lot pins
// the position to a specific tax lot.
type TradeParams struct {
	Symbol         string
	Shares         decimal.Decimal
	Amount         decimal.Decimal
	Fees           decimal.Decimal
	Currency       string
	TradeDate      time.Time
	SettlementDate time.Time
	Lot            string
}

func (p TradeParams) resolve() (asset.Asset, asset.Asset, time.Time, time.Time) {
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	tradeDate := p.TradeDate
	if tradeDate.IsZero() {
		tradeDate = today()
	}
	settlementDate := p.SettlementDate
	if settlementDate.IsZero() {
		settlementDate = tradeDate
	}
	return asset.SecurityLot(p.Symbol, p.Lot), asset.Currency(currency), tradeDate, settlementDate
}

// Buy debits pending cash by amount+fees, credits the fees subaccount, and
// credits pending shares balanced through their cash cost. Settlement swaps
// the cash bookkeeping settled→pending and moves the shares pending→settled.
func (a *Account) Buy(p TradeParams) error {
	security, currency, tradeDate, settlementDate := p.resolve()
	gross := p.Amount.Add(p.Fees)

	return a.ledger.Record(
		ledger.Transaction{Date: tradeDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: gross.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountFees, Asset: currency, Quantity: p.Fees},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: security, Quantity: p.Shares,
				Cost: &ledger.Cost{Amount: p.Amount, Currency: currency}},
		}},
		ledger.Transaction{Date: settlementDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: currency, Quantity: gross.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: gross},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: security, Quantity: p.Shares.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: security, Quantity: p.Shares},
		}},
	)
}

// Sell credits pending cash by amount−fees and debits pending shares,
// balanced through a negated cash cost. Settlement mirrors Buy.
func (a *Account) Sell(p TradeParams) error {
	security, currency, tradeDate, settlementDate := p.resolve()
	net := p.Amount.Sub(p.Fees)

	return a.ledger.Record(
		ledger.Transaction{Date: tradeDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: net},
			{AccountID: a.id, SubaccountID: SubaccountFees, Asset: currency, Quantity: p.Fees},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: security, Quantity: p.Shares.Neg(),
				Cost: &ledger.Cost{Amount: p.Amount.Neg(), Currency: currency}},
		}},
		ledger.Transaction{Date: settlementDate, Legs: []ledger.Leg{
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: currency, Quantity: net.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: currency, Quantity: net},
			{AccountID: a.id, SubaccountID: SubaccountSettled, Asset: security, Quantity: p.Shares.Neg()},
			{AccountID: a.id, SubaccountID: SubaccountPending, Asset: security, Quantity: p.Shares},
		}},
	)
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

func openAccounts(ids ...string) map[string]*Account {
	accounts := make(map[string]*Account, len(ids))
	for _, id := range ids {
		accounts[id] = NewAccount(id, AccountTypeBrokerage)
	}
	return accounts
}

func TestValidateBalancedTransaction(t *testing.T) {
	usd := asset.Currency("USD")
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("-100")},
		{AccountID: "a", SubaccountID: "settled", Asset: usd, Quantity: dec("100")},
	}}
	assert.NoError(t, validateTransaction(tx, openAccounts("a")))
}

func TestValidateImbalance(t *testing.T) {
	usd := asset.Currency("USD")
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("-100")},
		{AccountID: "a", SubaccountID: "settled", Asset: usd, Quantity: dec("99.99")},
	}}
	err := validateTransaction(tx, openAccounts("a"))
	require.Error(t, err)

	var imbalance ImbalanceError
	require.ErrorAs(t, err, &imbalance)
	assert.Equal(t, usd, imbalance.Asset)
	assert.True(t, imbalance.Residual.Equal(dec("-0.01")))
}

func TestValidateCostBalancesSecurityLeg(t *testing.T) {
	usd := asset.Currency("USD")
	vti := asset.Security("VTI")

	// The security leg carries no mirrored counterpart; its cost folds into
	// the USD running sum.
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("-1009.95")},
		{AccountID: "a", SubaccountID: "fees", Asset: usd, Quantity: dec("9.95")},
		{AccountID: "a", SubaccountID: "pending", Asset: vti, Quantity: dec("4.5177"),
			Cost: &Cost{Amount: dec("1000"), Currency: usd}},
	}}
	assert.NoError(t, validateTransaction(tx, openAccounts("a")))

	// Without the cost, the security and the cash each leave a residual.
	tx.Legs[2].Cost = nil
	err := validateTransaction(tx, openAccounts("a"))
	require.Error(t, err)
	var imbalance ImbalanceError
	require.ErrorAs(t, err, &imbalance)
	assert.Equal(t, usd, imbalance.Asset)
	assert.True(t, imbalance.Residual.Equal(dec("-1000")))
}

func TestValidateSellCostIsNegative(t *testing.T) {
	usd := asset.Currency("USD")
	vti := asset.Security("VTI")
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("190")},
		{AccountID: "a", SubaccountID: "fees", Asset: usd, Quantity: dec("10")},
		{AccountID: "a", SubaccountID: "pending", Asset: vti, Quantity: dec("-1"),
			Cost: &Cost{Amount: dec("-200"), Currency: usd}},
	}}
	assert.NoError(t, validateTransaction(tx, openAccounts("a")))
}

func TestValidateUnknownLegAccount(t *testing.T) {
	usd := asset.Currency("USD")
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("-1")},
		{AccountID: "nope", SubaccountID: "pending", Asset: usd, Quantity: dec("1")},
	}}
	err := validateTransaction(tx, openAccounts("a"))
	require.Error(t, err)
	var unknown UnknownAccountError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.AccountID)
}

func TestValidatePerAssetSums(t *testing.T) {
	usd := asset.Currency("USD")
	eur := asset.Currency("EUR")

	// Each asset key must balance independently.
	tx := Transaction{Date: date(2022, 1, 1), Legs: []Leg{
		{AccountID: "a", SubaccountID: "pending", Asset: usd, Quantity: dec("-5")},
		{AccountID: "a", SubaccountID: "settled", Asset: usd, Quantity: dec("5")},
		{AccountID: "a", SubaccountID: "pending", Asset: eur, Quantity: dec("7")},
	}}
	err := validateTransaction(tx, openAccounts("a"))
	require.Error(t, err)
	var imbalance ImbalanceError
	require.ErrorAs(t, err, &imbalance)
	assert.Equal(t, eur, imbalance.Asset)
	assert.True(t, imbalance.Residual.Equal(dec("7")))
}

func TestValidateOpenAccount(t *testing.T) {
	open := OpenAccount{Date: date(2022, 1, 1), AccountID: "a", AccountType: AccountTypeChecking}
	assert.NoError(t, validateEntry(open, openAccounts()))
	assert.Error(t, validateEntry(open, openAccounts("a")))
}

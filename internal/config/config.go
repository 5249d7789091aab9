// Package config loads the YAML run file describing a reproducible advisory
// run: accounts, their activity, quotes, and target allocations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Advisor selection values for Config.Advisor.
const (
	AdvisorSimple     = "simple"
	AdvisorAssetClass = "asset-class"
)

// Config is the top-level run file. Decimal-valued fields are strings so
// precision survives YAML round-trips; they are parsed exactly when the run
// is built. Target percentages are fractions in [0,1]; whether an account's
// targets sum to one is deliberately unchecked.
type Config struct {
	Advisor      string                   `yaml:"advisor"`
	Accounts     []Account                `yaml:"accounts"`
	Activity     []Activity               `yaml:"activity,omitempty"`
	Quotes       []Quote                  `yaml:"quotes"`
	Targets      map[string][]Target      `yaml:"targets,omitempty"`
	Classes      []Class                  `yaml:"classes,omitempty"`
	Preferred    []AssetRef               `yaml:"preferred,omitempty"`
	ClassTargets map[string][]ClassTarget `yaml:"class_targets,omitempty"`
}

// AssetRef names one asset: exactly one of currency or symbol, with an
// optional lot for securities.
type AssetRef struct {
	Currency string `yaml:"currency,omitempty"`
	Symbol   string `yaml:"symbol,omitempty"`
	Lot      string `yaml:"lot,omitempty"`
}

// Account declares a portfolio account to open before replaying activity.
// An omitted open_date defaults to today; set it to keep replays identical
// across days.
type Account struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type,omitempty"` // defaults to brokerage
	OpenDate string `yaml:"open_date,omitempty"`
}

// Activity is one account operation. Exactly one of the operation fields
// must be set.
type Activity struct {
	Account  string    `yaml:"account"`
	Deposit  *Transfer `yaml:"deposit,omitempty"`
	Withdraw *Transfer `yaml:"withdraw,omitempty"`
	Buy      *Trade    `yaml:"buy,omitempty"`
	Sell     *Trade    `yaml:"sell,omitempty"`
}

// Transfer parameterizes a deposit or withdrawal. Dates are "YYYY-MM-DD";
// omitted dates follow the operation defaults (today, then same-day
// settlement).
type Transfer struct {
	Amount         string `yaml:"amount"`
	Currency       string `yaml:"currency,omitempty"`
	TransferDate   string `yaml:"transfer_date,omitempty"`
	SettlementDate string `yaml:"settlement_date,omitempty"`
}

// Trade parameterizes a buy or sell.
type Trade struct {
	Symbol         string `yaml:"symbol"`
	Shares         string `yaml:"shares"`
	Amount         string `yaml:"amount"`
	Fees           string `yaml:"fees,omitempty"`
	Currency       string `yaml:"currency,omitempty"`
	TradeDate      string `yaml:"trade_date,omitempty"`
	SettlementDate string `yaml:"settlement_date,omitempty"`
	Lot            string `yaml:"lot,omitempty"`
}

// Quote prices one asset.
type Quote struct {
	AssetRef `yaml:",inline"`
	Price    string `yaml:"price"`
}

// Target allocates a percentage to one instrument (simple advisor).
type Target struct {
	AssetRef `yaml:",inline"`
	Percent  string `yaml:"percent"`
}

// Class assigns one asset to a class (asset-class advisor).
type Class struct {
	AssetRef `yaml:",inline"`
	Class    string `yaml:"class"`
}

// ClassTarget allocates a percentage to one class (asset-class advisor).
type ClassTarget struct {
	Class   string `yaml:"class"`
	Percent string `yaml:"percent"`
}

// Load reads a run file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and structurally checks a run file.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	switch cfg.Advisor {
	case AdvisorSimple, AdvisorAssetClass:
	case "":
		return nil, fmt.Errorf("run file must name an advisor (%q or %q)", AdvisorSimple, AdvisorAssetClass)
	default:
		return nil, fmt.Errorf("unknown advisor %q", cfg.Advisor)
	}
	return &cfg, nil
}

package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roboadvisor-dev/roboadvisor/internal/asset"
)

// ImbalanceError reports a transaction whose legs do not sum to zero for one
// asset key.
type ImbalanceError struct {
	Asset    asset.Asset
	Residual decimal.Decimal
}

func (e ImbalanceError) Error() string {
	return fmt.Sprintf("transaction has an imbalance (asset=%s, residual=%s)", e.Asset, e.Residual)
}

// UnknownAccountError reports a leg referencing an account that was never
// opened.
type UnknownAccountError struct {
	AccountID string
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("transaction references unknown account %q", e.AccountID)
}

// AccountExistsError reports an OpenAccount for an id that is already open.
type AccountExistsError struct {
	AccountID string
}

func (e AccountExistsError) Error() string {
	return fmt.Sprintf("account %q is already open", e.AccountID)
}

// UnsupportedEntryError reports an entry variant the ledger cannot apply yet.
type UnsupportedEntryError struct {
	Entry Entry
}

func (e UnsupportedEntryError) Error() string {
	return fmt.Sprintf("unsupported entry type %T", e.Entry)
}

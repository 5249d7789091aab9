// Package ledger implements an append-only double-entry ledger over an
// in-memory account directory. Entries are validated, logged, and applied one
// at a time; once recorded they are never mutated or removed.
package ledger

// Ledger owns the entry log and the account directory derived from it. It is
// not safe for concurrent use; a Record call is not atomic across its
// entries, so concurrent callers need an external lock.
type Ledger struct {
	accounts map[string]*Account
	entries  []Entry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Record validates, logs, and applies each entry in call order.
//
// Processing is per-entry, not transactional across the batch: if entry N
// fails, entries 0..N-1 stay applied and logged and the error reports only
// the failing entry. Callers that need all-or-nothing batches must validate
// up front themselves.
func (l *Ledger) Record(entries ...Entry) error {
	for _, entry := range entries {
		if err := validateEntry(entry, l.accounts); err != nil {
			return err
		}
		l.entries = append(l.entries, entry)
		if err := l.apply(entry); err != nil {
			return err
		}
	}
	return nil
}

// apply dispatches an already-validated entry. The switch is exhaustive over
// the sealed Entry variants.
func (l *Ledger) apply(entry Entry) error {
	switch e := entry.(type) {
	case OpenAccount:
		l.accounts[e.AccountID] = NewAccount(e.AccountID, e.AccountType)
		return nil
	case CloseAccount:
		return UnsupportedEntryError{Entry: e}
	case Transaction:
		for _, leg := range e.Legs {
			account := l.accounts[leg.AccountID]
			account.Subaccount(leg.SubaccountID).Inc(leg.Quantity, leg.Asset)
		}
		return nil
	default:
		return UnsupportedEntryError{Entry: e}
	}
}

// Account returns the account for an id, reporting whether it exists.
func (l *Ledger) Account(id string) (*Account, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

// Entries returns the recorded log in order. The slice is shared; callers
// must not modify it.
func (l *Ledger) Entries() []Entry {
	return l.entries
}

package monies

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Load constructs a Ledger from the persistence collaborator: load, then
// normalize, then ready. Malformed stored amounts are repaired to zero by
// the Money normalizer during decoding; a key that is absent or entirely
// unreadable leaves its slice empty rather than failing the whole load, so
// a damaged vault still opens.
func Load(store Store) (*Ledger, error) {
	l := NewLedger(store)

	if err := loadKey(store, KeyAccounts, &l.accounts); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeyLoans, &l.loans); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeyBills, &l.bills); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeySecurity, &l.security); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeyOnboarded, &l.onboarded); err != nil {
		return nil, err
	}
	if err := loadKey(store, KeyUsername, &l.username); err != nil {
		return nil, err
	}
	var week string
	if err := loadKey(store, KeyPayWeek, &week); err != nil {
		return nil, err
	}
	if week != "" {
		l.payWeek = week
	}
	return l, nil
}

// loadKey decodes the value stored under key into v. Absent keys are
// skipped; a value that does not decode is logged and ignored, leaving v at
// its zero value.
func loadKey(store Store, key string, v any) error {
	raw, ok, err := store.Get(key)
	if err != nil {
		return fmt.Errorf("could not load %q: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("ignoring malformed value for %q: %v", key, err)
	}
	return nil
}

// persist writes the current in-memory form of each named key to the store.
// All keys are attempted even when one fails; the joined error is surfaced
// to the caller and the in-memory ledger stays authoritative either way.
// Callers must hold l.mu.
func (l *Ledger) persist(keys ...string) error {
	var errs error
	for _, key := range keys {
		raw, err := json.Marshal(l.valueFor(key))
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not encode %q: %w", key, err))
			continue
		}
		if err := l.store.Set(key, raw); err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not save %q: %w", key, err))
		}
	}
	return errs
}

// valueFor maps a storage key to the state persisted under it. Nil slices
// are stored as empty arrays, matching the shape a reset writes.
func (l *Ledger) valueFor(key string) any {
	switch key {
	case KeyAccounts:
		if l.accounts == nil {
			return []Account{}
		}
		return l.accounts
	case KeyTransactions:
		if l.transactions == nil {
			return []Transaction{}
		}
		return l.transactions
	case KeyLoans:
		if l.loans == nil {
			return []Loan{}
		}
		return l.loans
	case KeyBills:
		if l.bills == nil {
			return []Bill{}
		}
		return l.bills
	case KeySecurity:
		return l.security
	case KeyOnboarded:
		return l.onboarded
	case KeyUsername:
		return l.username
	case KeyPayWeek:
		return l.payWeek
	default:
		panic("unknown storage key " + key)
	}
}

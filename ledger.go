package monies

import (
	"iter"
	"log"
	"strconv"
	"sync"
	"time"
)

// Ledger is the in-memory store of accounts, transactions, loans and
// recurring bills. It is constructed once at startup by the composition root
// (see Load), owned by it, and passed by pointer to every consumer.
//
// There is exactly one interactive writer at a time by design; the mutex is
// the single-writer discipline that keeps "each mutation sees the latest
// prior state" true if a second writer ever appears. Memory is updated
// synchronously before the persistence write is issued, so readers observe
// new state immediately regardless of persistence completion.
type Ledger struct {
	mu    sync.Mutex
	store Store

	accounts     []Account
	transactions []Transaction // newest first; insertion order is the display tie-break
	loans        []Loan
	bills        []Bill

	username  string
	payWeek   string
	security  bool
	onboarded bool

	now func() time.Time
}

// NewLedger creates an empty ledger persisting through store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now, payWeek: "4"}
}

// newID returns an opaque id, monotonic-ish via creation time.
func (l *Ledger) newID() string {
	return strconv.FormatInt(l.now().UnixMilli(), 10)
}

// prepend adds a transaction to the front of the log (newest first).
func (l *Ledger) prepend(tx Transaction) {
	l.transactions = append([]Transaction{tx}, l.transactions...)
}

// RecordIncome credits amount to the named account, creating a bank account
// with that exact name if none exists. Account names match case-sensitively.
// Amount validation is the caller's job (ParseAmount); the operation itself
// accepts what it is given.
func (l *Ledger) RecordIncome(account string, amount Money, note string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for i := range l.accounts {
		if l.accounts[i].Name == account {
			l.accounts[i].Balance = l.accounts[i].Balance.Add(amount)
			found = true
			break
		}
	}
	if !found {
		l.accounts = append(l.accounts, Account{
			ID:      l.newID(),
			Name:    account,
			Balance: amount,
			Kind:    KindBank,
		})
	}

	l.prepend(Transaction{
		ID:        l.newID(),
		Direction: In,
		Category:  CategoryIncome,
		Amount:    amount,
		Date:      l.now(),
		Account:   account,
		Note:      note,
	})
	log.Printf("income %s into %q", amount, account)
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans)
}

// RecordExpense withdraws amount across accounts in store order and appends
// an out transaction with the given category.
func (l *Ledger) RecordExpense(category string, amount Money, note string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allocateGreedyInOrder(l.accounts, amount)
	l.prepend(Transaction{
		ID:        l.newID(),
		Direction: Out,
		Category:  category,
		Amount:    amount,
		Date:      l.now(),
		Note:      note,
	})
	log.Printf("expense %s on %q", amount, category)
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans)
}

// RecordLoan registers a new peer loan and credits the principal to the
// first account in store order (firstAccountOrDefault policy). With no
// accounts the principal is tracked as debt but lands on no balance.
func (l *Ledger) RecordLoan(name string, principal Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	loan := Loan{
		ID:        l.newID(),
		Name:      name,
		Principal: principal,
		Date:      l.now(),
	}
	l.loans = append(l.loans, loan)

	if acc := firstAccountOrDefault(l.accounts); acc != nil {
		acc.Balance = acc.Balance.Add(principal)
	}
	l.prepend(Transaction{
		ID:        l.newID(),
		Direction: In,
		Category:  CategoryLoanIn,
		Amount:    principal,
		Date:      l.now(),
		Note:      "Loan: " + name,
	})
	log.Printf("loan %s from %q", principal, name)
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans)
}

// RepayLoan records a repayment against the loan with the given id. An
// unknown id is a silent no-op: no state change, no error, by design.
// Settled flips to true exactly when cumulative payments reach the
// principal, and never reverts.
func (l *Ledger) RepayLoan(id string, amount Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var loan *Loan
	for i := range l.loans {
		if l.loans[i].ID == id {
			loan = &l.loans[i]
			break
		}
	}
	if loan == nil {
		return nil
	}

	loan.Paid = loan.Paid.Add(amount)
	if loan.Paid.GreaterThanOrEqual(loan.Principal) {
		loan.Settled = true
	}

	allocateGreedyInOrder(l.accounts, amount)
	l.prepend(Transaction{
		ID:            l.newID(),
		Direction:     Out,
		Category:      CategoryLoanOut,
		Amount:        amount,
		Date:          l.now(),
		RelatedLoanID: id,
		Note:          "Repayment",
	})
	log.Printf("repayment %s on loan %q", amount, loan.Name)
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans)
}

// SetSecurity toggles the biometric-lock flag. It gates presentation only,
// never ledger mutation.
func (l *Ledger) SetSecurity(enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.security = enabled
	return l.persist(KeySecurity)
}

// ResetAll clears accounts, transactions, loans, bills, the security flag
// and the onboarded flag, and persists all clears. It is idempotent.
func (l *Ledger) ResetAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.accounts = nil
	l.transactions = nil
	l.loans = nil
	l.bills = nil
	l.username = ""
	l.payWeek = "4"
	l.security = false
	l.onboarded = false
	log.Printf("ledger reset")
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans, KeyBills,
		KeySecurity, KeyOnboarded, KeyUsername, KeyPayWeek)
}

// allocateGreedyInOrder is the named withdrawal policy: deduct
// min(balance, remaining) from each account in store order, keep traversing
// after remaining reaches zero for a stable result shape, and silently drop
// any shortfall. No account goes negative through this path; an overspend
// understates the system-wide cash total instead. Returns the amount
// actually deducted.
func allocateGreedyInOrder(accounts []Account, amount Money) Money {
	remaining := amount
	for i := range accounts {
		if remaining.IsPositive() {
			deduction := accounts[i].Balance.Min(remaining)
			accounts[i].Balance = accounts[i].Balance.Sub(deduction)
			remaining = remaining.Sub(deduction)
		}
	}
	return amount.Sub(remaining)
}

// --- read access ---

// Accounts returns a copy of the accounts in store order.
func (l *Ledger) Accounts() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// Transactions returns an iterator over the log, newest first. With filters,
// a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	l.mu.Lock()
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	l.mu.Unlock()

	return func(yield func(Transaction) bool) {
		for _, tx := range txs {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Loans returns a copy of all loans, settled included.
func (l *Ledger) Loans() []Loan {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Loan, len(l.loans))
	copy(out, l.loans)
	return out
}

// FindLoan returns the loan with the given id, or ErrUnknownLoan.
func (l *Ledger) FindLoan(id string) (Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, loan := range l.loans {
		if loan.ID == id {
			return loan, nil
		}
	}
	return Loan{}, ErrUnknownLoan
}

// Bills returns a copy of the recurring bills.
func (l *Ledger) Bills() []Bill {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Bill, len(l.bills))
	copy(out, l.bills)
	return out
}

func (l *Ledger) Username() string { l.mu.Lock(); defer l.mu.Unlock(); return l.username }
func (l *Ledger) PayWeek() string  { l.mu.Lock(); defer l.mu.Unlock(); return l.payWeek }
func (l *Ledger) Security() bool   { l.mu.Lock(); defer l.mu.Unlock(); return l.security }
func (l *Ledger) Onboarded() bool  { l.mu.Lock(); defer l.mu.Unlock(); return l.onboarded }

package monies

import "log"

// Setup is the data collected by the one-time onboarding flow.
type Setup struct {
	Username string
	Accounts []string // chosen account names, in order
	Salary   Money    // monthly net income
	PayWeek  string   // "1".."4", which week of the month pay arrives
	Bills    []Bill   // amounts already normalized at the form boundary
}

// CompleteOnboarding builds the initial ledger state from setup data. Each
// chosen account starts at zero; a positive salary is credited entirely to
// the first account, or to a synthetic cash account named "Cash" when no
// accounts were chosen, and recorded as one synthetic income transaction so
// burn rate and recent activity are consistent from first launch.
//
// Re-invoking fully overwrites prior state; there are no merge semantics.
func (l *Ledger) CompleteOnboarding(s Setup) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := make([]Account, 0, len(s.Accounts))
	for _, name := range s.Accounts {
		accounts = append(accounts, Account{
			ID:   l.newID(),
			Name: name,
			Kind: KindBank,
		})
	}

	var transactions []Transaction
	if s.Salary.IsPositive() {
		target := firstAccountOrDefault(accounts)
		if target == nil {
			accounts = append(accounts, Account{
				ID:   "cash",
				Name: "Cash",
				Kind: KindCash,
			})
			target = &accounts[0]
		}
		target.Balance = s.Salary
		transactions = append(transactions, Transaction{
			ID:        l.newID(),
			Direction: In,
			Category:  CategoryIncome,
			Amount:    s.Salary,
			Date:      l.now(),
			Account:   target.Name,
			Note:      "Initial Salary",
		})
	}

	l.accounts = accounts
	l.transactions = transactions
	l.loans = nil
	l.bills = s.Bills
	l.username = s.Username
	l.payWeek = s.PayWeek
	if l.payWeek == "" {
		l.payWeek = "4"
	}
	l.onboarded = true

	log.Printf("onboarded %q with %d accounts and %d bills", s.Username, len(accounts), len(s.Bills))
	return l.persist(KeyAccounts, KeyTransactions, KeyLoans, KeyBills,
		KeyUsername, KeyPayWeek, KeyOnboarded)
}

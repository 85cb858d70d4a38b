package monies

// AccountKind tells where the cash is held.
type AccountKind string

const (
	KindBank   AccountKind = "bank"
	KindMobile AccountKind = "mobile"
	KindCash   AccountKind = "cash"
)

// Account is a place money is kept: a bank account, a mobile wallet, or
// physical cash. Its balance is mutated only by ledger operations. Names are
// unique within a ledger (case-sensitive, enforced at income-posting time).
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Balance Money       `json:"balance"`
	Kind    AccountKind `json:"type"`
}

// firstAccountOrDefault is the named policy for picking the account that
// absorbs a loan principal: the first account in store order, or none at all.
// When no account exists the principal is credited nowhere and cash-tracking
// fidelity is lost; callers that want a different policy swap this function,
// not the call sites.
func firstAccountOrDefault(accounts []Account) *Account {
	if len(accounts) == 0 {
		return nil
	}
	return &accounts[0]
}

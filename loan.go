package monies

import "time"

// Loan is money borrowed from a peer. Paid only ever grows; Settled flips to
// true the moment cumulative repayments reach the principal and never
// reverts on its own.
type Loan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Principal Money     `json:"principal"`
	Paid      Money     `json:"paid"`
	Settled   bool      `json:"isSettled"`
	Date      time.Time `json:"date"`
}

// Outstanding returns what is still owed on this loan, clamped at zero for
// display. The debt aggregation deliberately does not use this clamp, see
// TotalDebt.
func (l Loan) Outstanding() Money {
	out := l.Principal.Sub(l.Paid)
	if out.IsNegative() {
		return Money{}
	}
	return out
}

package monies

import (
	"time"
)

// billPaymentCategories are the out-transaction categories counted as
// recurring-bill payments when inferring which bills are already paid this
// month.
var billPaymentCategories = []string{CategoryRent, CategoryUtilities}

// Summary is the at-a-glance state of the ledger on a given instant. All
// figures are recomputed from the current snapshot on every read; nothing is
// cached or incrementally maintained.
type Summary struct {
	Date     time.Time
	Username string

	TotalBalance      Money // cash across all accounts
	TotalDebt         Money // outstanding on unsettled loans
	TotalMonthlyBills Money // declared monthly commitments
	PaidBills         Money // rent/utilities paid this calendar month
	RemainingBills    Money // commitments not yet covered this month
	EffectiveBalance  Money // the headline safe-to-spend figure

	Burn BurnRate
}

// NewSummary computes the summary of the ledger as seen at now.
//
// EffectiveBalance = TotalBalance - RemainingBills - TotalDebt. It may be
// negative, and negativity is meaningful: the user is overcommitted.
func NewSummary(l *Ledger, now time.Time) *Summary {
	s := &Summary{
		Date:     now,
		Username: l.Username(),
	}

	for _, acc := range l.Accounts() {
		s.TotalBalance = s.TotalBalance.Add(acc.Balance)
	}

	// Per-loan terms are deliberately not clamped to zero before summation:
	// an overpaid-but-unsettled loan would contribute a negative term.
	for _, loan := range l.Loans() {
		if loan.Settled {
			continue
		}
		s.TotalDebt = s.TotalDebt.Add(loan.Principal.Sub(loan.Paid))
	}

	for _, bill := range l.Bills() {
		s.TotalMonthlyBills = s.TotalMonthlyBills.Add(bill.Amount)
	}

	for tx := range l.Transactions(ByDirection(Out)) {
		if !tx.inMonth(now) {
			continue
		}
		for _, category := range billPaymentCategories {
			if tx.Category == category {
				s.PaidBills = s.PaidBills.Add(tx.Amount)
				break
			}
		}
	}

	s.RemainingBills = s.TotalMonthlyBills.Sub(s.PaidBills)
	if s.RemainingBills.IsNegative() {
		s.RemainingBills = Money{}
	}
	s.EffectiveBalance = s.TotalBalance.Sub(s.RemainingBills).Sub(s.TotalDebt)
	s.Burn = NewBurnRate(l, now)
	return s
}

// Health is the spending-health band derived from the burn rate.
type Health string

const (
	HealthNoActivity   Health = "No Activity"
	HealthHealthy      Health = "Healthy"
	HealthCaution      Health = "Caution"
	HealthOverspending Health = "Overspending"
)

// BurnRate reports how much of this month's non-loan income has already been
// consumed by this month's total outflows.
type BurnRate struct {
	Income   Money // in-transactions this month, loan disbursements excluded
	Expenses Money // all out-transactions this month, repayments included
	Rate     Percent
}

// NewBurnRate computes the burn rate for the calendar month of now.
//
// A month with zero recorded income reports a rate of 0 regardless of
// expenses. That keeps the division defined but masks overspending on
// no-income months; the banding still carries this through as Healthy unless
// there was no activity at all.
func NewBurnRate(l *Ledger, now time.Time) BurnRate {
	var b BurnRate
	for tx := range l.Transactions() {
		if !tx.inMonth(now) {
			continue
		}
		switch tx.Direction {
		case In:
			if tx.Category != CategoryLoanIn {
				b.Income = b.Income.Add(tx.Amount)
			}
		case Out:
			b.Expenses = b.Expenses.Add(tx.Amount)
		}
	}
	if b.Income.IsZero() {
		return b
	}
	b.Rate = Percent(b.Expenses.Div(b.Income).InexactFloat64() * 100)
	return b
}

// Health maps the rate onto the display band. A month with no income and no
// expenses overrides the numeric banding entirely.
func (b BurnRate) Health() Health {
	switch {
	case b.Income.IsZero() && b.Expenses.IsZero():
		return HealthNoActivity
	case b.Rate <= 50:
		return HealthHealthy
	case b.Rate <= 80:
		return HealthCaution
	default:
		return HealthOverspending
	}
}

// breakdownCategories is the fixed display set of the spend breakdown.
var breakdownCategories = []string{
	CategoryRent,
	CategoryUtilities,
	CategoryFood,
	CategoryEntertainment,
	CategoryLoanOut,
}

// CategorySpend is one row of the spend breakdown.
type CategorySpend struct {
	Category  string
	Label     string
	Actual    Money // all-time out-transactions in this category
	Committed Money // recurring bills classified into this category
	Displayed Money // max of the two, the anti-double-counting merge
}

// NewBreakdown computes the categorized spend view. For each category the
// displayed amount is the larger of actual spend and committed bills: an
// unpaid bill shows as the commitment, a paid one as the transaction, and a
// partial payment keeps showing the full commitment.
func NewBreakdown(l *Ledger) []CategorySpend {
	breakdown := make([]CategorySpend, 0, len(breakdownCategories))
	for _, category := range breakdownCategories {
		row := CategorySpend{Category: category, Label: CategoryLabels[category]}

		for tx := range l.Transactions(ByDirection(Out)) {
			if tx.Category == category {
				row.Actual = row.Actual.Add(tx.Amount)
			}
		}
		for _, bill := range l.Bills() {
			if bill.Category() == category {
				row.Committed = row.Committed.Add(bill.Amount)
			}
		}
		row.Displayed = row.Actual.Max(row.Committed)
		breakdown = append(breakdown, row)
	}
	return breakdown
}

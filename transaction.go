package monies

import "time"

// Direction encodes the sign of a transaction; amounts are always
// non-negative.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Category tags used by the recording operations and the breakdown report.
const (
	CategoryIncome        = "income"
	CategoryRent          = "rent"
	CategoryUtilities     = "utilities"
	CategoryFood          = "food"
	CategoryEntertainment = "entertainment"
	CategoryLoanIn        = "loan_in"
	CategoryLoanOut       = "loan_out"
	CategoryMisc          = "misc"
)

// CategoryLabels maps a category tag to its display label.
var CategoryLabels = map[string]string{
	CategoryIncome:        "Income",
	CategoryRent:          "Rent",
	CategoryUtilities:     "Utilities",
	CategoryFood:          "Food & Dining",
	CategoryEntertainment: "Entertainment",
	CategoryLoanIn:        "Loan Taken",
	CategoryLoanOut:       "Loan Repayment",
	CategoryMisc:          "Misc",
}

// Transaction is an immutable entry in the append-only log. The log is kept
// newest first; when two entries share a timestamp (same-millisecond
// recording) the insertion order is the tie-break authority for display.
type Transaction struct {
	ID            string    `json:"id"`
	Direction     Direction `json:"type"`
	Category      string    `json:"category"`
	Amount        Money     `json:"amount"`
	Date          time.Time `json:"date"`
	Note          string    `json:"note,omitempty"`
	Account       string    `json:"bank,omitempty"`
	RelatedLoanID string    `json:"relatedLoanId,omitempty"`
}

// inMonth reports whether the transaction falls in the same calendar month
// and year as now.
func (t Transaction) inMonth(now time.Time) bool {
	return t.Date.Year() == now.Year() && t.Date.Month() == now.Month()
}

// ByDirection returns a predicate that filters transactions by direction.
func ByDirection(d Direction) func(Transaction) bool {
	return func(t Transaction) bool { return t.Direction == d }
}

// ByCategory returns a predicate that filters transactions by category tag.
func ByCategory(category string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Category == category }
}

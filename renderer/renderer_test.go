package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/mfalme0/monies"
)

func kes(v float64) monies.Money { return monies.M(v, "KES") }

func newLedger(t *testing.T) *monies.Ledger {
	t.Helper()
	l := monies.NewLedger(monies.NewMemStore())
	if err := l.CompleteOnboarding(monies.Setup{
		Username: "Shiro",
		Accounts: []string{"Equity"},
		Salary:   kes(45000),
		Bills:    []monies.Bill{{Name: "Rent", Amount: kes(15000)}},
	}); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestSummaryMarkdown(t *testing.T) {
	l := newLedger(t)
	got := SummaryMarkdown(monies.NewSummary(l, time.Now()))

	for _, want := range []string{
		"Shiro's Vault",
		"Safe to spend",
		"Total Balance",
		"Still Due",
		"This Month",
		"Healthy",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdownAnonymous(t *testing.T) {
	l := monies.NewLedger(monies.NewMemStore())
	got := SummaryMarkdown(monies.NewSummary(l, time.Now()))
	if !strings.Contains(got, "Your Vault") {
		t.Errorf("anonymous summary misses fallback title:\n%s", got)
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	l := newLedger(t)
	got := BreakdownMarkdown(monies.NewBreakdown(l))

	if !strings.Contains(got, "Rent") {
		t.Errorf("breakdown misses committed rent row:\n%s", got)
	}
	// categories with nothing to show are omitted
	if strings.Contains(got, "Entertainment") {
		t.Errorf("breakdown shows empty category:\n%s", got)
	}
}

func TestBreakdownMarkdownEmpty(t *testing.T) {
	l := monies.NewLedger(monies.NewMemStore())
	got := BreakdownMarkdown(monies.NewBreakdown(l))
	if !strings.Contains(got, "Nothing spent or committed yet.") {
		t.Errorf("empty breakdown:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	l := newLedger(t)
	l.RecordExpense(monies.CategoryFood, kes(1200), "groceries")

	var txs []monies.Transaction
	for tx := range l.Transactions() {
		txs = append(txs, tx)
	}
	got := TransactionsMarkdown(txs)
	if !strings.Contains(got, "groceries") || !strings.Contains(got, "Initial Salary") {
		t.Errorf("listing misses rows:\n%s", got)
	}

	if got := TransactionsMarkdown(nil); !strings.Contains(got, "No transactions yet.") {
		t.Errorf("empty listing:\n%s", got)
	}
}

func TestLoansMarkdown(t *testing.T) {
	loans := []monies.Loan{
		{ID: "1", Name: "Wanjiku", Principal: kes(1000), Paid: kes(1000), Settled: true},
		{ID: "2", Name: "Otieno", Principal: kes(500)},
	}
	got := LoansMarkdown(loans)

	// open loans come first
	if strings.Index(got, "Otieno") > strings.Index(got, "Wanjiku") {
		t.Errorf("settled loan listed before open one:\n%s", got)
	}
	if !strings.Contains(got, "settled") || !strings.Contains(got, "open") {
		t.Errorf("listing misses statuses:\n%s", got)
	}

	if got := LoansMarkdown(nil); !strings.Contains(got, "No loans on record.") {
		t.Errorf("empty listing:\n%s", got)
	}
}

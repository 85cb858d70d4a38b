package monies

import (
	"testing"
)

func totalBalance(l *Ledger) Money {
	var total Money
	for _, acc := range l.Accounts() {
		total = total.Add(acc.Balance)
	}
	return total
}

func TestRecordIncome(t *testing.T) {
	l := newTestLedger()

	if err := l.RecordIncome("Equity", KES(4500), "salary"); err != nil {
		t.Fatal(err)
	}
	if err := l.RecordIncome("Equity", KES(500), "bonus"); err != nil {
		t.Fatal(err)
	}

	accounts := l.Accounts()
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	if !accounts[0].Balance.Equal(KES(5000)) {
		t.Errorf("balance = %s, want %s", accounts[0].Balance, KES(5000))
	}
	if accounts[0].Kind != KindBank {
		t.Errorf("kind = %q, want %q", accounts[0].Kind, KindBank)
	}

	// account names match case-sensitively, so "equity" is a new account
	if err := l.RecordIncome("equity", KES(100), ""); err != nil {
		t.Fatal(err)
	}
	if got := len(l.Accounts()); got != 2 {
		t.Errorf("got %d accounts after case-variant income, want 2", got)
	}
}

func TestAllocateGreedyInOrder(t *testing.T) {
	testCases := []struct {
		name         string
		amount       Money
		wantA, wantB Money
		wantDeducted Money
	}{
		{"fits in first", KES(100), KES(200), KES(200), KES(100)},
		{"spills to second", KES(450), KES(0), KES(50), KES(450)},
		{"exact total", KES(500), KES(0), KES(0), KES(500)},
		{"shortfall dropped", KES(1000), KES(0), KES(0), KES(500)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			accounts := []Account{
				{ID: "a", Name: "A", Balance: KES(300), Kind: KindBank},
				{ID: "b", Name: "B", Balance: KES(200), Kind: KindMobile},
			}
			deducted := allocateGreedyInOrder(accounts, tc.amount)
			if !accounts[0].Balance.Equal(tc.wantA) {
				t.Errorf("A = %s, want %s", accounts[0].Balance, tc.wantA)
			}
			if !accounts[1].Balance.Equal(tc.wantB) {
				t.Errorf("B = %s, want %s", accounts[1].Balance, tc.wantB)
			}
			if !deducted.Equal(tc.wantDeducted) {
				t.Errorf("deducted = %s, want %s", deducted, tc.wantDeducted)
			}
		})
	}
}

func TestRecordExpense(t *testing.T) {
	l := newTestLedger()
	if err := l.RecordIncome("A", KES(300), ""); err != nil {
		t.Fatal(err)
	}
	if err := l.RecordIncome("B", KES(200), ""); err != nil {
		t.Fatal(err)
	}

	if err := l.RecordExpense(CategoryFood, KES(450), "groceries"); err != nil {
		t.Fatal(err)
	}

	accounts := l.Accounts()
	if !accounts[0].Balance.Equal(KES(0)) || !accounts[1].Balance.Equal(KES(50)) {
		t.Errorf("balances = %s, %s, want 0 and 50", accounts[0].Balance, accounts[1].Balance)
	}

	// an overspend drains everything and drops the shortfall; balances never
	// go negative through this path
	if err := l.RecordExpense(CategoryMisc, KES(1000), ""); err != nil {
		t.Fatal(err)
	}
	if got := totalBalance(l); !got.IsZero() {
		t.Errorf("total balance after overspend = %s, want 0", got)
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(100), "first")
	l.RecordExpense(CategoryFood, KES(10), "second")
	l.RecordExpense(CategoryMisc, KES(20), "third")

	var notes []string
	for tx := range l.Transactions() {
		notes = append(notes, tx.Note)
	}
	want := []string{"third", "second", "first"}
	if len(notes) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(notes), len(want))
	}
	for i := range want {
		if notes[i] != want[i] {
			t.Errorf("transactions[%d].Note = %q, want %q", i, notes[i], want[i])
		}
	}
}

func TestTransactionsFilters(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(100), "")
	l.RecordExpense(CategoryFood, KES(10), "")
	l.RecordExpense(CategoryRent, KES(20), "")

	count := 0
	for range l.Transactions(ByDirection(Out)) {
		count++
	}
	if count != 2 {
		t.Errorf("ByDirection(Out) yielded %d, want 2", count)
	}

	// multiple filters accept the union
	count = 0
	for range l.Transactions(ByCategory(CategoryFood), ByCategory(CategoryIncome)) {
		count++
	}
	if count != 2 {
		t.Errorf("union of filters yielded %d, want 2", count)
	}
}

func TestRecordLoan(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(100), "")
	l.RecordIncome("B", KES(100), "")

	if err := l.RecordLoan("Wanjiku", KES(2000)); err != nil {
		t.Fatal(err)
	}

	// the principal lands entirely on the first account in store order
	accounts := l.Accounts()
	if !accounts[0].Balance.Equal(KES(2100)) {
		t.Errorf("first account = %s, want %s", accounts[0].Balance, KES(2100))
	}
	if !accounts[1].Balance.Equal(KES(100)) {
		t.Errorf("second account = %s, want %s", accounts[1].Balance, KES(100))
	}

	loans := l.Loans()
	if len(loans) != 1 {
		t.Fatalf("got %d loans, want 1", len(loans))
	}
	if loans[0].Settled {
		t.Error("fresh loan is settled")
	}

	// the disbursement is on the log, categorized as loan_in
	var tx Transaction
	for latest := range l.Transactions() {
		tx = latest
		break
	}
	if tx.Category != CategoryLoanIn || tx.Direction != In {
		t.Errorf("disbursement tx = %s/%s, want in/loan_in", tx.Direction, tx.Category)
	}
}

func TestRecordLoanWithoutAccounts(t *testing.T) {
	l := newTestLedger()
	if err := l.RecordLoan("Otieno", KES(500)); err != nil {
		t.Fatal(err)
	}
	// debt is tracked but the cash lands on no balance
	if got := len(l.Accounts()); got != 0 {
		t.Errorf("got %d accounts, want 0", got)
	}
	if got := len(l.Loans()); got != 1 {
		t.Errorf("got %d loans, want 1", got)
	}
}

func TestRepayLoan(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(5000), "")
	l.RecordLoan("Wanjiku", KES(1000))
	id := l.Loans()[0].ID

	if err := l.RepayLoan(id, KES(999.99)); err != nil {
		t.Fatal(err)
	}
	loan, err := l.FindLoan(id)
	if err != nil {
		t.Fatal(err)
	}
	if loan.Settled {
		t.Error("loan settled below principal")
	}
	if !loan.Outstanding().Equal(KES(0.01)) {
		t.Errorf("outstanding = %s, want %s", loan.Outstanding(), KES(0.01))
	}

	if err := l.RepayLoan(id, KES(0.01)); err != nil {
		t.Fatal(err)
	}
	loan, _ = l.FindLoan(id)
	if !loan.Settled {
		t.Error("loan not settled at exact principal")
	}

	// settled never reverts, even on further payments
	if err := l.RepayLoan(id, KES(5)); err != nil {
		t.Fatal(err)
	}
	loan, _ = l.FindLoan(id)
	if !loan.Settled {
		t.Error("settled reverted after overpayment")
	}
}

func TestRepayLoanUnknownID(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(1000), "")
	before := totalBalance(l)

	// unknown id is a silent no-op, twice over
	for range 2 {
		if err := l.RepayLoan("nope", KES(100)); err != nil {
			t.Fatal(err)
		}
	}
	if got := totalBalance(l); !got.Equal(before) {
		t.Errorf("balance changed on unknown loan: %s, want %s", got, before)
	}
	count := 0
	for range l.Transactions() {
		count++
	}
	if count != 1 {
		t.Errorf("got %d transactions, want 1", count)
	}
}

// The total balance equals replaying the log over the allocation policy:
// every credit adds in full, every debit removes only what was available.
func TestBalanceReplaysLog(t *testing.T) {
	l := newTestLedger()
	l.RecordIncome("A", KES(300), "")
	l.RecordIncome("B", KES(200), "")
	l.RecordLoan("Wanjiku", KES(1000))
	l.RecordExpense(CategoryFood, KES(450), "")
	l.RepayLoan(l.Loans()[0].ID, KES(250))
	l.RecordExpense(CategoryMisc, KES(2000), "") // overspend, shortfall dropped

	// 300 + 200 + 1000 - 450 - 250 = 800, then the 2000 debit drains it
	if got := totalBalance(l); !got.IsZero() {
		t.Errorf("total balance = %s, want 0", got)
	}

	replay := []Account{{ID: "r", Name: "R", Kind: KindBank}}
	var txs []Transaction
	for tx := range l.Transactions() {
		txs = append(txs, tx)
	}
	for i := len(txs) - 1; i >= 0; i-- {
		switch txs[i].Direction {
		case In:
			replay[0].Balance = replay[0].Balance.Add(txs[i].Amount)
		case Out:
			allocateGreedyInOrder(replay, txs[i].Amount)
		}
	}
	if !replay[0].Balance.Equal(totalBalance(l)) {
		t.Errorf("replayed balance = %s, want %s", replay[0].Balance, totalBalance(l))
	}
}

func TestSetSecurity(t *testing.T) {
	l := newTestLedger()
	if l.Security() {
		t.Fatal("security enabled on fresh ledger")
	}
	if err := l.SetSecurity(true); err != nil {
		t.Fatal(err)
	}
	if !l.Security() {
		t.Error("security not enabled")
	}
}

func TestResetAll(t *testing.T) {
	l := newTestLedger()
	l.CompleteOnboarding(Setup{
		Username: "Shiro",
		Accounts: []string{"Equity", "M-Pesa"},
		Salary:   KES(30000),
		PayWeek:  "2",
		Bills:    []Bill{{Name: "Rent", Amount: KES(15000)}},
	})
	l.RecordLoan("Wanjiku", KES(1000))
	l.SetSecurity(true)

	// reset twice; the second pass must be a no-op over already-empty state
	for range 2 {
		if err := l.ResetAll(); err != nil {
			t.Fatal(err)
		}
		if got := len(l.Accounts()); got != 0 {
			t.Errorf("got %d accounts after reset, want 0", got)
		}
		if got := len(l.Loans()); got != 0 {
			t.Errorf("got %d loans after reset, want 0", got)
		}
		if got := len(l.Bills()); got != 0 {
			t.Errorf("got %d bills after reset, want 0", got)
		}
		if l.Onboarded() || l.Security() {
			t.Error("flags survived reset")
		}
		if l.Username() != "" {
			t.Errorf("username %q survived reset", l.Username())
		}
		if l.PayWeek() != "4" {
			t.Errorf("payWeek = %q after reset, want default 4", l.PayWeek())
		}
	}
}

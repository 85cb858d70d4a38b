package monies

import "time"

// KES is a helper for tests to create shilling money from a const.
func KES(v float64) Money { return M(v, "KES") }

// testEpoch is an arbitrary mid-month instant used as the test clock origin.
var testEpoch = time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

// newTestLedger returns a memory-backed ledger with a deterministic clock
// that advances one second per call.
func newTestLedger() *Ledger {
	l := NewLedger(NewMemStore())
	step := 0
	l.now = func() time.Time {
		step++
		return testEpoch.Add(time.Duration(step) * time.Second)
	}
	return l
}

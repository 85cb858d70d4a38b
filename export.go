package monies

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ExportCSV writes the transaction log to w in CSV form, newest first. The
// export is read-only over the log; it should remain human readable and easy
// to open in a spreadsheet.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "type", "category", "amount", "date", "account", "note"}); err != nil {
		return fmt.Errorf("could not write export header: %w", err)
	}
	for tx := range l.Transactions() {
		record := []string{
			tx.ID,
			string(tx.Direction),
			tx.Category,
			tx.Amount.value.StringFixed(2),
			tx.Date.Format(time.RFC3339),
			tx.Account,
			tx.Note,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write transaction %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

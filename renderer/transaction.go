package renderer

import (
	"bytes"
	"fmt"

	"github.com/mfalme0/monies"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx monies.Transaction) string {
	label := monies.CategoryLabels[tx.Category]
	switch {
	case tx.Note != "" && tx.Account != "":
		return fmt.Sprintf("%s %s %s (%s, %s)", tx.Date.Format("02 Jan"), label, tx.Amount, tx.Account, tx.Note)
	case tx.Note != "":
		return fmt.Sprintf("%s %s %s (%s)", tx.Date.Format("02 Jan"), label, tx.Amount, tx.Note)
	case tx.Account != "":
		return fmt.Sprintf("%s %s %s (%s)", tx.Date.Format("02 Jan"), label, tx.Amount, tx.Account)
	default:
		return fmt.Sprintf("%s %s %s", tx.Date.Format("02 Jan"), label, tx.Amount)
	}
}

// TransactionsMarkdown renders a transaction listing, newest first.
func TransactionsMarkdown(txs []monies.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Category", "Amount", "Note"},
	}
	for _, tx := range txs {
		amount := tx.Amount.String()
		if tx.Direction == monies.Out {
			amount = "-" + amount
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.Format("02 Jan 15:04"),
			monies.CategoryLabels[tx.Category],
			amount,
			tx.Note,
		})
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"

	"github.com/mfalme0/monies"
	md "github.com/nao1215/markdown"
)

// LoansMarkdown renders the loan book, open loans first.
func LoansMarkdown(loans []monies.Loan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loans")
	if len(loans) == 0 {
		doc.PlainText("No loans on record.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Lender", "Principal", "Paid", "Outstanding", "Status"},
	}
	appendRow := func(loan monies.Loan) {
		status := "open"
		if loan.Settled {
			status = "settled"
		}
		table.Rows = append(table.Rows, []string{
			loan.ID,
			loan.Name,
			loan.Principal.String(),
			loan.Paid.String(),
			loan.Outstanding().String(),
			status,
		})
	}
	for _, loan := range loans {
		if !loan.Settled {
			appendRow(loan)
		}
	}
	for _, loan := range loans {
		if loan.Settled {
			appendRow(loan)
		}
	}
	doc.Table(table)

	return doc.String()
}

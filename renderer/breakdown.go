package renderer

import (
	"bytes"

	"github.com/mfalme0/monies"
	md "github.com/nao1215/markdown"
)

// BreakdownMarkdown renders the categorized spend view. Rows with no actual
// spend and no committed bill are omitted.
func BreakdownMarkdown(rows []monies.CategorySpend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending Breakdown")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Spent", "Committed", "Shown"},
	}
	for _, row := range rows {
		if row.Displayed.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{
			row.Label,
			row.Actual.String(),
			row.Committed.String(),
			md.Bold(row.Displayed.String()),
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("Nothing spent or committed yet.")
		return doc.String()
	}
	doc.Table(table)

	return doc.String()
}

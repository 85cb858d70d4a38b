package renderer

import (
	"github.com/mfalme0/monies"
)

// SummaryMarkdown renders the at-a-glance summary to a markdown string.
func SummaryMarkdown(s *monies.Summary) string {
	partials := map[string]string{
		"summary_figures": "summary_figures.md",
		"summary_burn":    "summary_burn.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

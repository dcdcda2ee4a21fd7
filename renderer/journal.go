package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bullboard"
)

// journalDateFormat shows day-level granularity; the underlying timestamps
// keep full precision in the store.
const journalDateFormat = "2006-01-02"

// JournalMarkdown renders the journal projection as a markdown table, one row
// per entry in event order.
func JournalMarkdown(j *bullboard.Journal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Journal\n\n")
	fmt.Fprintln(&b, "| Date | Type | Ticker | Amount | Price | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, entry := range j.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			entry.Date.Format(journalDateFormat),
			entry.Type,
			entry.Identifier,
			formatShares(entry.Amount),
			entry.Price,
			entry.Total,
		)
	}
	return b.String()
}

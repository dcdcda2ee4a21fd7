package bullboard

import "time"

// EntryType identifies the kind of a journal row.
type EntryType string

const (
	EntryBuy      EntryType = "Buy"
	EntryDividend EntryType = "Dividend"
)

// JournalEntry is one row of the chronological journal view.
type JournalEntry struct {
	Date       time.Time
	Type       EntryType
	Identifier StockIdentifier
	Amount     float64
	Price      Amount
	Total      Amount
}

// Journal is the chronological read view of a ledger: one row per purchase or
// dividend, in event order. Price observations produce no row.
//
// Like the Dashboard, a Journal is a pure function of its input events.
type Journal struct {
	Entries []JournalEntry
}

// NewJournal folds the ordered event sequence into a fresh Journal.
// Entry order equals input order; nothing is sorted or deduplicated.
func NewJournal(events []Event) *Journal {
	j := &Journal{}
	for _, e := range events {
		switch v := e.(type) {
		case StocksBought:
			j.Entries = append(j.Entries, JournalEntry{
				Date:       v.When(),
				Type:       EntryBuy,
				Identifier: v.Identifier,
				Amount:     v.Amount,
				Price:      v.Price,
				Total:      v.Price.Mul(v.Amount),
			})
		case DividendPaid:
			// The dividend price is recorded per share but journaled as a
			// single line item.
			j.Entries = append(j.Entries, JournalEntry{
				Date:       v.When(),
				Type:       EntryDividend,
				Identifier: v.Identifier,
				Amount:     1,
				Price:      v.Price,
				Total:      v.Price,
			})
		}
	}
	return j
}

package bullboard

import (
	"testing"
	"time"
)

func TestJournalFromStocksBought(t *testing.T) {
	j := NewJournal([]Event{
		NewStocksBought(enronWentBankruptAt, 10, A(100.0, "USD"), "AAPL"),
		NewStocksBought(enronWentBankruptAt, 20, A(200.0, "USD"), "AAPL"),
	})
	if len(j.Entries) != 2 {
		t.Fatalf("journal has %d entries, want 2", len(j.Entries))
	}

	first := j.Entries[0]
	if first.Type != EntryBuy || first.Identifier != "AAPL" || first.Amount != 10 {
		t.Errorf("first entry = %+v, want a Buy of 10 AAPL", first)
	}
	if !first.Total.Equal(A(1000.0, "USD")) {
		t.Errorf("first entry total = %s, want 1000.00 USD", first.Total)
	}
	if !j.Entries[1].Total.Equal(A(4000.0, "USD")) {
		t.Errorf("second entry total = %s, want 4000.00 USD", j.Entries[1].Total)
	}
}

func TestJournalFromDividendPaid(t *testing.T) {
	j := NewJournal([]Event{
		NewDividendPaid(enronWentBankruptAt, A(100.0, "USD"), "AAPL"),
	})
	if len(j.Entries) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(j.Entries))
	}
	entry := j.Entries[0]
	if entry.Type != EntryDividend {
		t.Errorf("entry type = %s, want %s", entry.Type, EntryDividend)
	}
	if entry.Amount != 1 {
		t.Errorf("dividend entry amount = %v, want 1", entry.Amount)
	}
	if !entry.Total.Equal(A(100.0, "USD")) {
		t.Errorf("dividend entry total = %s, want 100.00 USD", entry.Total)
	}
}

func TestJournalDropsPriceObtained(t *testing.T) {
	j := NewJournal([]Event{
		NewPriceObtained(enronWentBankruptAt, A(100.0, "USD"), "AAPL"),
		NewPriceObtained(enronWentBankruptAt, A(200.0, "USD"), "AAPL"),
	})
	if len(j.Entries) != 0 {
		t.Errorf("journal has %d entries, want 0", len(j.Entries))
	}
}

func TestJournalPreservesEventOrder(t *testing.T) {
	// Input order is display order: a dividend recorded before an earlier
	// dated buy stays first.
	j := NewJournal([]Event{
		NewDividendPaid(enronWentBankruptAt.Add(time.Hour), A(1.0, "USD"), "AAPL"),
		NewStocksBought(enronWentBankruptAt, 10, A(100.0, "USD"), "AAPL"),
	})
	if len(j.Entries) != 2 {
		t.Fatalf("journal has %d entries, want 2", len(j.Entries))
	}
	if j.Entries[0].Type != EntryDividend || j.Entries[1].Type != EntryBuy {
		t.Errorf("entry order = %s, %s, want Dividend, Buy", j.Entries[0].Type, j.Entries[1].Type)
	}
}

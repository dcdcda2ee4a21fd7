package bullboard

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreAppendRead(t *testing.T) {
	store := NewMemoryStore()
	events := []Event{NewStocksBought(enronWentBankruptAt, 10, A(100.0, "USD"), "AAPL")}

	if err := store.Append("123", events); err != nil {
		t.Fatalf("Append returned an unexpected error: %v", err)
	}
	got, err := store.Read("123")
	if err != nil {
		t.Fatalf("Read returned an unexpected error: %v", err)
	}
	if len(got) != 1 || !got[0].Equal(events[0]) {
		t.Errorf("Read = %#v, want the appended event", got)
	}
}

func TestMemoryStoreReadNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Read("123")
	var notFound *LedgerNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Read error = %v, want *LedgerNotFoundError", err)
	}
	if notFound.LedgerID != "123" {
		t.Errorf("not found ledger id = %q, want %q", notFound.LedgerID, "123")
	}
}

func TestMemoryStoreReadSortsByCreationTime(t *testing.T) {
	store := NewMemoryStore()
	later := NewStocksBought(enronWentBankruptAt.Add(time.Second), 10, A(100.0, "USD"), "MSFT")
	earlier := NewStocksBought(enronWentBankruptAt, 10, A(100.0, "USD"), "AAPL")

	// Append the later event first: the read must still yield creation order.
	if err := store.Append("123", []Event{later, earlier}); err != nil {
		t.Fatalf("Append returned an unexpected error: %v", err)
	}
	got, err := store.Read("123")
	if err != nil {
		t.Fatalf("Read returned an unexpected error: %v", err)
	}
	if got[0].Stock() != "AAPL" || got[1].Stock() != "MSFT" {
		t.Errorf("Read order = %s, %s, want AAPL, MSFT", got[0].Stock(), got[1].Stock())
	}
}

func TestMemoryStoreReadReturnsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Append("123", []Event{NewStocksBought(enronWentBankruptAt, 10, A(1.0, "USD"), "AAPL")}); err != nil {
		t.Fatalf("Append returned an unexpected error: %v", err)
	}
	first, _ := store.Read("123")
	if err := store.Append("123", []Event{NewDividendPaid(enronWentBankruptAt, A(1.0, "USD"), "AAPL")}); err != nil {
		t.Fatalf("Append returned an unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Errorf("earlier snapshot grew to %d events after a later append", len(first))
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				at := enronWentBankruptAt.Add(time.Duration(g*perGoroutine+i) * time.Second)
				e := NewStocksBought(at, 1, A(1.0, "USD"), "AAPL")
				if err := store.Append("shared", []Event{e}); err != nil {
					t.Errorf("Append returned an unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	got, err := store.Read("shared")
	if err != nil {
		t.Fatalf("Read returned an unexpected error: %v", err)
	}
	if len(got) != goroutines*perGoroutine {
		t.Errorf("lost events under concurrency: got %d, want %d", len(got), goroutines*perGoroutine)
	}
}

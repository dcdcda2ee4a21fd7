package bullboard

// EventStore is the append-only persistence contract for ledger events.
//
// A ledger is a named stream of events; its id is the aggregate key. Appends
// preserve call order and are atomic per call. Reads return the full event
// history of one ledger ordered by creation timestamp ascending, regardless
// of the order events were appended in.
type EventStore interface {
	// Append appends events to the end of the named ledger's log.
	Append(ledgerID string, events []Event) error
	// Read returns all events ever appended for the ledger, ordered by
	// creation time ascending. It fails with a *LedgerNotFoundError when no
	// events have ever been appended for that id.
	Read(ledgerID string) ([]Event, error)
}

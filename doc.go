// Package bullboard is an event-sourced personal investment ledger.
//
// It records discrete financial events (stock purchases, price observations,
// dividend payments) in an append-only event store and derives read views
// from them by deterministic replay:
//   - Event Model: immutable, timestamped domain events carrying exact
//     decimal money values.
//   - Event Store: append-only persistence keyed by ledger id, with an
//     in-memory backend for tests and a durable SQLite backend.
//   - Projections: the Dashboard (current holdings, value, cost basis,
//     dividends) and the Journal (chronological activity log), each a pure
//     function of one ledger's ordered event history.
//
// There is no cached or incremental state: every query replays the full
// event log, which keeps views trivially consistent with the facts.
//
// This package serves as the foundational logic for the `bb` command-line
// tool; it never prints and never exits by itself.
package bullboard

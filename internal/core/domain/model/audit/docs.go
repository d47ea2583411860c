// Package audit contains the append-only audit Record.
//
// Every accepted order status transition writes exactly one record with the
// prior and new state as JSON snapshots. Records are immutable once written.
package audit

// Package serialqueue provides an ordered runner for asynchronous,
// completion-driven tasks. At most one task is in flight at a time and
// tasks run in FIFO enqueue order, which makes the queue a mutual-exclusion
// point for whatever the tasks mutate (in chatkit, message-list batch
// updates applied between renders).
//
// The queue does no locking: it assumes a single owning
// goroutine, the bubbletea Update loop in practice. Enqueue, Start, Stop,
// Flush and every task completion must happen on that goroutine. Tasks may
// do their work elsewhere (network sends, timers, tea.Cmd goroutines) but
// the completion callback has to be marshalled back to the owner, typically
// by delivering a tea.Msg whose handler invokes it.
//
// A task that never calls its completion stalls the queue permanently.
// That is a caller contract, not a recoverable condition.
package serialqueue

// Package undo provides a generic undo/redo transaction manager.
//
// A Transaction pairs a forward Operation with its inverse, each with the
// arguments it will be called with. Arguments are bound when the transaction
// is built, so applying or reverting it needs no further input:
//
//	t, err := undo.NewTransaction(setValue, setValue, []any{5}, []any{old})
//
// A History owns two stacks. Recorded transactions sit on the applied stack;
// Undo moves the top one onto the pending-redo stack after reverting it, and
// Redo moves it back after re-applying it. Recording a new transaction
// discards everything on the pending-redo stack:
//
//	h := undo.New(undo.WithMaxDepth(100))
//	_, err = h.RecordAndApply(ctx, t)
//	_, err = h.Undo(ctx)
//	_, err = h.Redo(ctx)
//
// Both stacks are strictly LIFO. Undo and Redo on an empty stack are no-ops
// that return (nil, nil).
//
// # Callback failures
//
// A transaction only changes stacks after its callback returns nil. When
// Apply or Revert fails, the transaction stays on top of the stack it was
// taken from and the callback's error is returned as-is, so a failed undo can
// be retried and nothing is ever dropped or duplicated.
//
// # Concurrency
//
// History is safe for concurrent use. The lock is held across the whole
// "inspect top, run callback, move" sequence, so callbacks must not call
// back into the History that is running them.
//
// # Wrapping operations
//
// Wrap turns a plain Operation into one that records itself:
//
//	set := undo.Wrap(h, r.put,
//	    undo.WithReverse(r.restore),
//	    undo.WithReverseArgs(r.previous),
//	)
//	_, err := set(ctx, "key", "value")
//
// Types that want undo/redo hold a *History as a field and delegate to it;
// Undoer is the method set they expose.
package undo

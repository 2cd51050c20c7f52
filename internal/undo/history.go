package undo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/undoable/internal/platform/logging"
	"github.com/jsamuelsen11/undoable/internal/platform/telemetry"
)

// ErrInconsistentHistory is returned by Verify when a transaction is found
// on both stacks, twice on one stack, or is nil.
var ErrInconsistentHistory = errors.New("undo: inconsistent history")

// Compile-time check that History implements Undoer.
var _ Undoer = (*History)(nil)

const (
	transitionRecord = "record"
	transitionUndo   = "undo"
	transitionRedo   = "redo"
)

// State is the position a transaction occupies in a History.
type State string

// Transaction states.
const (
	StateApplied State = "applied"
	StateUndone  State = "undone"
)

// Entry describes one transaction held by a History.
type Entry struct {
	Description string
	State       State
	CreatedAt   time.Time
}

// History manages the applied and pending-redo stacks. The zero value is not
// usable; create one with New.
type History struct {
	mu sync.Mutex

	applied []*Transaction
	pending []*Transaction

	maxDepth int
	metrics  *telemetry.Metrics
	tracer   trace.Tracer
}

// New creates an empty History.
func New(opts ...Option) *History {
	h := &History{
		tracer: otel.GetTracerProvider().Tracer(telemetry.ScopeName + "/undo"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Record pushes an already-applied transaction onto the applied stack and
// discards all pending redo transactions. It does not call t.Apply.
// Returns ErrInvalidOperation if t is nil.
func (h *History) Record(ctx context.Context, t *Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: nil transaction", ErrInvalidOperation)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.pushLocked(ctx, t)
	h.recordMetrics(ctx, transitionRecord, time.Time{}, nil)
	return nil
}

// RecordAndApply applies t and, only if that succeeds, records it as Record
// does. The forward error is returned unchanged and nothing is recorded.
func (h *History) RecordAndApply(ctx context.Context, t *Transaction) (any, error) {
	return h.perform(ctx, func() (*Transaction, error) { return t, nil })
}

// perform builds a transaction and applies it under the lock so that the
// build step observes the same state the forward operation runs against.
func (h *History) perform(ctx context.Context, build func() (*Transaction, error)) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, err := build()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil transaction", ErrInvalidOperation)
	}

	ctx, span := h.startSpan(ctx, transitionRecord, t)
	defer span.End()

	start := time.Now()
	result, err := t.Apply(ctx)
	h.recordMetrics(ctx, transitionRecord, start, err)
	if err != nil {
		failSpan(span, err)
		logging.FromContext(ctx).DebugContext(ctx, "forward operation failed, transaction not recorded",
			slog.String("operation", "History.RecordAndApply"),
			slog.String("transaction", t.Description()),
			slog.Any("error", err),
		)
		return nil, err
	}

	h.pushLocked(ctx, t)
	return result, nil
}

// pushLocked adds t to the applied stack, clears the pending stack and
// enforces maxDepth. Must be called with h.mu held.
func (h *History) pushLocked(ctx context.Context, t *Transaction) {
	h.applied = append(h.applied, t)

	clear(h.pending)
	h.pending = h.pending[:0]

	if h.maxDepth > 0 && len(h.applied) > h.maxDepth {
		excess := len(h.applied) - h.maxDepth
		clear(h.applied[:excess])
		h.applied = h.applied[excess:]
		logging.FromContext(ctx).DebugContext(ctx, "evicted oldest transactions",
			slog.Int("evicted", excess),
			slog.Int("max_depth", h.maxDepth),
		)
	}

	logging.FromContext(ctx).DebugContext(ctx, "transaction recorded",
		slog.String("transaction", t.String()),
		slog.Int("undo_count", len(h.applied)),
	)
}

// Undo reverts the most recently applied transaction and moves it to the
// pending-redo stack, returning the backward operation's result. With nothing
// to undo it returns (nil, nil). If the backward operation fails the
// transaction stays on the applied stack and the error is returned unchanged.
func (h *History) Undo(ctx context.Context) (any, error) {
	return h.transition(ctx, transitionUndo)
}

// Redo re-applies the most recently undone transaction and moves it back to
// the applied stack, returning the forward operation's result. With nothing
// to redo it returns (nil, nil). If the forward operation fails the
// transaction stays on the pending-redo stack and the error is returned
// unchanged.
func (h *History) Redo(ctx context.Context) (any, error) {
	return h.transition(ctx, transitionRedo)
}

// transition pops the top of one stack, runs its callback and pushes it onto
// the other, all under h.mu. The pop is only committed once the callback
// succeeds.
func (h *History) transition(ctx context.Context, name string) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	from, to := &h.applied, &h.pending
	call := (*Transaction).Revert
	if name == transitionRedo {
		from, to = &h.pending, &h.applied
		call = (*Transaction).Apply
	}

	n := len(*from)
	if n == 0 {
		return nil, nil
	}
	t := (*from)[n-1]

	ctx, span := h.startSpan(ctx, name, t)
	defer span.End()

	logger := logging.FromContext(ctx)

	start := time.Now()
	result, err := call(t, ctx)
	h.recordMetrics(ctx, name, start, err)
	if err != nil {
		failSpan(span, err)
		logger.DebugContext(ctx, name+" failed, transaction kept in place",
			slog.String("operation", "History."+name),
			slog.String("transaction", t.Description()),
			slog.Any("error", err),
		)
		return nil, err
	}

	(*from)[n-1] = nil
	*from = (*from)[:n-1]
	*to = append(*to, t)

	logger.DebugContext(ctx, "transaction moved",
		slog.String("transition", name),
		slog.String("transaction", t.String()),
		slog.Int("undo_count", len(h.applied)),
		slog.Int("redo_count", len(h.pending)),
	)
	return result, nil
}

// CanUndo reports whether the applied stack is non-empty.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.applied) > 0
}

// CanRedo reports whether the pending-redo stack is non-empty.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending) > 0
}

// UndoCount returns the number of transactions that can be undone.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.applied)
}

// RedoCount returns the number of transactions that can be redone.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Clear drops every transaction from both stacks without running any
// callbacks.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clear(h.applied)
	clear(h.pending)
	h.applied = h.applied[:0]
	h.pending = h.pending[:0]
}

// Entries returns the history as a timeline: applied transactions oldest
// first, followed by undone transactions in the order Redo would re-apply
// them.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entriesLocked()
}

// Snapshot is a point-in-time view of a History.
type Snapshot struct {
	CanUndo   bool
	CanRedo   bool
	UndoCount int
	RedoCount int
	MaxDepth  int
	Entries   []Entry
}

// Snapshot reads both stacks under one lock acquisition, so a concurrent
// Undo or Redo is seen either entirely or not at all.
func (h *History) Snapshot() Snapshot {
	return h.SnapshotWith(nil)
}

// SnapshotWith is Snapshot with read called under the same lock. Owners use
// it to capture state their callbacks mutate in the same view as the stacks.
// read must not call into h.
func (h *History) SnapshotWith(read func()) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	if read != nil {
		read()
	}
	return Snapshot{
		CanUndo:   len(h.applied) > 0,
		CanRedo:   len(h.pending) > 0,
		UndoCount: len(h.applied),
		RedoCount: len(h.pending),
		MaxDepth:  h.maxDepth,
		Entries:   h.entriesLocked(),
	}
}

func (h *History) entriesLocked() []Entry {
	entries := make([]Entry, 0, len(h.applied)+len(h.pending))
	for _, t := range h.applied {
		entries = append(entries, newEntry(t, StateApplied))
	}
	for i := len(h.pending) - 1; i >= 0; i-- {
		entries = append(entries, newEntry(h.pending[i], StateUndone))
	}
	return entries
}

// Verify checks that every transaction occupies exactly one stack slot.
func (h *History) Verify() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[*Transaction]State, len(h.applied)+len(h.pending))
	check := func(stack []*Transaction, state State) error {
		for i, t := range stack {
			if t == nil {
				return fmt.Errorf("%w: nil transaction at %s[%d]", ErrInconsistentHistory, state, i)
			}
			if prev, ok := seen[t]; ok {
				return fmt.Errorf("%w: %s is both %s and %s", ErrInconsistentHistory, t, prev, state)
			}
			seen[t] = state
		}
		return nil
	}

	return errors.Join(check(h.applied, StateApplied), check(h.pending, StateUndone))
}

func newEntry(t *Transaction, state State) Entry {
	return Entry{
		Description: t.Description(),
		State:       state,
		CreatedAt:   t.CreatedAt(),
	}
}

func (h *History) startSpan(ctx context.Context, name string, t *Transaction) (context.Context, trace.Span) {
	return h.tracer.Start(ctx, "undo.History."+name,
		trace.WithAttributes(
			telemetry.AttrTransition.String(name),
			attribute.String("undo.transaction", t.Description()),
		),
	)
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics counts a transition and, when start is set, records the
// callback duration. Safe with nil metrics.
func (h *History) recordMetrics(ctx context.Context, name string, start time.Time, err error) {
	if h.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrTransition.String(name),
		telemetry.AttrResult.String(result),
	)

	h.metrics.HistoryTransitionTotal.Add(ctx, 1, attrs)
	if !start.IsZero() {
		h.metrics.HistoryCallbackDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	}
}

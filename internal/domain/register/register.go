// Package register provides an in-memory key/value register whose mutations
// can be undone and redone. Register owns an undo.History for its whole
// lifetime and delegates its undo/redo surface to it.
package register

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/undoable/internal/domain"
	"github.com/jsamuelsen11/undoable/internal/undo"
)

// MaxKeyLength is the longest key, in bytes, that Set accepts.
const MaxKeyLength = 128

// errMalformedArgs is returned by the register's operations when a recorded
// transaction carries arguments of the wrong shape.
var errMalformedArgs = errors.New("register: malformed operation arguments")

// Compile-time check that Register exposes the undo/redo surface.
var _ undo.Undoer = (*Register)(nil)

// Entry is a single key/value pair held by the register.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Change describes a key's state after a mutation, undo or redo.
type Change struct {
	Key      string
	Value    string
	Present  bool
	Revision int64
}

// Status summarizes the register's undo/redo state. MaxDepth is 0 when the
// history is unbounded.
type Status struct {
	CanUndo   bool
	CanRedo   bool
	UndoCount int
	RedoCount int
	MaxDepth  int
	Revision  int64
	Entries   []undo.Entry
}

// Register is a concurrency-safe key/value store with undoable Set and
// Delete. The zero value is not usable; create one with New.
type Register struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	revision int64
	now      func() time.Time

	history *undo.History
	set     undo.Operation
	del     undo.Operation
}

// New creates an empty Register. The options configure its History.
func New(opts ...undo.Option) *Register {
	r := &Register{
		entries: make(map[string]Entry),
		now:     time.Now,
		history: undo.New(opts...),
	}

	r.set = undo.Wrap(r.history, r.put,
		undo.WithReverse(r.restore),
		undo.WithReverseArgs(r.previous),
		undo.WithDescribe(describe("set")),
	)
	r.del = undo.Wrap(r.history, r.remove,
		undo.WithReverse(r.restore),
		undo.WithReverseArgs(r.previous),
		undo.WithDescribe(describe("delete")),
	)

	return r
}

// Get returns the entry stored under key, or domain.ErrNotFound.
func (r *Register) Get(key string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return e, nil
}

// List returns all entries sorted by key.
func (r *Register) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := slices.Sorted(maps.Keys(r.entries))
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.entries[k])
	}
	return out
}

// Set stores value under key and records the change for undo. Returns a
// *domain.ValidationError for an empty or oversized key.
func (r *Register) Set(ctx context.Context, key, value string) (Change, error) {
	if err := validateKey(key); err != nil {
		return Change{}, err
	}
	return toChange(r.set(ctx, key, value))
}

// Delete removes key and records the change for undo. Returns
// domain.ErrNotFound, and records nothing, if the key is absent.
func (r *Register) Delete(ctx context.Context, key string) (Change, error) {
	return toChange(r.del(ctx, key))
}

// Undo reverts the most recent mutation. The result is a Change, or nil when
// there was nothing to undo; use ChangeFrom to unpack it.
func (r *Register) Undo(ctx context.Context) (any, error) {
	return r.history.Undo(ctx)
}

// Redo re-applies the most recently undone mutation. The result is a Change,
// or nil when there was nothing to redo.
func (r *Register) Redo(ctx context.Context) (any, error) {
	return r.history.Redo(ctx)
}

// CanUndo reports whether a mutation can be undone.
func (r *Register) CanUndo() bool { return r.history.CanUndo() }

// CanRedo reports whether an undone mutation can be redone.
func (r *Register) CanRedo() bool { return r.history.CanRedo() }

// Verify checks the consistency of the underlying history.
func (r *Register) Verify() error { return r.history.Verify() }

// Status returns a consistent snapshot of the register's history. The
// revision is read under the history lock, so it matches the stacks.
func (r *Register) Status() Status {
	var revision int64
	snap := r.history.SnapshotWith(func() {
		r.mu.RLock()
		revision = r.revision
		r.mu.RUnlock()
	})

	return Status{
		CanUndo:   snap.CanUndo,
		CanRedo:   snap.CanRedo,
		UndoCount: snap.UndoCount,
		RedoCount: snap.RedoCount,
		MaxDepth:  snap.MaxDepth,
		Revision:  revision,
		Entries:   snap.Entries,
	}
}

// ClearHistory forgets every undoable and redoable change. Entries are left
// as they are.
func (r *Register) ClearHistory() {
	r.history.Clear()
}

// put is the forward operation of Set. Args: key, value.
func (r *Register) put(_ context.Context, args ...any) (any, error) {
	key, err := argAt[string](args, 0)
	if err != nil {
		return nil, err
	}
	value, err := argAt[string](args, 1)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = Entry{Key: key, Value: value, UpdatedAt: r.now()}
	r.revision++
	return Change{Key: key, Value: value, Present: true, Revision: r.revision}, nil
}

// remove is the forward operation of Delete. Args: key.
func (r *Register) remove(_ context.Context, args ...any) (any, error) {
	key, err := argAt[string](args, 0)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[key]; !ok {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	delete(r.entries, key)
	r.revision++
	return Change{Key: key, Revision: r.revision}, nil
}

// restore is the backward operation of both Set and Delete. Args: key, the
// entry held before the forward call, and whether it existed.
func (r *Register) restore(_ context.Context, args ...any) (any, error) {
	key, err := argAt[string](args, 0)
	if err != nil {
		return nil, err
	}
	prev, err := argAt[Entry](args, 1)
	if err != nil {
		return nil, err
	}
	existed, err := argAt[bool](args, 2)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.revision++
	if !existed {
		delete(r.entries, key)
		return Change{Key: key, Revision: r.revision}, nil
	}
	r.entries[key] = prev
	return Change{Key: key, Value: prev.Value, Present: true, Revision: r.revision}, nil
}

// previous captures the backward arguments for restore from the forward
// arguments of put or remove.
func (r *Register) previous(args []any) []any {
	key, _ := argAt[string](args, 0)

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	return []any{key, e, ok}
}

func validateKey(key string) error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(key) == "":
		fields["key"] = domain.MsgRequired
	case len(key) > MaxKeyLength:
		fields["key"] = fmt.Sprintf("%s (max %d bytes, got %d)", domain.MsgTooLong, MaxKeyLength, len(key))
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// describe labels a transaction with the operation name and its key.
func describe(op string) func(args []any) string {
	return func(args []any) string {
		key, _ := argAt[string](args, 0)
		return fmt.Sprintf("%s %q", op, key)
	}
}

func argAt[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("%w: missing argument %d", errMalformedArgs, i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is %T, want %T", errMalformedArgs, i, args[i], zero)
	}
	return v, nil
}

// ChangeFrom converts the result of Undo or Redo into a Change. The bool is
// false when nothing was undone or redone.
func ChangeFrom(result any) (Change, bool) {
	c, ok := result.(Change)
	return c, ok
}

func toChange(result any, err error) (Change, error) {
	if err != nil {
		return Change{}, err
	}
	c, ok := ChangeFrom(result)
	if !ok {
		return Change{}, fmt.Errorf("%w: unexpected result %T", errMalformedArgs, result)
	}
	return c, nil
}

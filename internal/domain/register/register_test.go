package register_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/undoable/internal/domain"
	"github.com/jsamuelsen11/undoable/internal/domain/register"
	"github.com/jsamuelsen11/undoable/internal/undo"
)

func values(r *register.Register) map[string]string {
	out := make(map[string]string)
	for _, e := range r.List() {
		out[e.Key] = e.Value
	}
	return out
}

func TestSet_StoresAndReturnsChange(t *testing.T) {
	t.Parallel()

	r := register.New()
	c, err := r.Set(context.Background(), "color", "blue")
	require.NoError(t, err)

	assert.Equal(t, register.Change{Key: "color", Value: "blue", Present: true, Revision: 1}, c)

	e, err := r.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "blue", e.Value)
	assert.False(t, e.UpdatedAt.IsZero())
	assert.True(t, r.CanUndo())
}

func TestSet_InvalidKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too long", strings.Repeat("k", register.MaxKeyLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := register.New()
			_, err := r.Set(context.Background(), tt.key, "v")

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields["key"]; !ok {
				t.Errorf("Fields = %v, want key entry", verr.Fields)
			}
			if r.CanUndo() {
				t.Error("invalid Set must not be recorded")
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	_, err := register.New().Get("missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestList_SortedByKey(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()
	for _, k := range []string{"c", "a", "b"} {
		_, err := r.Set(ctx, k, strings.ToUpper(k))
		require.NoError(t, err)
	}

	var keys []string
	for _, e := range r.List() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestDelete_MissingKeyNotRecorded(t *testing.T) {
	t.Parallel()

	r := register.New()
	_, err := r.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	assert.False(t, r.CanUndo())
}

func TestUndoRedo_SetOverwriteRoundTrip(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()

	_, err := r.Set(ctx, "x", "1")
	require.NoError(t, err)
	_, err = r.Set(ctx, "x", "5")
	require.NoError(t, err)
	afterForward := values(r)

	res, err := r.Undo(ctx)
	require.NoError(t, err)
	c, ok := register.ChangeFrom(res)
	require.True(t, ok)
	assert.Equal(t, "1", c.Value)
	assert.Equal(t, map[string]string{"x": "1"}, values(r))

	_, err = r.Redo(ctx)
	require.NoError(t, err)
	assert.Equal(t, afterForward, values(r))
}

func TestUndo_SetOfNewKeyRemovesIt(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()

	_, err := r.Set(ctx, "fresh", "v")
	require.NoError(t, err)

	res, err := r.Undo(ctx)
	require.NoError(t, err)
	c, ok := register.ChangeFrom(res)
	require.True(t, ok)
	assert.False(t, c.Present)

	_, err = r.Get("fresh")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUndo_DeleteRestoresEntry(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()

	_, err := r.Set(ctx, "k", "v")
	require.NoError(t, err)
	before, err := r.Get("k")
	require.NoError(t, err)

	_, err = r.Delete(ctx, "k")
	require.NoError(t, err)
	_, err = r.Get("k")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.Undo(ctx)
	require.NoError(t, err)

	after, err := r.Get("k")
	require.NoError(t, err)
	assert.Equal(t, before, after, "undo restores the entry exactly")

	_, err = r.Redo(ctx)
	require.NoError(t, err)
	_, err = r.Get("k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUndo_EmptyIsNoOp(t *testing.T) {
	t.Parallel()

	r := register.New()
	res, err := r.Undo(context.Background())
	require.NoError(t, err)

	if _, ok := register.ChangeFrom(res); ok {
		t.Errorf("ChangeFrom(%v) ok = true, want false for empty history", res)
	}
}

func TestSet_AfterUndoClearsRedo(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()

	_, _ = r.Set(ctx, "a", "1")
	_, _ = r.Set(ctx, "b", "2")
	_, _ = r.Undo(ctx)
	require.True(t, r.CanRedo())

	_, err := r.Set(ctx, "c", "3")
	require.NoError(t, err)
	assert.False(t, r.CanRedo())
	assert.Equal(t, map[string]string{"a": "1", "c": "3"}, values(r))
}

func TestStatus_ReflectsHistory(t *testing.T) {
	t.Parallel()

	r := register.New(undo.WithMaxDepth(10))
	ctx := context.Background()

	_, _ = r.Set(ctx, "a", "1")
	_, _ = r.Set(ctx, "a", "2")
	_, _ = r.Delete(ctx, "a")
	_, _ = r.Undo(ctx)

	s := r.Status()
	assert.True(t, s.CanUndo)
	assert.True(t, s.CanRedo)
	assert.Equal(t, 2, s.UndoCount)
	assert.Equal(t, 1, s.RedoCount)
	assert.Equal(t, int64(4), s.Revision)

	require.Len(t, s.Entries, 3)
	assert.Equal(t, `set "a"`, s.Entries[0].Description)
	assert.Equal(t, `delete "a"`, s.Entries[2].Description)
	assert.Equal(t, undo.StateUndone, s.Entries[2].State)
	require.NoError(t, r.Verify())
	assert.Equal(t, 10, s.MaxDepth)
}

func TestStatus_ConsistentUnderConcurrentUndoRedo(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()
	_, err := r.Set(ctx, "k", "v")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 2000 {
			_, _ = r.Undo(ctx)
			_, _ = r.Redo(ctx)
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}

		s := r.Status()
		if s.UndoCount+s.RedoCount != 1 || s.CanUndo != (s.UndoCount == 1) {
			t.Fatalf("torn status: %+v", s)
		}
		// Every forward and reverse call bumps the revision, so an odd
		// revision means the Set is currently applied.
		if applied := s.Revision%2 == 1; applied != (s.UndoCount == 1) {
			t.Fatalf("revision %d disagrees with UndoCount %d", s.Revision, s.UndoCount)
		}
	}
}

func TestClearHistory_KeepsEntries(t *testing.T) {
	t.Parallel()

	r := register.New()
	ctx := context.Background()
	_, _ = r.Set(ctx, "a", "1")
	_, _ = r.Set(ctx, "b", "2")
	_, _ = r.Undo(ctx)

	r.ClearHistory()

	s := r.Status()
	assert.False(t, s.CanUndo)
	assert.False(t, s.CanRedo)
	assert.Empty(t, s.Entries)
	assert.Equal(t, map[string]string{"a": "1"}, values(r))
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/undoable/internal/domain/register"
)

// RegisterService defines the service port for the undoable key/value
// register. Implemented by the application layer; called by inbound adapters
// (handlers).
type RegisterService interface {
	// ListEntries returns all entries sorted by key.
	ListEntries(ctx context.Context) ([]register.Entry, error)

	// GetEntry returns the entry stored under key.
	// Returns domain.ErrNotFound if the key does not exist.
	GetEntry(ctx context.Context, key string) (*register.Entry, error)

	// SetEntry stores value under key and records the change for undo.
	// Returns domain.ErrValidation if the key is empty or too long.
	SetEntry(ctx context.Context, key, value string) (*register.Change, error)

	// DeleteEntry removes key and records the change for undo.
	// Returns domain.ErrNotFound if the key does not exist.
	DeleteEntry(ctx context.Context, key string) (*register.Change, error)

	// Undo reverts the most recent change. Returns a nil Change, and no
	// error, when there is nothing to undo.
	Undo(ctx context.Context) (*register.Change, error)

	// Redo re-applies the most recently undone change. Returns a nil Change,
	// and no error, when there is nothing to redo.
	Redo(ctx context.Context) (*register.Change, error)

	// HistoryStatus returns a snapshot of the undo/redo history.
	HistoryStatus(ctx context.Context) (*register.Status, error)

	// ClearHistory forgets all undoable and redoable changes without touching
	// the entries, and returns the resulting (empty) history.
	ClearHistory(ctx context.Context) (*register.Status, error)
}

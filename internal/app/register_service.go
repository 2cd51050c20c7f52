// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/undoable/internal/domain"
	"github.com/jsamuelsen11/undoable/internal/domain/register"
	"github.com/jsamuelsen11/undoable/internal/ports"
)

// healthCheckName identifies the history consistency check in readiness
// reports.
const healthCheckName = "undo-history"

// Compile-time checks that RegisterService implements its ports.
var (
	_ ports.RegisterService = (*RegisterService)(nil)
	_ ports.HealthChecker   = (*RegisterService)(nil)
)

// RegisterService implements ports.RegisterService on top of a single
// in-process register. It owns request logging and error reporting; the
// register owns the undo/redo semantics.
type RegisterService struct {
	reg    *register.Register
	logger *slog.Logger
}

// NewRegisterService creates a RegisterService. A nil logger discards output.
func NewRegisterService(reg *register.Register, logger *slog.Logger) *RegisterService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RegisterService{
		reg:    reg,
		logger: logger,
	}
}

// ListEntries returns all entries sorted by key.
func (s *RegisterService) ListEntries(ctx context.Context) ([]register.Entry, error) {
	s.logger.DebugContext(ctx, "listing entries")
	return s.reg.List(), nil
}

// GetEntry returns the entry stored under key.
func (s *RegisterService) GetEntry(ctx context.Context, key string) (*register.Entry, error) {
	s.logger.DebugContext(ctx, "fetching entry", slog.String("key", key))

	e, err := s.reg.Get(key)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// SetEntry stores value under key.
func (s *RegisterService) SetEntry(ctx context.Context, key, value string) (*register.Change, error) {
	s.logger.InfoContext(ctx, "setting entry", slog.String("key", key))

	c, err := s.reg.Set(ctx, key, value)
	if err != nil {
		s.logFailure(ctx, "failed to set entry", err,
			slog.String("operation", "SetEntry"),
			slog.String("key", key),
		)
		return nil, err
	}
	return &c, nil
}

// DeleteEntry removes key.
func (s *RegisterService) DeleteEntry(ctx context.Context, key string) (*register.Change, error) {
	s.logger.InfoContext(ctx, "deleting entry", slog.String("key", key))

	c, err := s.reg.Delete(ctx, key)
	if err != nil {
		s.logFailure(ctx, "failed to delete entry", err,
			slog.String("operation", "DeleteEntry"),
			slog.String("key", key),
		)
		return nil, err
	}
	return &c, nil
}

// Undo reverts the most recent change, returning nil when there was nothing
// to undo.
func (s *RegisterService) Undo(ctx context.Context) (*register.Change, error) {
	s.logger.InfoContext(ctx, "undoing last change")
	return s.step(ctx, "Undo", s.reg.Undo)
}

// Redo re-applies the most recently undone change, returning nil when there
// was nothing to redo.
func (s *RegisterService) Redo(ctx context.Context) (*register.Change, error) {
	s.logger.InfoContext(ctx, "redoing last undone change")
	return s.step(ctx, "Redo", s.reg.Redo)
}

// HistoryStatus returns a snapshot of the undo/redo history.
func (s *RegisterService) HistoryStatus(ctx context.Context) (*register.Status, error) {
	s.logger.DebugContext(ctx, "fetching history status")

	st := s.reg.Status()
	return &st, nil
}

// ClearHistory drops the undo/redo history.
func (s *RegisterService) ClearHistory(ctx context.Context) (*register.Status, error) {
	before := s.reg.Status()
	s.reg.ClearHistory()
	s.logger.InfoContext(ctx, "history cleared",
		slog.Int("undo_count", before.UndoCount),
		slog.Int("redo_count", before.RedoCount),
	)

	st := s.reg.Status()
	return &st, nil
}

// Name returns the health check name.
func (s *RegisterService) Name() string {
	return healthCheckName
}

// HealthCheck reports whether the undo history is internally consistent.
func (s *RegisterService) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.reg.Verify()
}

func (s *RegisterService) step(
	ctx context.Context,
	operation string,
	fn func(context.Context) (any, error),
) (*register.Change, error) {
	res, err := fn(ctx)
	if err != nil {
		s.logFailure(ctx, "history transition failed", err, slog.String("operation", operation))
		return nil, err
	}

	c, ok := register.ChangeFrom(res)
	if !ok {
		s.logger.DebugContext(ctx, "nothing to "+strings.ToLower(operation))
		return nil, nil
	}
	return &c, nil
}

// logFailure logs err at Warn when it is a client error (validation, missing
// key) and at Error otherwise.
func (s *RegisterService) logFailure(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, msg, append(attrs, slog.Any("error", err))...)
}

package undo

import (
	"context"
	"slices"
)

// Undoer is the undo/redo method set a stateful type exposes by delegating to
// the History it owns.
type Undoer interface {
	CanUndo() bool
	CanRedo() bool
	Undo(ctx context.Context) (any, error)
	Redo(ctx context.Context) (any, error)
}

// ArgsTransform derives the backward arguments from the forward arguments.
// It runs before the forward operation, so it sees the state the forward
// operation is about to change.
type ArgsTransform func(args []any) []any

type wrapOptions struct {
	reverse     Operation
	reverseArgs ArgsTransform
	label       string
	describe    func(args []any) string
}

// WrapOption configures Wrap.
type WrapOption func(*wrapOptions)

// WithReverse sets the backward operation. Without it the forward operation
// is used as its own inverse, which is only correct for self-inverse
// operations such as toggles.
func WithReverse(op Operation) WrapOption {
	return func(o *wrapOptions) {
		o.reverse = op
	}
}

// WithReverseArgs sets the transform from forward to backward arguments.
// Without it, or with a nil fn, the backward operation receives the forward
// arguments.
func WithReverseArgs(fn ArgsTransform) WrapOption {
	return func(o *wrapOptions) {
		if fn != nil {
			o.reverseArgs = fn
		}
	}
}

// WithLabel sets the description of every transaction the wrapped operation
// records.
func WithLabel(label string) WrapOption {
	return func(o *wrapOptions) {
		o.label = label
	}
}

// WithDescribe derives each recorded transaction's description from the
// forward arguments. It takes precedence over WithLabel.
func WithDescribe(fn func(args []any) string) WrapOption {
	return func(o *wrapOptions) {
		o.describe = fn
	}
}

// Wrap returns an Operation that, on each call, derives the backward
// arguments, runs forward with the call's arguments and records the
// resulting transaction in h. Nothing is recorded when forward fails. A nil
// forward or reverse operation surfaces ErrInvalidOperation on call.
func Wrap(h *History, forward Operation, opts ...WrapOption) Operation {
	o := &wrapOptions{
		reverse:     forward,
		reverseArgs: func(args []any) []any { return slices.Clone(args) },
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(ctx context.Context, args ...any) (any, error) {
		return h.perform(ctx, func() (*Transaction, error) {
			var topts []TransactionOption
			switch {
			case o.describe != nil:
				topts = append(topts, WithDescription(o.describe(args)))
			case o.label != "":
				topts = append(topts, WithDescription(o.label))
			}
			return NewTransaction(forward, o.reverse, args, o.reverseArgs(args), topts...)
		})
	}
}

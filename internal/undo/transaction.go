package undo

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/undoable/internal/domain"
)

// ErrInvalidOperation is returned when a transaction is built from an
// operation that cannot be invoked. It wraps domain.ErrValidation.
var ErrInvalidOperation = fmt.Errorf("%w: undo: operation is not invocable", domain.ErrValidation)

// Operation is a unit of work that can be recorded in a History. The args are
// the values bound when the owning Transaction was created.
type Operation func(ctx context.Context, args ...any) (any, error)

// Transaction is one reversible unit of work. It is immutable once created
// and is compared by pointer identity.
type Transaction struct {
	forward      Operation
	forwardArgs  []any
	backward     Operation
	backwardArgs []any
	description  string
	createdAt    time.Time
}

// TransactionOption configures optional Transaction metadata.
type TransactionOption func(*Transaction)

// WithDescription sets the human-readable label reported by Description.
func WithDescription(desc string) TransactionOption {
	return func(t *Transaction) {
		t.description = desc
	}
}

// NewTransaction creates a Transaction that calls forward with forwardArgs on
// Apply and backward with backwardArgs on Revert. The argument slices are
// copied. Returns ErrInvalidOperation if either operation is nil.
func NewTransaction(
	forward, backward Operation,
	forwardArgs, backwardArgs []any,
	opts ...TransactionOption,
) (*Transaction, error) {
	if forward == nil {
		return nil, fmt.Errorf("%w: forward operation is nil", ErrInvalidOperation)
	}
	if backward == nil {
		return nil, fmt.Errorf("%w: backward operation is nil", ErrInvalidOperation)
	}

	t := &Transaction{
		forward:      forward,
		forwardArgs:  slices.Clone(forwardArgs),
		backward:     backward,
		backwardArgs: slices.Clone(backwardArgs),
		createdAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Apply runs the forward operation and returns its result.
func (t *Transaction) Apply(ctx context.Context) (any, error) {
	return t.forward(ctx, t.forwardArgs...)
}

// Revert runs the backward operation and returns its result.
func (t *Transaction) Revert(ctx context.Context) (any, error) {
	return t.backward(ctx, t.backwardArgs...)
}

// Description returns the label set with WithDescription, or String if none.
func (t *Transaction) Description() string {
	if t.description != "" {
		return t.description
	}
	return t.String()
}

// CreatedAt returns when the transaction was built.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// String renders the operations and bound arguments, e.g.
// "Transaction(register.(*Register).put,register.(*Register).restore,[k v],[k  false])".
func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction(%s,%s,%v,%v)",
		operationName(t.forward), operationName(t.backward), t.forwardArgs, t.backwardArgs)
}

// operationName resolves the function name behind op, trimmed to the last
// import path element.
func operationName(op Operation) string {
	fn := runtime.FuncForPC(reflect.ValueOf(op).Pointer())
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

package dto

import (
	"fmt"

	"github.com/jsamuelsen11/undoable/internal/domain"
)

// MaxValueLength is the longest value, in bytes, a PUT request may store.
const MaxValueLength = 64 << 10

// PutEntryRequest represents the JSON body for storing a value under a key.
// The key itself comes from the URL path.
type PutEntryRequest struct {
	Value *string `json:"value"`
}

// Validate checks that a value is present and within bounds.
// Returns a *domain.ValidationError if any checks fail.
func (r *PutEntryRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case r.Value == nil:
		fields["value"] = domain.MsgRequired
	case len(*r.Value) > MaxValueLength:
		fields["value"] = fmt.Sprintf("%s (max %d bytes, got %d)", domain.MsgTooLong, MaxValueLength, len(*r.Value))
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

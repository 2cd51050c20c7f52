// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/undoable/internal/domain/register"
)

// EntryResponse represents a single register entry in HTTP responses.
type EntryResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}

// EntryListResponse represents all register entries in HTTP responses.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

// ChangeResponse describes the outcome of a mutation, undo or redo. Changed
// is false when an undo or redo found nothing to do; the other fields are
// then omitted.
type ChangeResponse struct {
	Changed  bool    `json:"changed"`
	Key      string  `json:"key,omitempty"`
	Value    *string `json:"value,omitempty"`
	Present  bool    `json:"present"`
	Revision int64   `json:"revision,omitempty"`
}

// TransactionResponse represents one recorded transaction in the history.
type TransactionResponse struct {
	Description string `json:"description"`
	State       string `json:"state"`
	CreatedAt   string `json:"created_at"`
}

// HistoryResponse represents the undo/redo history in HTTP responses.
type HistoryResponse struct {
	CanUndo      bool                  `json:"can_undo"`
	CanRedo      bool                  `json:"can_redo"`
	UndoCount    int                   `json:"undo_count"`
	RedoCount    int                   `json:"redo_count"`
	MaxDepth     int                   `json:"max_depth"`
	Revision     int64                 `json:"revision"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToEntryResponse converts a register Entry to an HTTP response DTO.
func ToEntryResponse(e *register.Entry) EntryResponse {
	return EntryResponse{
		Key:       e.Key,
		Value:     e.Value,
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

// ToEntryListResponse converts register entries to an HTTP list response DTO.
func ToEntryListResponse(entries []register.Entry) EntryListResponse {
	items := make([]EntryResponse, len(entries))
	for i := range entries {
		items[i] = ToEntryResponse(&entries[i])
	}
	return EntryListResponse{
		Entries: items,
		Count:   len(items),
	}
}

// ToChangeResponse converts a register Change to an HTTP response DTO. A nil
// change yields Changed=false.
func ToChangeResponse(c *register.Change) ChangeResponse {
	if c == nil {
		return ChangeResponse{}
	}
	resp := ChangeResponse{
		Changed:  true,
		Key:      c.Key,
		Present:  c.Present,
		Revision: c.Revision,
	}
	if c.Present {
		v := c.Value
		resp.Value = &v
	}
	return resp
}

// ToHistoryResponse converts a register Status to an HTTP response DTO.
// Transactions are listed oldest first, applied before undone.
func ToHistoryResponse(s *register.Status) HistoryResponse {
	txns := make([]TransactionResponse, len(s.Entries))
	for i, e := range s.Entries {
		txns[i] = TransactionResponse{
			Description: e.Description,
			State:       string(e.State),
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
	}
	return HistoryResponse{
		CanUndo:      s.CanUndo,
		CanRedo:      s.CanRedo,
		UndoCount:    s.UndoCount,
		RedoCount:    s.RedoCount,
		MaxDepth:     s.MaxDepth,
		Revision:     s.Revision,
		Transactions: txns,
	}
}

package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/undoable/internal/adapters/http/dto"
	"github.com/jsamuelsen11/undoable/internal/domain/register"
	"github.com/jsamuelsen11/undoable/internal/undo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToEntryListResponse(t *testing.T) {
	t.Parallel()

	entries := []register.Entry{
		{Key: "a", Value: "1", UpdatedAt: testTime},
		{Key: "b", Value: "2", UpdatedAt: testTime},
	}

	got := dto.ToEntryListResponse(entries)

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if got.Entries[1].Key != "b" || got.Entries[1].Value != "2" {
		t.Errorf("Entries[1] = %+v, want key b value 2", got.Entries[1])
	}
	if got.Entries[0].UpdatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("UpdatedAt = %q, want RFC3339", got.Entries[0].UpdatedAt)
	}
}

func TestToEntryListResponse_EmptyIsNotNull(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToEntryListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != `{"entries":[],"count":0}` {
		t.Errorf("JSON = %s, want empty entries array", b)
	}
}

func TestToChangeResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		change   *register.Change
		wantJSON string
	}{
		{
			name:     "nil change",
			change:   nil,
			wantJSON: `{"changed":false,"present":false}`,
		},
		{
			name:     "key set",
			change:   &register.Change{Key: "k", Value: "v", Present: true, Revision: 3},
			wantJSON: `{"changed":true,"key":"k","value":"v","present":true,"revision":3}`,
		},
		{
			name:     "key set to empty value",
			change:   &register.Change{Key: "k", Present: true, Revision: 1},
			wantJSON: `{"changed":true,"key":"k","value":"","present":true,"revision":1}`,
		},
		{
			name:     "key removed",
			change:   &register.Change{Key: "k", Revision: 4},
			wantJSON: `{"changed":true,"key":"k","present":false,"revision":4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := json.Marshal(dto.ToChangeResponse(tt.change))
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(b) != tt.wantJSON {
				t.Errorf("JSON = %s, want %s", b, tt.wantJSON)
			}
		})
	}
}

func TestToHistoryResponse(t *testing.T) {
	t.Parallel()

	s := &register.Status{
		CanUndo:   true,
		CanRedo:   true,
		UndoCount: 1,
		RedoCount: 1,
		MaxDepth:  100,
		Revision:  3,
		Entries: []undo.Entry{
			{Description: `set "a"`, State: undo.StateApplied, CreatedAt: testTime},
			{Description: `set "b"`, State: undo.StateUndone, CreatedAt: testTime},
		},
	}

	got := dto.ToHistoryResponse(s)

	if !got.CanUndo || !got.CanRedo {
		t.Errorf("CanUndo/CanRedo = %v/%v, want true/true", got.CanUndo, got.CanRedo)
	}
	if got.Revision != 3 {
		t.Errorf("Revision = %d, want 3", got.Revision)
	}
	if got.MaxDepth != 100 {
		t.Errorf("MaxDepth = %d, want 100", got.MaxDepth)
	}
	if len(got.Transactions) != 2 {
		t.Fatalf("len(Transactions) = %d, want 2", len(got.Transactions))
	}
	if got.Transactions[1].State != "undone" {
		t.Errorf("Transactions[1].State = %q, want %q", got.Transactions[1].State, "undone")
	}
	if got.Transactions[0].Description != `set "a"` {
		t.Errorf("Transactions[0].Description = %q, want %q", got.Transactions[0].Description, `set "a"`)
	}
}

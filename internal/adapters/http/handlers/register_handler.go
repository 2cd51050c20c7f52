package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/undoable/internal/adapters/http/dto"
	"github.com/jsamuelsen11/undoable/internal/ports"
)

// RegisterHandler handles HTTP requests for register entries and their
// undo/redo history.
type RegisterHandler struct {
	svc ports.RegisterService
}

// NewRegisterHandler creates a new RegisterHandler with the given service port.
func NewRegisterHandler(svc ports.RegisterService) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// ListEntries handles GET /api/v1/entries.
func (h *RegisterHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryListResponse(entries))
}

// GetEntry handles GET /api/v1/entries/{key}.
func (h *RegisterHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.GetEntry(r.Context(), key)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(e))
}

// PutEntry handles PUT /api/v1/entries/{key}.
func (h *RegisterHandler) PutEntry(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PutEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.SetEntry(r.Context(), key, *req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangeResponse(c))
}

// DeleteEntry handles DELETE /api/v1/entries/{key}.
func (h *RegisterHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	key, err := parseKey(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.DeleteEntry(r.Context(), key)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangeResponse(c))
}

// GetHistory handles GET /api/v1/history.
func (h *RegisterHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.HistoryStatus(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHistoryResponse(s))
}

// ClearHistory handles DELETE /api/v1/history. Entries are unchanged; the
// response is the emptied history.
func (h *RegisterHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.ClearHistory(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHistoryResponse(s))
}

// Undo handles POST /api/v1/history/undo. An empty history is not an error;
// the response reports changed=false.
func (h *RegisterHandler) Undo(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Undo(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangeResponse(c))
}

// Redo handles POST /api/v1/history/redo. An empty redo stack is not an
// error; the response reports changed=false.
func (h *RegisterHandler) Redo(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Redo(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangeResponse(c))
}

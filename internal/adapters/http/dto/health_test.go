package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/undoable/internal/adapters/http/dto"
)

func TestToHealthResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		results     map[string]error
		wantStatus  string
		wantHealthy bool
		wantChecks  map[string]string
	}{
		{
			name:        "no checks",
			results:     map[string]error{},
			wantStatus:  dto.HealthReady,
			wantHealthy: true,
			wantChecks:  map[string]string{},
		},
		{
			name:        "all passing",
			results:     map[string]error{"undo-history": nil},
			wantStatus:  dto.HealthReady,
			wantHealthy: true,
			wantChecks:  map[string]string{"undo-history": dto.HealthOK},
		},
		{
			name: "one failing",
			results: map[string]error{
				"undo-history": errors.New("undo: inconsistent history"),
				"exporter":     nil,
			},
			wantStatus:  dto.HealthNotReady,
			wantHealthy: false,
			wantChecks: map[string]string{
				"undo-history": "undo: inconsistent history",
				"exporter":     dto.HealthOK,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, healthy := dto.ToHealthResponse(tt.results)
			assert.Equal(t, tt.wantHealthy, healthy)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}

package dto

// Health statuses reported by the liveness and readiness endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of /health/live and /health/ready. Checks is
// omitted for liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse folds checker results into a readiness response. The bool
// reports whether every check passed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = HealthOK
	}

	status := HealthReady
	if !healthy {
		status = HealthNotReady
	}
	return HealthResponse{Status: status, Checks: checks}, healthy
}

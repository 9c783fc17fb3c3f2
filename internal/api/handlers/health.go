package handlers

import (
	"net/http"
	"time"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
)

// Health returns the liveness handler for GET /v1/health.
func Health(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OK(w, http.StatusOK, map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		}, "API is running")
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint reporting whether the database answers a ping
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	residentsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	residentsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &residentsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, residentsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

package handlers

import (
	"net/http"

	"connectivity-check-service/internal/platform/logger"
	"connectivity-check-service/internal/ports"
	"connectivity-check-service/internal/services"
)

// CheckHandler answers with the outcome of a database connectivity check.
type CheckHandler struct {
	Clock ports.DatabaseClock
}

// Check probes the database and always answers 200 with a success or failure
// message, unless the probe fails for a reason outside the driver.
func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	res, err := services.CheckConnectivity(r.Context(), h.Clock)
	if err != nil {
		log.WithError(err).Error("connectivity check failed")
		writeServerError(w)
		return
	}

	if res.OK() {
		log.WithField("db_time", res.Timestamp).Info("database reachable")
	} else {
		log.WithField("reason", res.Message).Warn("database unreachable")
	}

	writeText(w, r, http.StatusOK, res.Render())
}

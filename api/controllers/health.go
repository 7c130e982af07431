package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/mentormatch-backend/api/responses"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck is one dependency probed by /health/ready.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} types.SuccessEnvelope{data=map[string]string}
// @Router       /health/live [get]
// @Router       /api/health [get]
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every dependency answers its ping.
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} types.SuccessEnvelope{data=map[string]string}
// @Failure      503 {object} types.ErrorEnvelope
// @Router       /health/ready [get]
func HealthReady(logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		status := map[string]string{}
		var failed []string
		for _, check := range checks {
			if check.Ping == nil {
				continue
			}
			if err := check.Ping(ctx); err != nil {
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", check.Name), "health.ready.failed", err)
				}
				status[check.Name] = "down"
				failed = append(failed, check.Name)
				continue
			}
			status[check.Name] = "up"
		}

		if len(failed) > 0 {
			responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").
				WithDetails(map[string]any{"checks": status}))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": status})
	}
}

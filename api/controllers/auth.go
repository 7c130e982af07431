package controllers

import (
	"net/http"

	"github.com/angelmondragon/mentormatch-backend/api/middleware"
	"github.com/angelmondragon/mentormatch-backend/api/responses"
	"github.com/angelmondragon/mentormatch-backend/api/validators"
	"github.com/angelmondragon/mentormatch-backend/internal/auth"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
)

// AuthSignup registers a mentor or mentee account.
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body auth.SignupRequest true "new account"
// @Success      201 {object} types.SuccessEnvelope{data=map[string]string}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      429 {object} types.ErrorEnvelope
// @Router       /api/signup [post]
func AuthSignup(svc auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "register service unavailable"))
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.Signup(r.Context(), body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "User created"})
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body auth.LoginRequest true "credentials"
// @Success      200 {object} types.SuccessEnvelope{data=auth.LoginResponse}
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      429 {object} types.ErrorEnvelope
// @Router       /api/login [post]
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the session behind the presented access token.
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessEnvelope{data=resultResponse}
// @Failure      401 {object} types.ErrorEnvelope
// @Router       /api/logout [post]
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		if err := svc.Logout(r.Context(), middleware.AccessIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resultBody("ok"))
	}
}

type resultResponse struct {
	Result string `json:"result"`
}

func resultBody(result string) resultResponse {
	return resultResponse{Result: result}
}

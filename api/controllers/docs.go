package controllers

import (
	"net/http"

	"github.com/swaggo/swag"

	"github.com/angelmondragon/mentormatch-backend/api/responses"
	"github.com/angelmondragon/mentormatch-backend/docs"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
)

const (
	DocsPath    = "/api/docs"
	OpenAPIPath = "/api/openapi.json"
)

// OpenAPISpec serves the registered swagger document.
func OpenAPISpec(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "openapi document unavailable"))
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}
}

// Redirect sends the client to target with 307 so the method is kept.
func Redirect(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	}
}

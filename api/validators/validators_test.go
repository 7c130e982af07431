package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
)

type sampleBody struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=mentor mentee"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","role":"mentor"}`))
	var body sampleBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Role != "mentor" {
		t.Fatalf("unexpected role %q", body.Role)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","role":"mentor","admin":true}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope","role":"admin"}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if !strings.HasPrefix(details["role"], "must be one of") {
		t.Fatalf("unexpected role detail %q", details["role"])
	}
}

func TestParseIDParam(t *testing.T) {
	cases := map[string]bool{"12": true, "0": false, "-3": false, "abc": false, "": false}
	for raw, ok := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rc := chi.NewRouteContext()
		rc.URLParams.Add("id", raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))

		id, err := ParseIDParam(req, "id")
		if ok && (err != nil || id != 12) {
			t.Fatalf("%q: expected 12, got %d %v", raw, id, err)
		}
		if !ok && pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
			t.Fatalf("%q: expected not found, got %v", raw, err)
		}
	}
}

package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/mentormatch-backend/api/middleware"
	"github.com/angelmondragon/mentormatch-backend/api/responses"
	"github.com/angelmondragon/mentormatch-backend/api/validators"
	"github.com/angelmondragon/mentormatch-backend/internal/profiles"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
)

type updateProfileRequest struct {
	ID     int64     `json:"id" validate:"required,gt=0"`
	Name   string    `json:"name" validate:"required,max=100"`
	Role   string    `json:"role" validate:"required,oneof=mentor mentee"`
	Bio    string    `json:"bio" validate:"max=2000"`
	Image  string    `json:"image"`
	Skills *[]string `json:"skills"`
}

type updateProfileResponse struct {
	Result   string `json:"result"`
	ImageURL string `json:"imageUrl"`
}

// Me returns the caller with their role-specific profile.
// @Summary      Current user
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.SuccessEnvelope{data=profiles.MeDTO}
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      404 {object} types.ErrorEnvelope
// @Router       /api/me [get]
func Me(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		me, err := svc.Me(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, me)
	}
}

// UpdateProfile replaces the caller's profile. The payload must name the
// caller and their role; the variant applied is chosen by the token role.
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body updateProfileRequest true "profile"
// @Success      200 {object} types.SuccessEnvelope{data=updateProfileResponse}
// @Failure      400 {object} types.ErrorEnvelope
// @Failure      401 {object} types.ErrorEnvelope
// @Router       /api/profile [put]
func UpdateProfile(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		var body updateProfileRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		role := middleware.RoleFromContext(r.Context())

		update, err := buildProfileUpdate(body, userID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		imageURL, err := svc.Update(r.Context(), userID, role, update)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updateProfileResponse{Result: "ok", ImageURL: imageURL})
	}
}

func buildProfileUpdate(body updateProfileRequest, userID int64, role enums.UserRole) (profiles.Update, error) {
	if body.ID != userID || body.Role != role.String() {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidRequest, "profile payload does not match the caller")
	}

	image, err := decodeImage(body.Image)
	if err != nil {
		return nil, err
	}

	switch role {
	case enums.UserRoleMentor:
		var skills []string
		if body.Skills != nil {
			skills = *body.Skills
		}
		set := types.NewSkillSet(skills...)
		if skill, bad := set.Separated(); bad {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidRequest, "skills must not contain commas").
				WithDetails(map[string]any{"skill": skill})
		}
		return profiles.MentorUpdate{
			Name:   body.Name,
			Bio:    body.Bio,
			Image:  image,
			Skills: set,
		}, nil
	case enums.UserRoleMentee:
		if body.Skills != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidRequest, "mentee profiles have no skills")
		}
		return profiles.MenteeUpdate{
			Name:  body.Name,
			Bio:   body.Bio,
			Image: image,
		}, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown role")
	}
}

// decodeImage accepts raw base64 or a data URL; an empty string keeps the current image.
func decodeImage(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "data:") {
		if idx := strings.Index(raw, ","); idx >= 0 {
			raw = raw[idx+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidImage, err, "image is not valid base64").
			WithDetails(map[string]string{"reason": "encoding"})
	}
	return data, nil
}

// ProfileImage serves a stored profile image or redirects to the role placeholder.
// @Summary      Profile image
// @Tags         profile
// @Produce      image/png
// @Produce      image/jpeg
// @Security     BearerAuth
// @Param        role path string true "mentor or mentee"
// @Param        id   path int    true "user id"
// @Success      200 {file} binary
// @Success      302 "redirect to the role placeholder"
// @Failure      401 {object} types.ErrorEnvelope
// @Failure      404 {object} types.ErrorEnvelope
// @Router       /api/images/{role}/{id} [get]
func ProfileImage(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable"))
			return
		}

		role, err := enums.ParseUserRole(strings.TrimSpace(chi.URLParam(r, "role")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "image not found"))
			return
		}
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		img, err := svc.Image(r.Context(), role, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Cache-Control", "private, max-age=60")
		if img.RedirectURL != "" {
			http.Redirect(w, r, img.RedirectURL, http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", img.ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img.Data)
	}
}

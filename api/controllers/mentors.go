package controllers

import (
	"net/http"

	"github.com/angelmondragon/mentormatch-backend/api/middleware"
	"github.com/angelmondragon/mentormatch-backend/api/responses"
	"github.com/angelmondragon/mentormatch-backend/api/validators"
	"github.com/angelmondragon/mentormatch-backend/internal/mentors"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
)

// ListMentors returns mentors filtered by ?skill= and sorted by ?orderBy=skill|name.
// @Summary      List mentors
// @Tags         mentors
// @Produce      json
// @Security     BearerAuth
// @Param        skill   query string false "case-sensitive substring of the joined skills"
// @Param        orderBy query string false "skill or name" Enums(skill, name)
// @Success      200 {object} types.SuccessEnvelope{data=[]mentors.MentorDTO}
// @Failure      401 {object} types.ErrorEnvelope
// @Router       /api/mentors [get]
func ListMentors(svc mentors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "mentor service unavailable"))
			return
		}

		list, err := svc.List(r.Context(), mentors.ListInput{
			ActorRole:   middleware.RoleFromContext(r.Context()),
			SkillFilter: validators.QueryString(r, "skill"),
			OrderBy:     mentors.ParseOrderBy(validators.QueryString(r, "orderBy")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

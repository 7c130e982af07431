package mentors

import (
	"context"
	"fmt"

	"github.com/angelmondragon/mentormatch-backend/internal/media"
	"github.com/angelmondragon/mentormatch-backend/internal/profiles"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
)

// MentorDTO is one entry of the mentor listing.
type MentorDTO struct {
	ID      int64               `json:"id"`
	Email   string              `json:"email"`
	Role    enums.UserRole      `json:"role"`
	Profile profiles.ProfileDTO `json:"profile"`
}

// ListInput carries the caller role and the optional filter and sort.
type ListInput struct {
	ActorRole   enums.UserRole
	SkillFilter string
	OrderBy     OrderBy
}

// Service lists mentors for mentees.
type Service interface {
	List(ctx context.Context, input ListInput) ([]MentorDTO, error)
}

type service struct {
	repo     *Repository
	resolver media.Resolver
}

func NewService(repo *Repository, resolver media.Resolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("mentors repository required")
	}
	return &service{repo: repo, resolver: resolver}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]MentorDTO, error) {
	if input.ActorRole != enums.UserRoleMentee {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "only a mentee can list mentors")
	}
	rows, err := s.repo.List(ctx, input.SkillFilter, input.OrderBy)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list mentors")
	}

	out := make([]MentorDTO, 0, len(rows))
	for _, row := range rows {
		skills := row.Skills
		if skills == nil {
			skills = types.SkillSet{}
		}
		out = append(out, MentorDTO{
			ID:    row.ID,
			Email: row.Email,
			Role:  enums.UserRoleMentor,
			Profile: profiles.ProfileDTO{
				Name:     row.Name,
				Bio:      row.Bio,
				ImageURL: s.resolver.Reference(enums.UserRoleMentor, row.ID, row.ImageKey != nil),
				Skills:   &skills,
			},
		})
	}
	return out, nil
}

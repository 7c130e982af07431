package profiles

import (
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
)

// ProfileDTO is the profile view returned by /me and the mentor listing.
// Skills is only set for mentors.
type ProfileDTO struct {
	Name     string          `json:"name"`
	Bio      string          `json:"bio"`
	ImageURL string          `json:"imageUrl"`
	Skills   *types.SkillSet `json:"skills,omitempty"`
}

// MeDTO is the caller's identity enriched with their profile.
type MeDTO struct {
	ID      int64          `json:"id"`
	Email   string         `json:"email"`
	Role    enums.UserRole `json:"role"`
	Profile ProfileDTO     `json:"profile"`
}

// Update is the role-specific profile change. Exactly one of MentorUpdate or
// MenteeUpdate applies, picked by the authenticated role.
type Update interface {
	Role() enums.UserRole
	common() commonFields
}

type commonFields struct {
	Name  string
	Bio   string
	Image []byte
}

// MentorUpdate replaces a mentor's name, bio and skills. An empty Image keeps
// the current picture.
type MentorUpdate struct {
	Name   string
	Bio    string
	Image  []byte
	Skills types.SkillSet
}

func (MentorUpdate) Role() enums.UserRole { return enums.UserRoleMentor }

func (u MentorUpdate) common() commonFields {
	return commonFields{Name: u.Name, Bio: u.Bio, Image: u.Image}
}

// MenteeUpdate replaces a mentee's name and bio. An empty Image keeps the
// current picture.
type MenteeUpdate struct {
	Name  string
	Bio   string
	Image []byte
}

func (MenteeUpdate) Role() enums.UserRole { return enums.UserRoleMentee }

func (u MenteeUpdate) common() commonFields {
	return commonFields{Name: u.Name, Bio: u.Bio, Image: u.Image}
}

// ImageResult carries either the stored image or the placeholder to redirect to.
type ImageResult struct {
	Data        []byte
	ContentType string
	RedirectURL string
}

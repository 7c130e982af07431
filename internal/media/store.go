package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
)

var ErrNotFound = errors.New("object not found")

// Object is a stored image with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// Store persists profile images. Put must be atomic: readers see either the
// previous object or the new one, never a partial write.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// Key is the stable storage key for a user's profile image.
func Key(role enums.UserRole, userID int64) string {
	return fmt.Sprintf("profiles/%s/%d", role, userID)
}

// Resolver turns stored image state into client-facing URLs.
type Resolver struct {
	mentorPlaceholder string
	menteePlaceholder string
}

func NewResolver(mentorPlaceholder, menteePlaceholder string) Resolver {
	return Resolver{mentorPlaceholder: mentorPlaceholder, menteePlaceholder: menteePlaceholder}
}

// ImageURL is the API path serving a stored image.
func ImageURL(role enums.UserRole, userID int64) string {
	return fmt.Sprintf("/api/images/%s/%d", role, userID)
}

// Placeholder is the deterministic per-role image used when none is stored.
func (r Resolver) Placeholder(role enums.UserRole) string {
	if role == enums.UserRoleMentor {
		return r.mentorPlaceholder
	}
	return r.menteePlaceholder
}

// Reference returns the stored image URL, or the role placeholder.
func (r Resolver) Reference(role enums.UserRole, userID int64, stored bool) string {
	if stored {
		return ImageURL(role, userID)
	}
	return r.Placeholder(role)
}

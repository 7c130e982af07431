package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/mentormatch-backend/internal/media"
	"github.com/angelmondragon/mentormatch-backend/internal/users"
	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service reads and updates role-specific profiles.
type Service interface {
	Get(ctx context.Context, userID int64, role enums.UserRole) (*ProfileDTO, error)
	Me(ctx context.Context, userID int64) (*MeDTO, error)
	Update(ctx context.Context, userID int64, role enums.UserRole, update Update) (string, error)
	Image(ctx context.Context, role enums.UserRole, userID int64) (*ImageResult, error)
}

type service struct {
	users    *users.Repository
	repo     *Repository
	tx       txRunner
	store    media.Store
	rules    media.Rules
	resolver media.Resolver
}

// ServiceParams bundles the profile service collaborators.
type ServiceParams struct {
	Users    *users.Repository
	Repo     *Repository
	Tx       txRunner
	Store    media.Store
	Rules    media.Rules
	Resolver media.Resolver
}

func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("profiles repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("image store required")
	}
	return &service{
		users:    params.Users,
		repo:     params.Repo,
		tx:       params.Tx,
		store:    params.Store,
		rules:    params.Rules,
		resolver: params.Resolver,
	}, nil
}

func (s *service) Get(ctx context.Context, userID int64, role enums.UserRole) (*ProfileDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}
	if user.Role != role {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	return s.profileFor(ctx, s.repo, user)
}

func (s *service) Me(ctx context.Context, userID int64) (*MeDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(err)
	}
	profile, err := s.profileFor(ctx, s.repo, user)
	if err != nil {
		return nil, err
	}
	return &MeDTO{
		ID:      user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Profile: *profile,
	}, nil
}

// profileFor assembles the view, falling back to empty defaults when the
// profile row is missing.
func (s *service) profileFor(ctx context.Context, repo *Repository, user *models.User) (*ProfileDTO, error) {
	dto := &ProfileDTO{Name: user.Name}
	switch user.Role {
	case enums.UserRoleMentor:
		skills := types.SkillSet{}
		profile, err := repo.FindMentor(ctx, user.ID)
		switch {
		case err == nil:
			dto.Bio = profile.Bio
			if profile.Skills != nil {
				skills = profile.Skills
			}
			dto.ImageURL = s.resolver.Reference(user.Role, user.ID, profile.ImageKey != nil)
		case errors.Is(err, gorm.ErrRecordNotFound):
			dto.ImageURL = s.resolver.Placeholder(user.Role)
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mentor profile")
		}
		dto.Skills = &skills
	case enums.UserRoleMentee:
		profile, err := repo.FindMentee(ctx, user.ID)
		switch {
		case err == nil:
			dto.Bio = profile.Bio
			dto.ImageURL = s.resolver.Reference(user.Role, user.ID, profile.ImageKey != nil)
		case errors.Is(err, gorm.ErrRecordNotFound):
			dto.ImageURL = s.resolver.Placeholder(user.Role)
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mentee profile")
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user has unknown role")
	}
	return dto, nil
}

// Update applies the whole change or none of it. The image is validated
// before the transaction opens and written as its last step, so a bad image
// leaves name, bio and skills untouched.
func (s *service) Update(ctx context.Context, userID int64, role enums.UserRole, update Update) (string, error) {
	if update == nil {
		return "", pkgerrors.New(pkgerrors.CodeInvalidRequest, "profile payload required")
	}
	if update.Role() != role {
		return "", pkgerrors.New(pkgerrors.CodeInvalidRequest, "profile payload does not match caller role")
	}

	fields := update.common()
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is required").
			WithDetails(map[string]string{"name": "required"})
	}

	if mentor, ok := update.(MentorUpdate); ok {
		if skill, bad := mentor.Skills.Separated(); bad {
			return "", pkgerrors.New(pkgerrors.CodeInvalidRequest, "skills must not contain commas").
				WithDetails(map[string]any{"skill": skill})
		}
	}

	var img *media.Image
	if len(fields.Image) > 0 {
		validated, err := s.rules.Validate(fields.Image)
		if err != nil {
			return "", err
		}
		img = validated
	}

	key := media.Key(role, userID)
	var hasImage bool
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		usersRepo := s.users.WithTx(tx)
		repo := s.repo.WithTx(tx)

		user, err := usersRepo.FindByID(ctx, userID)
		if err != nil {
			return userLookupError(err)
		}
		if user.Role != role {
			return pkgerrors.New(pkgerrors.CodeUnauthorized, "role does not match account")
		}
		if err := usersRepo.UpdateName(ctx, userID, name); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update name")
		}

		now := time.Now().UTC()
		switch u := update.(type) {
		case MentorUpdate:
			profile, err := loadOrNew(repo.FindMentor(ctx, userID))
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mentor profile")
			}
			if profile == nil {
				profile = &models.MentorProfile{UserID: userID}
			}
			profile.Bio = fields.Bio
			profile.Skills = types.NewSkillSet(u.Skills...)
			profile.UpdatedAt = now
			if img != nil {
				profile.ImageKey = &key
				profile.ImageContentType = &img.ContentType
			}
			if err := repo.UpsertMentor(ctx, profile); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save mentor profile")
			}
			hasImage = profile.ImageKey != nil
		case MenteeUpdate:
			profile, err := loadOrNew(repo.FindMentee(ctx, userID))
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mentee profile")
			}
			if profile == nil {
				profile = &models.MenteeProfile{UserID: userID}
			}
			profile.Bio = fields.Bio
			profile.UpdatedAt = now
			if img != nil {
				profile.ImageKey = &key
				profile.ImageContentType = &img.ContentType
			}
			if err := repo.UpsertMentee(ctx, profile); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save mentee profile")
			}
			hasImage = profile.ImageKey != nil
		default:
			return pkgerrors.New(pkgerrors.CodeInvalidRequest, "unsupported profile payload")
		}

		if img != nil {
			if err := s.store.Put(ctx, key, img.Data, img.ContentType); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store profile image")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return s.resolver.Reference(role, userID, hasImage), nil
}

// Image returns the stored picture for a profile, or the placeholder to
// redirect to when none was uploaded.
func (s *service) Image(ctx context.Context, role enums.UserRole, userID int64) (*ImageResult, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "image not found")
	}
	obj, err := s.store.Get(ctx, media.Key(role, userID))
	switch {
	case err == nil:
		return &ImageResult{Data: obj.Data, ContentType: obj.ContentType}, nil
	case errors.Is(err, media.ErrNotFound):
		return &ImageResult{RedirectURL: s.resolver.Placeholder(role)}, nil
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read profile image")
	}
}

func loadOrNew[T any](row *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
}

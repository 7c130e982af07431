package profiles

import (
	"context"
	"fmt"

	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists the role-specific profile rows.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx rebinds the repository to an open transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// CreateEmpty inserts the blank profile that accompanies a new user.
func (r *Repository) CreateEmpty(ctx context.Context, userID int64, role enums.UserRole) error {
	switch role {
	case enums.UserRoleMentor:
		return r.db.WithContext(ctx).Create(&models.MentorProfile{UserID: userID}).Error
	case enums.UserRoleMentee:
		return r.db.WithContext(ctx).Create(&models.MenteeProfile{UserID: userID}).Error
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}

func (r *Repository) FindMentor(ctx context.Context, userID int64) (*models.MentorProfile, error) {
	var profile models.MentorProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) FindMentee(ctx context.Context, userID int64) (*models.MenteeProfile, error) {
	var profile models.MenteeProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertMentor writes the full mentor profile, inserting it when missing.
func (r *Repository) UpsertMentor(ctx context.Context, profile *models.MentorProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bio", "skills", "image_key", "image_content_type", "updated_at"}),
		}).
		Create(profile).Error
}

// UpsertMentee writes the full mentee profile, inserting it when missing.
func (r *Repository) UpsertMentee(ctx context.Context, profile *models.MenteeProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bio", "image_key", "image_content_type", "updated_at"}),
		}).
		Create(profile).Error
}

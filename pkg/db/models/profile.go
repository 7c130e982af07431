package models

import (
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/types"
)

// MentorProfile is created empty alongside a mentor user.
type MentorProfile struct {
	UserID           int64          `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Bio              string         `gorm:"type:text;not null;default:''"`
	Skills           types.SkillSet `gorm:"type:text;not null;default:''"`
	ImageKey         *string        `gorm:"column:image_key"`
	ImageContentType *string        `gorm:"column:image_content_type"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (MentorProfile) TableName() string { return "mentor_profiles" }

// MenteeProfile is created empty alongside a mentee user.
type MenteeProfile struct {
	UserID           int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Bio              string    `gorm:"type:text;not null;default:''"`
	ImageKey         *string   `gorm:"column:image_key"`
	ImageContentType *string   `gorm:"column:image_content_type"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (MenteeProfile) TableName() string { return "mentee_profiles" }

package models

import (
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
)

// MatchRequest is a mentee's proposal to a mentor. Rows are never deleted;
// cancellation and rejection are terminal statuses.
type MatchRequest struct {
	ID        int64                    `gorm:"primaryKey;autoIncrement"`
	MentorID  int64                    `gorm:"column:mentor_id;not null;index:idx_match_requests_mentor"`
	MenteeID  int64                    `gorm:"column:mentee_id;not null;index:idx_match_requests_mentee"`
	Message   string                   `gorm:"type:text;not null;default:''"`
	Status    enums.MatchRequestStatus `gorm:"type:text;not null;default:'pending'"`
	DecidedAt *time.Time               `gorm:"column:decided_at"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

func (MatchRequest) TableName() string { return "match_requests" }

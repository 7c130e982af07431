package matching

import (
	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
)

// Actor is the authenticated caller of a ledger operation.
type Actor struct {
	UserID int64
	Role   enums.UserRole
}

// CreateInput carries a mentee's new match request.
type CreateInput struct {
	Actor    Actor
	MentorID int64
	MenteeID int64
	Message  string
}

// MatchRequestDTO is the wire shape of a match request.
type MatchRequestDTO struct {
	ID       int64                    `json:"id"`
	MentorID int64                    `json:"mentorId"`
	MenteeID int64                    `json:"menteeId"`
	Message  string                   `json:"message"`
	Status   enums.MatchRequestStatus `json:"status"`
}

func FromModel(m *models.MatchRequest) *MatchRequestDTO {
	if m == nil {
		return nil
	}
	return &MatchRequestDTO{
		ID:       m.ID,
		MentorID: m.MentorID,
		MenteeID: m.MenteeID,
		Message:  m.Message,
		Status:   m.Status,
	}
}

func fromModels(rows []models.MatchRequest) []MatchRequestDTO {
	out := make([]MatchRequestDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

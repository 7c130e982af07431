package matching

import (
	"context"
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository persists match requests.
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

func (r *Repository) Create(ctx context.Context, req *models.MatchRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.MatchRequest, error) {
	var req models.MatchRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FindActiveForPair returns the pending or accepted row between the two users.
func (r *Repository) FindActiveForPair(ctx context.Context, mentorID, menteeID int64) (*models.MatchRequest, error) {
	var req models.MatchRequest
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND mentee_id = ? AND status IN ?", mentorID, menteeID, []enums.MatchRequestStatus{
			enums.MatchRequestStatusPending,
			enums.MatchRequestStatusAccepted,
		}).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindPendingForMentee returns the mentee's outstanding request, if any.
func (r *Repository) FindPendingForMentee(ctx context.Context, menteeID int64) (*models.MatchRequest, error) {
	var req models.MatchRequest
	err := r.db.WithContext(ctx).
		Where("mentee_id = ? AND status = ?", menteeID, enums.MatchRequestStatusPending).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindAcceptedForMentor returns an accepted row of the mentor other than excludeID.
func (r *Repository) FindAcceptedForMentor(ctx context.Context, mentorID, excludeID int64) (*models.MatchRequest, error) {
	var req models.MatchRequest
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND status = ? AND id <> ?", mentorID, enums.MatchRequestStatusAccepted, excludeID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// TransitionStatus moves the row from one status to another. The update only
// applies while the row still holds from; the affected row count tells the
// caller whether it won.
func (r *Repository) TransitionStatus(ctx context.Context, id int64, from, to enums.MatchRequestStatus, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.MatchRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":     to,
			"decided_at": at,
			"updated_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *Repository) ListByMentor(ctx context.Context, mentorID int64) ([]models.MatchRequest, error) {
	var rows []models.MatchRequest
	if err := r.db.WithContext(ctx).Where("mentor_id = ?", mentorID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListByMentee(ctx context.Context, menteeID int64) ([]models.MatchRequest, error) {
	var rows []models.MatchRequest
	if err := r.db.WithContext(ctx).Where("mentee_id = ?", menteeID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/mentormatch-backend/internal/users"
	"github.com/angelmondragon/mentormatch-backend/pkg/db"
	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
	"github.com/angelmondragon/mentormatch-backend/pkg/metrics"
	"gorm.io/gorm"
)

const (
	opCreate       = "create"
	opAccept       = "accept"
	opReject       = "reject"
	opCancel       = "cancel"
	opListIncoming = "list_incoming"
	opListOutgoing = "list_outgoing"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service is the match request ledger. Every mutation checks its invariants
// and writes inside one transaction that holds the participant's user row
// lock: the mentee for create and cancel, the mentor for accept and reject.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*MatchRequestDTO, error)
	Accept(ctx context.Context, actor Actor, id int64) (*MatchRequestDTO, error)
	Reject(ctx context.Context, actor Actor, id int64) (*MatchRequestDTO, error)
	Cancel(ctx context.Context, actor Actor, id int64) (*MatchRequestDTO, error)
	ListIncoming(ctx context.Context, actor Actor) ([]MatchRequestDTO, error)
	ListOutgoing(ctx context.Context, actor Actor) ([]MatchRequestDTO, error)
}

type service struct {
	repo    *Repository
	users   *users.Repository
	tx      txRunner
	logg    *logger.Logger
	metrics *metrics.LedgerMetrics
	now     func() time.Time
}

// ServiceParams bundles the ledger collaborators.
type ServiceParams struct {
	Repo    *Repository
	Users   *users.Repository
	Tx      txRunner
	Logger  *logger.Logger
	Metrics *metrics.LedgerMetrics
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("match request repository required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:    params.Repo,
		users:   params.Users,
		tx:      params.Tx,
		logg:    logg,
		metrics: params.Metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (result *MatchRequestDTO, err error) {
	defer s.observe(opCreate, time.Now(), &err)

	if input.Actor.Role != enums.UserRoleMentee || input.Actor.UserID != input.MenteeID {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "only a mentee can send a match request for themselves")
	}
	if input.MentorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidReference, "mentor not found")
	}

	var created *models.MatchRequest
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		usersRepo := s.users.WithTx(tx)
		repo := s.repo.WithTx(tx)

		if err := lockParticipant(ctx, usersRepo, input.MenteeID, enums.UserRoleMentee); err != nil {
			return err
		}

		mentor, err := usersRepo.FindByID(ctx, input.MentorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeInvalidReference, "mentor not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load mentor")
		}
		if mentor.Role != enums.UserRoleMentor {
			return pkgerrors.New(pkgerrors.CodeInvalidReference, "mentor not found")
		}

		if existing, err := repo.FindActiveForPair(ctx, input.MentorID, input.MenteeID); err == nil {
			return pkgerrors.New(pkgerrors.CodeDuplicateRequest, "an active match request to this mentor already exists").
				WithDetails(conflictDetails(existing))
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check pair")
		}

		if existing, err := repo.FindPendingForMentee(ctx, input.MenteeID); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflictPending, "another match request is still pending").
				WithDetails(conflictDetails(existing))
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check pending requests")
		}

		row := &models.MatchRequest{
			MentorID: input.MentorID,
			MenteeID: input.MenteeID,
			Message:  input.Message,
			Status:   enums.MatchRequestStatusPending,
		}
		if err := repo.Create(ctx, row); err != nil {
			return classifyWriteError(err, "create match request")
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logTransition(ctx, "match_request.created", created)
	return FromModel(created), nil
}

func (s *service) Accept(ctx context.Context, actor Actor, id int64) (result *MatchRequestDTO, err error) {
	defer s.observe(opAccept, time.Now(), &err)
	return s.decide(ctx, actor, id, enums.MatchRequestStatusAccepted)
}

func (s *service) Reject(ctx context.Context, actor Actor, id int64) (result *MatchRequestDTO, err error) {
	defer s.observe(opReject, time.Now(), &err)
	return s.decide(ctx, actor, id, enums.MatchRequestStatusRejected)
}

func (s *service) Cancel(ctx context.Context, actor Actor, id int64) (result *MatchRequestDTO, err error) {
	defer s.observe(opCancel, time.Now(), &err)
	return s.decide(ctx, actor, id, enums.MatchRequestStatusCancelled)
}

// decide runs accept, reject and cancel. The mentor owns accept and reject,
// the mentee owns cancel.
func (s *service) decide(ctx context.Context, actor Actor, id int64, target enums.MatchRequestStatus) (*MatchRequestDTO, error) {
	ownerRole := enums.UserRoleMentor
	if target == enums.MatchRequestStatusCancelled {
		ownerRole = enums.UserRoleMentee
	}
	if actor.Role != ownerRole {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, fmt.Sprintf("only a %s can %s match requests", ownerRole, verbFor(target)))
	}
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "match request not found")
	}

	var updated *models.MatchRequest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		usersRepo := s.users.WithTx(tx)
		repo := s.repo.WithTx(tx)

		if err := lockParticipant(ctx, usersRepo, actor.UserID, ownerRole); err != nil {
			return err
		}

		row, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "match request not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load match request")
		}

		owner := row.MentorID
		if ownerRole == enums.UserRoleMentee {
			owner = row.MenteeID
		}
		if owner != actor.UserID {
			return pkgerrors.New(pkgerrors.CodeUnauthorized, "match request belongs to another user")
		}

		if target == enums.MatchRequestStatusAccepted {
			if engaged, err := repo.FindAcceptedForMentor(ctx, row.MentorID, row.ID); err == nil {
				return pkgerrors.New(pkgerrors.CodeAlreadyEngaged, "mentor already accepted another match request").
					WithDetails(conflictDetails(engaged))
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check accepted requests")
			}
		}

		if !row.Status.CanTransitionTo(target) {
			return invalidTransition(row.Status, target)
		}

		now := s.now()
		affected, err := repo.TransitionStatus(ctx, row.ID, row.Status, target, now)
		if err != nil {
			return classifyWriteError(err, "update match request status")
		}
		if affected == 0 {
			current, err := repo.FindByID(ctx, row.ID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload match request")
			}
			return invalidTransition(current.Status, target)
		}

		row.Status = target
		row.DecidedAt = &now
		row.UpdatedAt = now
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logTransition(ctx, "match_request."+string(target), updated)
	return FromModel(updated), nil
}

func (s *service) ListIncoming(ctx context.Context, actor Actor) (result []MatchRequestDTO, err error) {
	defer s.observe(opListIncoming, time.Now(), &err)
	if actor.Role != enums.UserRoleMentor {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "only a mentor can view incoming requests")
	}
	rows, err := s.repo.ListByMentor(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list incoming requests")
	}
	return fromModels(rows), nil
}

func (s *service) ListOutgoing(ctx context.Context, actor Actor) (result []MatchRequestDTO, err error) {
	defer s.observe(opListOutgoing, time.Now(), &err)
	if actor.Role != enums.UserRoleMentee {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "only a mentee can view outgoing requests")
	}
	rows, err := s.repo.ListByMentee(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list outgoing requests")
	}
	return fromModels(rows), nil
}

// lockParticipant takes the row lock every competing writer for this user
// serializes on, and confirms the account still has the expected role.
func lockParticipant(ctx context.Context, usersRepo *users.Repository, userID int64, role enums.UserRole) error {
	user, err := usersRepo.LockByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeUnauthorized, "account not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock participant")
	}
	if user.Role != role {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "role does not match account")
	}
	return nil
}

// classifyWriteError maps a unique index violation to the invariant it backs.
func classifyWriteError(err error, action string) error {
	name, ok := db.ViolatedUniqueIndex(err)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
	}
	switch name {
	case db.IndexMatchPairActive:
		return pkgerrors.Wrap(pkgerrors.CodeDuplicateRequest, err, "an active match request to this mentor already exists")
	case db.IndexMatchMenteePending:
		return pkgerrors.Wrap(pkgerrors.CodeConflictPending, err, "another match request is still pending")
	case db.IndexMatchMentorAccepted:
		return pkgerrors.Wrap(pkgerrors.CodeAlreadyEngaged, err, "mentor already accepted another match request")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
	}
}

func invalidTransition(from, to enums.MatchRequestStatus) error {
	return pkgerrors.New(pkgerrors.CodeInvalidTransition, fmt.Sprintf("cannot move match request from %s to %s", from, to)).
		WithDetails(map[string]string{"from": string(from), "to": string(to)})
}

func conflictDetails(existing *models.MatchRequest) map[string]any {
	return map[string]any{
		"matchRequestId": existing.ID,
		"status":         existing.Status,
	}
}

func verbFor(target enums.MatchRequestStatus) string {
	switch target {
	case enums.MatchRequestStatusAccepted:
		return "accept"
	case enums.MatchRequestStatusRejected:
		return "reject"
	default:
		return "cancel"
	}
}

func (s *service) observe(operation string, started time.Time, errp *error) {
	outcome := metrics.OutcomeOK
	if errp != nil && *errp != nil {
		outcome = string(pkgerrors.CodeOf(*errp))
	}
	s.metrics.Observe(operation, outcome, time.Since(started))
}

func (s *service) logTransition(ctx context.Context, event string, row *models.MatchRequest) {
	ctx = s.logg.WithMatchRequestID(ctx, row.ID)
	ctx = s.logg.WithFields(ctx, map[string]any{
		"mentor_id": row.MentorID,
		"mentee_id": row.MenteeID,
		"status":    string(row.Status),
	})
	s.logg.Info(ctx, event)
}

package admin

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"tixnaija/internal/domain"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidSubRole = errors.New("sub role not valid for role")
	ErrSelfDemotion   = errors.New("cannot change own role")
)

type userStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	SetBan(ctx context.Context, userID int64, banned bool, reason string, expires *time.Time) error
	SetSubRole(ctx context.Context, userID int64, role domain.UserRole, sub domain.UserSubRole) error
}

type Service struct {
	users userStore
	log   *zerolog.Logger
}

func NewService(users userStore, log *zerolog.Logger) *Service {
	return &Service{users: users, log: log}
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *Service) BanUser(ctx context.Context, userID int64, reason string, expires *time.Time) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}
	if err := s.users.SetBan(ctx, userID, true, reason, expires); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", userID).Str("reason", reason).Msg("user banned")
	return nil
}

func (s *Service) UnbanUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}
	if err := s.users.SetBan(ctx, userID, false, "", nil); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", userID).Msg("user unbanned")
	return nil
}

// ChangeRole reassigns a user's role pair. The acting admin cannot change
// their own assignment.
func (s *Service) ChangeRole(ctx context.Context, actorID, userID int64, role domain.UserRole, sub domain.UserSubRole) error {
	if actorID == userID {
		return ErrSelfDemotion
	}
	if !domain.ValidSubRole(role, sub) {
		return ErrInvalidSubRole
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}
	if err := s.users.SetSubRole(ctx, userID, role, sub); err != nil {
		return err
	}
	s.log.Info().
		Int64("user_id", userID).
		Str("role", string(role)).
		Str("sub_role", string(sub)).
		Msg("user role changed")
	return nil
}

package admin

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type mockAdminUserStore struct {
	users map[int64]*domain.User
}

func (m *mockAdminUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockAdminUserStore) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *mockAdminUserStore) SetBan(ctx context.Context, userID int64, banned bool, reason string, expires *time.Time) error {
	u := m.users[userID]
	u.IsBanned = banned
	u.BanReason = reason
	u.BanExpires = expires
	return nil
}

func (m *mockAdminUserStore) SetSubRole(ctx context.Context, userID int64, role domain.UserRole, sub domain.UserSubRole) error {
	u := m.users[userID]
	u.Role = role
	u.SubRole = sub
	return nil
}

func newAdminService(users map[int64]*domain.User) (*Service, *mockAdminUserStore) {
	store := &mockAdminUserStore{users: users}
	log := zerolog.Nop()
	return NewService(store, &log), store
}

func attendee(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleUser, SubRole: domain.SubRoleOrdinary}
}

func TestBanUnban(t *testing.T) {
	svc, store := newAdminService(map[int64]*domain.User{7: attendee(7)})
	ctx := context.Background()

	expires := time.Now().Add(72 * time.Hour)
	assert.NoError(t, svc.BanUser(ctx, 7, "chargeback fraud", &expires))
	assert.True(t, store.users[7].IsBanned)
	assert.Equal(t, "chargeback fraud", store.users[7].BanReason)

	assert.NoError(t, svc.UnbanUser(ctx, 7))
	assert.False(t, store.users[7].IsBanned)
	assert.Empty(t, store.users[7].BanReason)
	assert.Nil(t, store.users[7].BanExpires)
}

func TestBanUser_Unknown(t *testing.T) {
	svc, _ := newAdminService(map[int64]*domain.User{})
	err := svc.BanUser(context.Background(), 99, "spam", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangeRole(t *testing.T) {
	svc, store := newAdminService(map[int64]*domain.User{7: attendee(7)})
	ctx := context.Background()

	assert.NoError(t, svc.ChangeRole(ctx, 1, 7, domain.RoleAdmin, domain.SubRoleStaff))
	assert.Equal(t, domain.RoleAdmin, store.users[7].Role)
	assert.Equal(t, domain.SubRoleStaff, store.users[7].SubRole)
}

func TestChangeRole_InvalidPair(t *testing.T) {
	svc, _ := newAdminService(map[int64]*domain.User{7: attendee(7)})

	// ORGANIZER belongs to USER, not ADMIN.
	err := svc.ChangeRole(context.Background(), 1, 7, domain.RoleAdmin, domain.SubRoleOrganizer)
	assert.ErrorIs(t, err, ErrInvalidSubRole)
}

func TestChangeRole_Self(t *testing.T) {
	svc, _ := newAdminService(map[int64]*domain.User{1: attendee(1)})

	err := svc.ChangeRole(context.Background(), 1, 1, domain.RoleUser, domain.SubRoleOrdinary)
	assert.ErrorIs(t, err, ErrSelfDemotion)
}

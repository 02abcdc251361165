package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Table("users").Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Table("users").Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Table("users").Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Table("users").Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Table("users").Where("id = ?", u.ID).Updates(map[string]any{
		"name":  u.Name,
		"phone": u.Phone,
	}).Error
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var users []domain.User
	var total int64

	if err := r.db.WithContext(ctx).Table("users").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Table("users").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) SetBan(ctx context.Context, userID int64, banned bool, reason string, expires *time.Time) error {
	updates := map[string]any{
		"is_banned":  banned,
		"ban_reason": reason,
	}
	if banned {
		updates["ban_expires"] = expires
	} else {
		updates["ban_reason"] = ""
		updates["ban_expires"] = nil
	}
	return r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) SetSubRole(ctx context.Context, userID int64, role domain.UserRole, sub domain.UserSubRole) error {
	return r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Updates(map[string]any{
		"role":     role,
		"sub_role": sub,
	}).Error
}

package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type mockSettingRepo struct {
	values   map[string]string
	getCalls int
	fail     error
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*domain.PlatformSetting, error) {
	m.getCalls++
	if m.fail != nil {
		return nil, m.fail
	}
	v, ok := m.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.PlatformSetting{Key: key, Value: v}, nil
}

func (m *mockSettingRepo) Upsert(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func (m *mockSettingRepo) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *mockSettingRepo) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	out := make([]domain.PlatformSetting, 0, len(m.values))
	for k, v := range m.values {
		out = append(out, domain.PlatformSetting{Key: k, Value: v})
	}
	return out, nil
}

func newCacheService(repo *mockSettingRepo, ttl time.Duration) (*Service, *time.Time) {
	log := zerolog.Nop()
	svc := NewService(repo, &log, ttl)
	now := time.Now()
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestGet_CachesWithinTTL(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{"payments.paystack.public_key": "pk_test"}}
	svc, _ := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	v, ok := svc.Get(ctx, "payments.paystack.public_key")
	if !ok || v != "pk_test" {
		t.Fatalf("expected pk_test, got %q ok=%v", v, ok)
	}
	svc.Get(ctx, "payments.paystack.public_key")
	svc.Get(ctx, "payments.paystack.public_key")

	if repo.getCalls != 1 {
		t.Fatalf("expected a single backing read, got %d", repo.getCalls)
	}
}

func TestGet_RefetchesAfterTTL(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{"k": "v1"}}
	svc, now := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	svc.Get(ctx, "k")
	repo.values["k"] = "v2"

	// Still inside the window: cached value.
	*now = now.Add(4 * time.Minute)
	if v, _ := svc.Get(ctx, "k"); v != "v1" {
		t.Fatalf("expected cached v1, got %q", v)
	}

	*now = now.Add(2 * time.Minute)
	if v, _ := svc.Get(ctx, "k"); v != "v2" {
		t.Fatalf("expected refreshed v2, got %q", v)
	}
	if repo.getCalls != 2 {
		t.Fatalf("expected two backing reads, got %d", repo.getCalls)
	}
}

func TestGet_MissingKeyCachedAsAbsent(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{}}
	svc, _ := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	if _, ok := svc.Get(ctx, "nope"); ok {
		t.Fatal("expected missing key to report absent")
	}
	svc.Get(ctx, "nope")
	if repo.getCalls != 1 {
		t.Fatalf("absence should be cached too, got %d reads", repo.getCalls)
	}
}

func TestSet_InvalidatesCache(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{"k": "old"}}
	svc, _ := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	svc.Get(ctx, "k")
	if err := svc.Set(ctx, "k", "new"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if v, _ := svc.Get(ctx, "k"); v != "new" {
		t.Fatalf("expected fresh value after write, got %q", v)
	}
}

func TestGet_StaleFallbackOnStorageError(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{"k": "v1"}}
	svc, now := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	svc.Get(ctx, "k")

	repo.fail = errors.New("connection refused")
	*now = now.Add(10 * time.Minute)

	v, ok := svc.Get(ctx, "k")
	if !ok || v != "v1" {
		t.Fatalf("expected stale fallback v1, got %q ok=%v", v, ok)
	}
}

func TestMaintenanceMode_SurfacesReadError(t *testing.T) {
	repo := &mockSettingRepo{fail: errors.New("connection refused")}
	svc, _ := newCacheService(repo, 5*time.Minute)

	enabled, err := svc.MaintenanceMode(context.Background())
	if enabled {
		t.Fatal("expected fail-open false")
	}
	if err == nil {
		t.Fatal("expected the read error to surface")
	}
}

func TestGetBool(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{
		"a": "true", "b": "1", "c": "off", "d": "YES",
	}}
	svc, _ := newCacheService(repo, 5*time.Minute)
	ctx := context.Background()

	if !svc.GetBool(ctx, "a") || !svc.GetBool(ctx, "b") || !svc.GetBool(ctx, "d") {
		t.Fatal("expected truthy values to parse as true")
	}
	if svc.GetBool(ctx, "c") || svc.GetBool(ctx, "missing") {
		t.Fatal("expected falsy values to parse as false")
	}
}

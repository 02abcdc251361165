package settings

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type settingSource interface {
	Get(ctx context.Context, key string) (*domain.PlatformSetting, error)
	Upsert(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.PlatformSetting, error)
}

type cacheEntry struct {
	value     string
	present   bool
	fetchedAt time.Time
}

// Service fronts the platform_settings table with a process-local TTL cache.
// Settings are read on most payment and admin requests but change rarely, so
// a short TTL bounds staleness without a storage round trip per request.
// The cache is the only shared mutable state in the process; a multi-instance
// deployment observes up to one TTL of staleness after a write elsewhere.
type Service struct {
	repo settingSource
	log  *zerolog.Logger
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

func NewService(repo settingSource, log *zerolog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		log:   log,
		ttl:   ttl,
		now:   time.Now,
		cache: make(map[string]cacheEntry),
	}
}

// Get returns the setting value and whether it exists. It never fails the
// caller: a storage error falls back to the last cached value, stale or not.
func (s *Service) Get(ctx context.Context, key string) (string, bool) {
	value, present, _ := s.lookup(ctx, key)
	return value, present
}

// GetBool treats "true", "1", "yes" and "on" as true.
func (s *Service) GetBool(ctx context.Context, key string) bool {
	value, present := s.Get(ctx, key)
	if !present {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetInt returns def when the key is absent or not numeric.
func (s *Service) GetInt(ctx context.Context, key string, def int64) int64 {
	value, present := s.Get(ctx, key)
	if !present {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return def
	}
	return n
}

// MaintenanceMode also surfaces the read error so the status endpoint can
// report degradation while still failing open.
func (s *Service) MaintenanceMode(ctx context.Context) (bool, error) {
	value, present, err := s.lookup(ctx, domain.SettingMaintenanceMode)
	if !present {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, err
	}
	return false, err
}

func (s *Service) lookup(ctx context.Context, key string) (string, bool, error) {
	now := s.now()

	s.mu.RLock()
	entry, cached := s.cache[key]
	s.mu.RUnlock()

	if cached && now.Sub(entry.fetchedAt) < s.ttl {
		return entry.value, entry.present, nil
	}

	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		if isNotFound(err) {
			s.store(key, cacheEntry{present: false, fetchedAt: now})
			return "", false, nil
		}
		s.log.Warn().Err(err).Str("key", key).Msg("settings read failed, serving cached value")
		if cached {
			return entry.value, entry.present, err
		}
		return "", false, err
	}

	s.store(key, cacheEntry{value: setting.Value, present: true, fetchedAt: now})
	return setting.Value, true, nil
}

func (s *Service) store(key string, entry cacheEntry) {
	s.mu.Lock()
	s.cache[key] = entry
	s.mu.Unlock()
}

// Invalidate drops one or more cached keys, or the whole cache when called
// with no arguments. Every settings write must be followed by this so reads
// in the same process observe fresh data.
func (s *Service) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(keys) == 0 {
		s.cache = make(map[string]cacheEntry)
		return
	}
	for _, key := range keys {
		delete(s.cache, key)
	}
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	if err := s.repo.Upsert(ctx, key, value); err != nil {
		return err
	}
	s.Invalidate(key)
	return nil
}

func (s *Service) DeleteKey(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.Invalidate(key)
	return nil
}

func (s *Service) All(ctx context.Context) ([]domain.PlatformSetting, error) {
	return s.repo.List(ctx)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tixnaija/internal/config"
	"tixnaija/internal/database"
	"tixnaija/internal/domain"
	"tixnaija/internal/repository"
)

// Seeds a fresh database with the super admin account, baseline platform
// settings, and the starter catalog. Safe to run more than once: existing
// rows are left alone.
func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx := context.Background()

	seedAdmin(ctx, db, &log)
	seedSettings(ctx, db, &log)
	seedCatalog(ctx, db, &log)

	log.Info().Msg("seed complete")
}

func seedAdmin(ctx context.Context, db *gorm.DB, log *zerolog.Logger) {
	users := repository.NewUserRepository(db)

	email := getEnv("SEED_ADMIN_EMAIL", "admin@tixnaija.com")
	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}
	if exists {
		log.Info().Str("email", email).Msg("super admin already present")
		return
	}

	password := getEnv("SEED_ADMIN_PASSWORD", "changeme123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hash failed")
	}

	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Platform Admin",
		Role:         domain.RoleAdmin,
		SubRole:      domain.SubRoleSuperAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("admin create failed")
	}
	log.Info().Str("email", email).Msg("super admin created")
}

func seedSettings(ctx context.Context, db *gorm.DB, log *zerolog.Logger) {
	settings := repository.NewSettingRepository(db)

	defaults := map[string]string{
		domain.SettingPlatformFeePercent: "5",
		domain.SettingMaintenanceMode:    "false",
	}

	for key, value := range defaults {
		if _, err := settings.Get(ctx, key); err == nil {
			continue
		}
		if err := settings.Upsert(ctx, key, value); err != nil {
			log.Fatal().Err(err).Str("key", key).Msg("setting seed failed")
		}
		log.Info().Str("key", key).Str("value", value).Msg("setting seeded")
	}
}

func seedCatalog(ctx context.Context, db *gorm.DB, log *zerolog.Logger) {
	catalog := repository.NewCatalogRepository(db)

	cities, err := catalog.ListCities(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("city lookup failed")
	}
	if len(cities) == 0 {
		for _, c := range []domain.City{
			{Name: "Lagos", State: "Lagos"},
			{Name: "Abuja", State: "FCT"},
			{Name: "Port Harcourt", State: "Rivers"},
			{Name: "Ibadan", State: "Oyo"},
			{Name: "Kano", State: "Kano"},
		} {
			city := c
			if err := catalog.CreateCity(ctx, &city); err != nil {
				log.Fatal().Err(err).Str("city", c.Name).Msg("city seed failed")
			}
		}
		log.Info().Msg("cities seeded")
	}

	categories, err := catalog.ListCategories(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("category lookup failed")
	}
	if len(categories) == 0 {
		for _, name := range []string{"Concerts", "Comedy", "Tech", "Sports", "Festivals", "Theatre"} {
			category := &domain.Category{Name: name, Slug: slugify(name)}
			if err := catalog.CreateCategory(ctx, category); err != nil {
				log.Fatal().Err(err).Str("category", name).Msg("category seed failed")
			}
		}
		log.Info().Msg("categories seeded")
	}
}

func slugify(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out = append(out, ch+('a'-'A'))
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/types"
)

// Config carries the connection settings for the persistent store. It is
// injected rather than read from the process environment so tests can point
// the same code at an isolated database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.Name)
}

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(cfg Config, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	serviceLog.Info("Connecting to Postgres...", "host", cfg.Host, "database", cfg.Name)
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := Migrate(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

// Migrate creates the schema and registers the enrollment join model. Shared
// with the test store so both run against the same table shapes.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&types.Class{}, "Students", &types.Enrollment{}); err != nil {
		return fmt.Errorf("setup enrollment join table: %w", err)
	}
	if err := gdb.SetupJoinTable(&types.User{}, "ClassesEnrolled", &types.Enrollment{}); err != nil {
		return fmt.Errorf("setup enrollment join table: %w", err)
	}
	return gdb.AutoMigrate(
		&types.User{},
		&types.Class{},
		&types.Enrollment{},
		&types.Lesson{},
		&types.Question{},
		&types.LessonScore{},
	)
}

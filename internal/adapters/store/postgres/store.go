// Package postgres implements ports.Store on PostgreSQL through gorm. Every
// call runs behind a circuit breaker; driver errors are translated to domain
// errors before they leave the package.
package postgres

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/realestate-crm/internal/platform/config"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/telemetry"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
	_ ports.HealthChecker = (*guard)(nil)
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects to PostgreSQL and applies the pool settings. Timestamps
// written by gorm come from clock.
func Open(cfg config.PostgresConfig, clock ports.Clock, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return clock.Now().UTC() },
		Logger: gormlogger.New(
			log.New(slogWriter{logger}, "", 0),
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// slogWriter forwards gorm's printf-style log lines to slog at warn level.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Write(p []byte) (int, error) {
	w.logger.Warn("gorm", slog.String("detail", string(p)))
	return len(p), nil
}

// Store implements ports.Store.
type Store struct {
	db     *gorm.DB
	guard  *guard
	logger *slog.Logger
}

// New wraps an open connection. metrics may be nil.
func New(db *gorm.DB, breaker config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		guard:  newGuard(breaker, metrics, logger),
		logger: logger,
	}
}

// Migrate creates or alters every table to match the row types.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Breaker exposes the circuit breaker as a health checker.
func (s *Store) Breaker() ports.HealthChecker {
	return s.guard
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}

// run executes fn through the guard with a context-bound session.
func (s *Store) run(ctx context.Context, entity, op string, fn func(db *gorm.DB) error) error {
	return s.guard.do(ctx, entity, op, func(ctx context.Context) error {
		return fn(s.db.WithContext(ctx))
	})
}

// transact is run inside a single transaction.
func (s *Store) transact(ctx context.Context, entity, op string, fn func(tx *gorm.DB) error) error {
	return s.run(ctx, entity, op, func(db *gorm.DB) error {
		return db.Transaction(fn)
	})
}

package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Dashboard.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit.requests_per_second must not be negative, got %f",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst_size must be >= 1, got %d", s.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
		// Checked below.
	default:
		return fmt.Errorf("store.driver must be one of: memory, postgres; got %q", st.Driver)
	}

	if st.Postgres.DSN == "" {
		errs = append(errs, errors.New("store.postgres.dsn must not be empty when driver is postgres"))
	}
	if st.Postgres.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("store.postgres.max_open_conns must be >= 1, got %d", st.Postgres.MaxOpenConns))
	}
	if st.Postgres.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("store.postgres.max_idle_conns must not be negative, got %d",
			st.Postgres.MaxIdleConns))
	}
	if st.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			st.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (d *DashboardConfig) validate() error {
	var errs []error

	if d.UpcomingDays < 0 || d.UpcomingDays > domain.MaxUpcomingDays {
		errs = append(errs, fmt.Errorf("dashboard.upcoming_days must be between 0 and %d, got %d",
			domain.MaxUpcomingDays, d.UpcomingDays))
	}
	if d.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("dashboard.max_workers must be >= 1, got %d", d.MaxWorkers))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

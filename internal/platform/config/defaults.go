package config

const (
	defaultServerPort = 8080

	defaultPostgresMaxOpenConns = 10
	defaultPostgresMaxIdleConns = 5

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultUpcomingDays       = 7
	defaultDashboardWorkers   = 4
	defaultRateLimitBurstSize = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":                           "0.0.0.0",
		"server.port":                           defaultServerPort,
		"server.read_timeout":                   "5s",
		"server.write_timeout":                  "10s",
		"server.idle_timeout":                   "120s",
		"server.request_timeout":                "30s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          defaultRateLimitBurstSize,

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          DriverMemory,
		"store.postgres.dsn":                    "",
		"store.postgres.max_open_conns":         defaultPostgresMaxOpenConns,
		"store.postgres.max_idle_conns":         defaultPostgresMaxIdleConns,
		"store.postgres.conn_max_lifetime":      "30m",
		"store.postgres.auto_migrate":           false,
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"dashboard.upcoming_days": defaultUpcomingDays,
		"dashboard.max_workers":   defaultDashboardWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "realestate-crm",
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/config"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/telemetry"
)

// breakerName identifies the store circuit breaker in logs and health output.
const breakerName = "store-breaker"

// guard wraps every database round trip with a circuit breaker, a client
// span and the store metrics. Outcomes the caller caused (missing rows,
// duplicate emails, validation) count as successes so they never trip the
// breaker.
type guard struct {
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
}

func newGuard(cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *guard {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isCallerOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &guard{breaker: cb, metrics: metrics}
}

// isCallerOutcome reports whether err says nothing about database health.
func isCallerOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

// do runs fn, which must already return translated domain errors. A rejected
// call returns an error wrapping domain.ErrUnavailable.
func (g *guard) do(ctx context.Context, entity, op string, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer("store/postgres").Start(ctx, "postgres "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
			attribute.String("store.entity", entity),
		),
	)
	defer span.End()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = TranslateError(err, entity, 0)
	}

	if err != nil && !isCallerOutcome(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	g.record(ctx, entity, op, start, err)

	return err
}

// record is safe to call with nil metrics.
func (g *guard) record(ctx context.Context, entity, op string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		result = "circuit_open"
	case !isCallerOutcome(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreEntity.String(entity),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// Name implements ports.HealthChecker.
func (g *guard) Name() string {
	return breakerName
}

// HealthCheck reports the breaker state without touching the database.
func (g *guard) HealthCheck(_ context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", breakerName, state)
	}
}

// toUint32 clamps v into the uint32 range; negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

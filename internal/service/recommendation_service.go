package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"

	"sflix-catalog-service/internal/config"
	"sflix-catalog-service/internal/gemini"
	"sflix-catalog-service/internal/metrics"
	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

// Generator produces structured JSON from a prompt.
type Generator interface {
	Configured() bool
	GenerateJSON(ctx context.Context, req gemini.GenerateRequest) (string, error)
}

// AuditLog records gateway call outcomes.
type AuditLog interface {
	Record(ctx context.Context, entry models.RecommendationLogEntry) error
}

// RecommendationService turns queries and category labels into titles using
// the generative API. It never returns an error: every failure becomes an
// unavailable result.
type RecommendationService struct {
	gen       Generator
	cache     Cache
	audit     AuditLog
	breaker   *gobreaker.CircuitBreaker[string]
	validator *validation.Validator
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewRecommendationService creates a new RecommendationService. cache and
// audit may be nil.
func NewRecommendationService(gen Generator, cache Cache, audit AuditLog, cfg config.RecommendationConfig) *RecommendationService {
	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller going away says nothing about the API's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || !isTransportError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.Set(float64(to))
		},
	})

	return &RecommendationService{
		gen:       gen,
		cache:     cache,
		audit:     audit,
		breaker:   breaker,
		validator: validation.New(),
		cacheTTL:  cfg.CacheTTL,
		now:       time.Now,
	}
}

// Available reports whether a credential is configured.
func (s *RecommendationService) Available() bool {
	return s.gen != nil && s.gen.Configured()
}

// FetchByQuery asks for six titles matching a free-text mood or request.
func (s *RecommendationService) FetchByQuery(ctx context.Context, query string) models.Recommendations {
	query = strings.TrimSpace(query)
	return s.fetch(ctx, models.KindQuery, query, queryRequest(query), querySeeds)
}

// FetchByCategory asks for eight titles themed on a category label.
func (s *RecommendationService) FetchByCategory(ctx context.Context, category string) models.Recommendations {
	category = strings.TrimSpace(category)
	return s.fetch(ctx, models.KindCategory, category, categoryRequest(category), func(_ string, i int) (string, string) {
		return categorySeeds(category, i)
	})
}

func (s *RecommendationService) fetch(
	ctx context.Context,
	kind models.RecommendationKind,
	input string,
	req gemini.GenerateRequest,
	seeds func(id string, index int) (string, string),
) models.Recommendations {
	if !s.Available() {
		slog.Debug("recommendation skipped, no API key", "kind", kind)
		result := models.Unavailable(models.ReasonCredentialMissing)
		metrics.RecommendationRequests.WithLabelValues(string(kind), string(result.Status), string(result.Reason)).Inc()
		return result
	}

	callID := uuid.NewString()
	start := s.now()
	log := slog.With("call_id", callID, "kind", kind)

	key := cacheKey(kind, input)
	if s.cache != nil {
		if titles, ok := s.cache.Get(ctx, key); ok {
			metrics.RecommendationCacheHits.WithLabelValues(string(kind)).Inc()
			log.Debug("recommendation cache hit", "key", key)
			result := models.Found(titles)
			s.record(callID, kind, input, result, start)
			return result
		}
		metrics.RecommendationCacheMisses.WithLabelValues(string(kind)).Inc()
	}

	text, err := s.breaker.Execute(func() (string, error) {
		return s.gen.GenerateJSON(ctx, req)
	})
	metrics.RecommendationDuration.WithLabelValues(string(kind)).Observe(s.now().Sub(start).Seconds())

	var result models.Recommendations
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		log.Warn("recommendation short-circuited", "error", err)
		result = models.Unavailable(models.ReasonCircuitOpen)
	case err != nil && isTransportError(err):
		log.Error("recommendation call failed", "error", err)
		result = models.Unavailable(models.ReasonTransport)
	case err != nil:
		log.Error("recommendation response unusable", "error", err)
		result = models.Unavailable(models.ReasonDecode)
	default:
		titles, decodeErr := decodeTitles(s.validator, text, seeds)
		if decodeErr != nil {
			log.Error("failed to parse recommendation response", "error", decodeErr)
			result = models.Unavailable(models.ReasonDecode)
			break
		}
		result = models.Found(titles)
		if s.cache != nil {
			s.cache.Set(ctx, key, titles, s.cacheTTL)
		}
	}

	s.record(callID, kind, input, result, start)
	return result
}

func (s *RecommendationService) record(callID string, kind models.RecommendationKind, input string, result models.Recommendations, start time.Time) {
	metrics.RecommendationRequests.WithLabelValues(string(kind), string(result.Status), string(result.Reason)).Inc()
	if s.audit == nil {
		return
	}

	entry := models.RecommendationLogEntry{
		CallID:     callID,
		Kind:       kind,
		Input:      input,
		Status:     result.Status,
		Reason:     result.Reason,
		ItemCount:  len(result.List()),
		DurationMS: s.now().Sub(start).Milliseconds(),
		CreatedAt:  start.UTC(),
	}
	// Persist asynchronously so the caller is never held up by the database.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.audit.Record(ctx, entry); err != nil {
			slog.Error("failed to record recommendation call", "call_id", entry.CallID, "error", err)
		}
	}()
}

// isTransportError reports whether err came from reaching the API rather
// than from the content of its answer.
func isTransportError(err error) bool {
	return !errors.Is(err, gemini.ErrEmptyResponse) && !errors.Is(err, gemini.ErrBlocked)
}

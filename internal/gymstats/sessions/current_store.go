package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/gymstats/training"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultCurrentSessionTTL = 24 * time.Hour
	currentSessionKey        = "gymtrack||current-session"
)

// CurrentStore keeps the in-progress session in redis, it expires after ttl
// of inactivity.
type CurrentStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCurrentStore(redisClient *redis.Client, ttl time.Duration) *CurrentStore {
	if ttl <= 0 {
		ttl = DefaultCurrentSessionTTL
	}
	return &CurrentStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (s *CurrentStore) Get(ctx context.Context) (_ training.SessionState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.get")
	defer func() {
		// a missing session is not a failure
		if errors.Is(err, ErrNoSession) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := s.redisClient.Get(ctx, currentSessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return training.SessionState{}, ErrNoSession
	}
	if err != nil {
		return training.SessionState{}, fmt.Errorf("get current session: %w", err)
	}

	var state training.SessionState
	if err := json.Unmarshal(val, &state); err != nil {
		return training.SessionState{}, fmt.Errorf("unmarshal current session: %w", err)
	}
	if state.Exercises == nil {
		state.Exercises = map[int]training.SessionExercise{}
	}

	span.SetAttributes(attribute.String("session.id", state.ID))
	return state, nil
}

func (s *CurrentStore) Save(ctx context.Context, state training.SessionState) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", state.ID))

	stateJson, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal current session: %w", err)
	}

	if err := s.redisClient.Set(ctx, currentSessionKey, string(stateJson), s.ttl).Err(); err != nil {
		return fmt.Errorf("save current session: %w", err)
	}
	return nil
}

func (s *CurrentStore) Clear(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.redisClient.Del(ctx, currentSessionKey).Err(); err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}

package auth

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultVerifiedTTL = time.Hour
	verifiedCacheSize  = 512 * 1024
)

var ErrNoTokenHash = errors.New("app token hash not configured")

var _ Checker = (*TokenChecker)(nil)

type Checker interface {
	IsAuthorized(ctx context.Context, token string) (bool, error)
}

// TokenChecker verifies the app token against a bcrypt hash. Tokens that
// passed the check are remembered for verifiedTTL, since bcrypt is slow.
type TokenChecker struct {
	tokenHash   string
	verifiedTTL time.Duration
	verified    *freecache.Cache
	// injectable for tests
	compareFunc func(token, hash string) bool
}

func NewTokenChecker(tokenHash string, verifiedTTL time.Duration) *TokenChecker {
	if verifiedTTL <= 0 {
		verifiedTTL = DefaultVerifiedTTL
	}
	return &TokenChecker{
		tokenHash:   tokenHash,
		verifiedTTL: verifiedTTL,
		verified:    freecache.NewCache(verifiedCacheSize),
		compareFunc: pkg.CheckPasswordHash,
	}
}

func (c *TokenChecker) IsAuthorized(ctx context.Context, token string) (_ bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "auth.token.check")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if c.tokenHash == "" {
		return false, ErrNoTokenHash
	}
	if token == "" {
		return false, nil
	}

	// raw tokens are never used as cache keys
	key := sha256.Sum256([]byte(token))
	if _, err := c.verified.Get(key[:]); err == nil {
		return true, nil
	}

	if !c.compareFunc(token, c.tokenHash) {
		log.Tracef("auth: token check failed")
		return false, nil
	}

	if err := c.verified.Set(key[:], []byte{1}, int(c.verifiedTTL.Seconds())); err != nil {
		log.Warnf("auth: remember verified token: %s", err)
	}

	return true, nil
}

func (c *TokenChecker) Forget() {
	c.verified.Clear()
}

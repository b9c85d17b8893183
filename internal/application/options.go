package application

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"spellsheet/internal/domain"
	"spellsheet/internal/ports"
)

// Option configures the library, history and session services
type Option func(*env)

// env carries the injected collaborators shared by the services
type env struct {
	log        *slog.Logger
	now        func() time.Time
	newID      func(prefix string) string
	rng        domain.Rand
	collator   domain.Collator
	policy     domain.Policy
	trackUsage bool
	seed       ports.SeedSource
}

func newEnv(opts []Option) env {
	e := env{
		log:        slog.Default(),
		now:        time.Now,
		newID:      defaultID,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		collator:   domain.NewCollator("en"),
		policy:     domain.PolicyLeastUsed,
		trackUsage: true,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func defaultID(prefix string) string {
	return prefix + uuid.NewString()
}

// WithLogger sets the logger; nil keeps slog.Default
func WithLogger(log *slog.Logger) Option {
	return func(e *env) {
		if log != nil {
			e.log = log
		}
	}
}

// WithClock sets the time source used for createdAt and lastUsedAt
func WithClock(now func() time.Time) Option {
	return func(e *env) { e.now = now }
}

// WithIDGenerator sets the id source. It receives "w_" for words and "s_" for sheets.
func WithIDGenerator(newID func(prefix string) string) Option {
	return func(e *env) { e.newID = newID }
}

// WithRand sets the random source consulted by random picks
func WithRand(rng domain.Rand) Option {
	return func(e *env) { e.rng = rng }
}

// WithSeed makes random picks reproducible for a given seed
func WithSeed(seed uint64) Option {
	return func(e *env) { e.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithCollator sets the ordering used for word text
func WithCollator(c domain.Collator) Option {
	return func(e *env) { e.collator = c }
}

// WithPolicy sets the default selection policy for random picks
func WithPolicy(p domain.Policy) Option {
	return func(e *env) { e.policy = p }
}

// WithUsageTracking controls whether saved sheets bump word usage counts
func WithUsageTracking(enabled bool) Option {
	return func(e *env) { e.trackUsage = enabled }
}

// WithSeedSource sets the starter list loaded into an empty library on open
func WithSeedSource(src ports.SeedSource) Option {
	return func(e *env) { e.seed = src }
}

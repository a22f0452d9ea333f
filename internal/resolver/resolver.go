package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/ptdocs/internal/logger"
)

// Provider is one step of the resolution chain.
type Provider interface {
	// Name identifies the provider in logs and reports.
	Name() string
	// Provide returns a non-empty version or an error explaining why not.
	Provide(ctx context.Context) (string, error)
}

// Attempt records the outcome of asking one provider.
type Attempt struct {
	// Provider is the provider name.
	Provider string
	// Value is the version produced, empty unless OK.
	Value string
	// OK reports whether this attempt won.
	OK bool
	// Err is why the provider produced nothing.
	Err error
}

// Resolver returns the first version produced by its providers.
type Resolver struct {
	// providers are asked in order.
	providers []Provider
	// fallback is returned when no provider succeeds.
	fallback string
}

// FallbackName is the provider name reported for the literal fallback.
const FallbackName = "fallback"

// ErrEmpty is reported by providers whose source exists but holds no version.
var ErrEmpty = errors.New("empty version")

// errProviderPanicked wraps a panic recovered from a provider.
var errProviderPanicked = errors.New("provider panicked")

// New builds a resolver over providers with the given fallback literal.
func New(fallback string, providers ...Provider) *Resolver {
	return &Resolver{
		providers: append([]Provider(nil), providers...),
		fallback:  fallback,
	}
}

// Resolve returns the version. It never fails.
func (r *Resolver) Resolve(ctx context.Context) string {
	attempts := r.Trace(ctx)

	return attempts[len(attempts)-1].Value
}

// Trace asks providers in order until one succeeds and returns every attempt
// made. The last attempt is always the winning one, the fallback included.
func (r *Resolver) Trace(ctx context.Context) []Attempt {
	attempts := make([]Attempt, 0, len(r.providers)+1)

	for _, provider := range r.providers {
		value, err := safeProvide(ctx, provider)
		if err == nil && value == "" {
			err = ErrEmpty
		}

		if err != nil {
			logger.DebugKV(ctx, "Version provider skipped", "provider", provider.Name(), "reason", err)
			attempts = append(attempts, Attempt{Provider: provider.Name(), Err: err})

			continue
		}

		logger.DebugKV(ctx, "Version resolved", "provider", provider.Name(), "version", value)

		return append(attempts, Attempt{Provider: provider.Name(), Value: value, OK: true})
	}

	logger.DebugKV(ctx, "Using fallback version", "version", r.fallback)

	return append(attempts, Attempt{Provider: FallbackName, Value: r.fallback, OK: true})
}

// safeProvide shields the chain from a provider that panics.
func safeProvide(ctx context.Context, provider Provider) (value string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			value, err = "", fmt.Errorf("%w: %v", errProviderPanicked, recovered)
		}
	}()

	return provider.Provide(ctx)
}

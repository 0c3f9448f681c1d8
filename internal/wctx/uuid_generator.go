package wctx

import (
	"context"

	"github.com/google/uuid"
)

const (
	uuidGeneratorKey = "uuidGenerator"
)

// UuidGenerator is an interface to an object that will provide random UUIDs. The default
// implementation delegates to the google uuid package. This allows deterministic UUID
// generation in tests by substituting this interface.
type UuidGenerator interface {
	// New creates a new random UUID or panics.
	New() uuid.UUID

	// NewString creates a new random UUID and returns it as a string or panics.
	NewString() string
}

type realUuidGenerator struct{}

func (g *realUuidGenerator) New() uuid.UUID {
	return uuid.New()
}

func (g *realUuidGenerator) NewString() string {
	return uuid.NewString()
}

var realUuidGeneratorVal UuidGenerator = &realUuidGenerator{}

// GetUuidGenerator retrieves a UUID generator from the context if one has been set. If not,
// it returns the real UUID generator.
func GetUuidGenerator(ctx context.Context) UuidGenerator {
	val := ctx.Value(uuidGeneratorKey)
	if val == nil {
		return realUuidGeneratorVal
	}

	return val.(UuidGenerator)
}

func WithUuidGenerator(ctx context.Context, generator UuidGenerator) context.Context {
	return context.WithValue(ctx, uuidGeneratorKey, generator)
}

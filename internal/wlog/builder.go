package wlog

import (
	"log/slog"
)

// Builder attaches standard attributes to loggers handed to components so every
// record carries where it came from.
type Builder interface {
	WithService(serviceId string) Builder
	WithComponent(componentId string) Builder
	WithSession(sessionId string) Builder
	Build() *slog.Logger
}

type builder struct {
	l *slog.Logger
}

func (b *builder) WithService(serviceId string) Builder {
	return &builder{l: b.l.With("service", serviceId)}
}

func (b *builder) WithComponent(componentId string) Builder {
	return &builder{l: b.l.With("component", componentId)}
}

func (b *builder) WithSession(sessionId string) Builder {
	return &builder{l: b.l.With("session", sessionId)}
}

func (b *builder) Build() *slog.Logger {
	return b.l
}

func NewBuilder(l *slog.Logger) Builder {
	if l == nil {
		panic("cannot create log builder with nil log")
	}

	return &builder{l: l}
}

var _ Builder = &builder{}

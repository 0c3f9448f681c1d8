package wlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("panics on nil logger", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder(nil)
		})
	})

	t.Run("attaches attributes", func(t *testing.T) {
		var buf bytes.Buffer
		root := slog.New(slog.NewTextHandler(&buf, nil))

		l := NewBuilder(root).
			WithService("warroom").
			WithComponent("dashboard").
			WithSession("abc-123").
			Build()

		l.Info("hello")

		out := buf.String()
		require.Contains(t, out, "service=warroom")
		assert.Contains(t, out, "component=dashboard")
		assert.Contains(t, out, "session=abc-123")
	})

	t.Run("builders are independent", func(t *testing.T) {
		var buf bytes.Buffer
		root := slog.New(slog.NewTextHandler(&buf, nil))

		b := NewBuilder(root)
		b.WithComponent("one")
		b.Build().Info("plain")

		assert.NotContains(t, buf.String(), "component=one")
	})
}

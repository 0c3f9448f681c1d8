package gameapi

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/h2non/gock.v1"
	clocktest "k8s.io/utils/clock/testing"

	"github.com/tkarpov/warroom/internal/wctx"
)

// recordingClock captures backoff sleeps while advancing fake time.
type recordingClock struct {
	*clocktest.FakeClock
	slept []time.Duration
}

func (r *recordingClock) Sleep(d time.Duration) {
	r.slept = append(r.slept, d)
	r.FakeClock.Sleep(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T) (*client, *recordingClock, context.Context) {
	t.Helper()

	c := NewClient(Options{
		BaseUrl:          "https://game.test/api",
		Timeout:          time.Second,
		RetryAttempts:    3,
		RetryBackoffBase: 600 * time.Millisecond,
	}, testLogger()).(*client)

	gock.InterceptClient(c.session().GetClient())
	t.Cleanup(gock.Off)

	clk := &recordingClock{FakeClock: clocktest.NewFakeClock(time.Now())}
	ctx := wctx.NewBuilderBackground().WithClock(clk).Build()

	return c, clk, ctx
}

func TestClientCall(t *testing.T) {
	t.Run("success unwraps envelope", func(t *testing.T) {
		c, clk, ctx := newTestClient(t)

		gock.New("https://game.test").
			Get("/api/countries").
			MatchParam("input", `\{\}`).
			Reply(200).
			JSON(map[string]interface{}{
				"result": map[string]interface{}{
					"data": []interface{}{"a"},
				},
			})

		payload, ok := c.Call(ctx, "countries", nil)
		require.True(t, ok)
		assert.Equal(t, []interface{}{"a"}, payload)
		assert.Empty(t, clk.slept)
	})

	t.Run("parameters ride the input query param", func(t *testing.T) {
		c, _, ctx := newTestClient(t)

		gock.New("https://game.test").
			Get("/api/rankings").
			MatchParam("input", `"type":"damage"`).
			Reply(200).
			JSON(map[string]interface{}{"ok": true})

		_, ok := c.Call(ctx, "rankings", map[string]interface{}{"type": "damage"})
		assert.True(t, ok)
		assert.True(t, gock.IsDone())
	})

	t.Run("permanent 500 exhausts attempts with increasing delays", func(t *testing.T) {
		c, clk, ctx := newTestClient(t)

		gock.New("https://game.test").
			Get("/api/countries").
			Persist().
			Reply(500)

		payload, ok := c.Call(ctx, "countries", nil)
		require.False(t, ok)
		assert.Equal(t, NoData, payload)
		assert.True(t, IsNoData(payload))

		// Three attempts, two inter-attempt backoffs, strictly increasing.
		require.Len(t, clk.slept, 2)
		assert.Equal(t, 600*time.Millisecond, clk.slept[0])
		assert.Equal(t, 1200*time.Millisecond, clk.slept[1])
	})

	t.Run("recovers after transient failure", func(t *testing.T) {
		c, clk, ctx := newTestClient(t)

		gock.New("https://game.test").
			Get("/api/countries").
			Reply(502)
		gock.New("https://game.test").
			Get("/api/countries").
			Reply(200).
			JSON([]interface{}{"up"})

		payload, ok := c.Call(ctx, "countries", nil)
		require.True(t, ok)
		assert.Equal(t, []interface{}{"up"}, payload)
		assert.Len(t, clk.slept, 1)
	})

	t.Run("body decode failure is retryable", func(t *testing.T) {
		c, clk, ctx := newTestClient(t)

		gock.New("https://game.test").
			Get("/api/countries").
			Persist().
			Reply(200).
			BodyString("<html>not json</html>")

		_, ok := c.Call(ctx, "countries", nil)
		assert.False(t, ok)
		assert.Len(t, clk.slept, 2)
	})

	t.Run("unserializable params fail without any attempt", func(t *testing.T) {
		c, clk, ctx := newTestClient(t)

		payload, ok := c.Call(ctx, "countries", map[string]interface{}{"bad": func() {}})
		assert.False(t, ok)
		assert.Equal(t, NoData, payload)
		assert.Empty(t, clk.slept)
	})
}

func TestClientSession(t *testing.T) {
	t.Run("session is shared across calls", func(t *testing.T) {
		c := NewClient(Options{BaseUrl: "https://game.test"}, testLogger()).(*client)
		assert.Same(t, c.session(), c.session())
	})

	t.Run("reset recreates the session", func(t *testing.T) {
		c := NewClient(Options{BaseUrl: "https://game.test"}, testLogger()).(*client)
		first := c.session()
		c.Reset()
		assert.NotSame(t, first, c.session())
	})
}

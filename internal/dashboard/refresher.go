package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/tkarpov/warroom/internal/discord"
	"github.com/tkarpov/warroom/internal/gameapi"
	"github.com/tkarpov/warroom/internal/render"
	"github.com/tkarpov/warroom/internal/util"
	"github.com/tkarpov/warroom/internal/wlog"
)

// maxEmbeds bounds how many pages the dashboard message carries at once.
const maxEmbeds = 4

// Options fix the endpoint/parameter pair and cadence of the dashboard.
type Options struct {
	ChannelId string
	Endpoint  string
	Params    map[string]interface{}
	Interval  time.Duration
}

// Refresher keeps one long-lived channel message updated with fresh pages. The
// hosting message identity persists across refresh cycles; a transient fetch
// failure shows a visible failure page rather than silently leaving stale data.
type Refresher struct {
	opts      Options
	client    gameapi.Client
	messenger discord.Messenger
	policy    render.Policy
	logger    *slog.Logger

	cron *cron.Cron

	// tickMu is the single-flight guard: a tick firing while the previous one is
	// still running is skipped, never queued.
	tickMu sync.Mutex

	ref *discord.MessageRef
}

func NewRefresher(
	opts Options,
	client gameapi.Client,
	messenger discord.Messenger,
	policy render.Policy,
	logger *slog.Logger,
) *Refresher {
	return &Refresher{
		opts:      opts,
		client:    client,
		messenger: messenger,
		policy:    policy,
		logger:    wlog.NewBuilder(logger).WithComponent("dashboard").Build(),
	}
}

// Start schedules the recurring refresh and performs an immediate first one so the
// dashboard appears without waiting a full interval.
func (r *Refresher) Start(ctx context.Context) error {
	spec, err := util.DurationToCronSpec(r.opts.Interval)
	if err != nil {
		return errors.Wrap(err, "invalid dashboard refresh interval")
	}

	r.cron = cron.New(cron.WithSeconds())
	if _, err := r.cron.AddFunc(spec, func() {
		r.Tick(ctx)
	}); err != nil {
		return errors.Wrap(err, "failed to schedule dashboard refresh")
	}

	r.cron.Start()
	go r.Tick(ctx)

	r.logger.Info("dashboard refresher started",
		"channel", r.opts.ChannelId,
		"endpoint", r.opts.Endpoint,
		"interval", r.opts.Interval)

	return nil
}

// Stop halts the schedule. A tick in flight finishes; none start after.
func (r *Refresher) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}

// Tick runs one refresh cycle. Safe to call concurrently; overlapping calls are
// dropped to preserve the no-overlap invariant.
func (r *Refresher) Tick(ctx context.Context) {
	if !r.tickMu.TryLock() {
		r.logger.Warn("previous refresh still running; skipping tick")
		return
	}
	defer r.tickMu.Unlock()

	// A failed fetch yields the NoData sentinel, which renders as an explicit
	// failure page. The update below still runs.
	payload, ok := r.client.Call(ctx, r.opts.Endpoint, r.opts.Params)
	if !ok {
		r.logger.Warn("dashboard fetch failed; showing failure page",
			"endpoint", r.opts.Endpoint)
	}

	out := render.Render(payload, r.policy, render.Options{Title: "Dashboard"})

	pages := out.Pretty
	if len(pages) > maxEmbeds {
		pages = pages[:maxEmbeds]
	}

	view := discord.MessageView{Pages: pages}

	if r.ref == nil {
		ref, err := r.messenger.Send(ctx, r.opts.ChannelId, view)
		if err != nil {
			r.logger.Error("failed to create dashboard message", "error", err)
			return
		}
		r.ref = &ref
		r.logger.Debug("dashboard message created", "message", ref.MessageId)
		return
	}

	if err := r.messenger.Edit(ctx, *r.ref, view); err != nil {
		// The message may have been deleted out from under us. Recreate next tick.
		r.logger.Warn("failed to update dashboard message; will recreate",
			"message", r.ref.MessageId,
			"error", err)
		r.ref = nil
	}
}

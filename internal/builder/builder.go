// Package builder wires the linkpost pipeline: fetch, parse, filter, render,
// confirm, publish. Each stage's output is the next stage's only input.
package builder

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"linkpost/internal/config"
	"linkpost/internal/feed"
	"linkpost/internal/filter"
	"linkpost/internal/post"
)

// Publisher is the side-effecting tail of the pipeline.
type Publisher interface {
	Publish(ctx context.Context, post string) error
}

// ConfirmFunc shows the rendered post to the operator and reports whether to
// publish. A nil ConfirmFunc publishes unconditionally.
type ConfirmFunc func(post string) (bool, error)

// Option configures the Builder.
type Option func(*Builder)

// WithConfirm sets the interactive confirmation step.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(b *Builder) {
		b.confirm = confirm
	}
}

// WithClock sets the time source used for filtering and rendering.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// Builder runs one end-to-end pipeline invocation.
type Builder struct {
	cfg       config.Config
	source    *feed.Source
	parser    *feed.Parser
	renderer  *post.Renderer
	publisher Publisher

	confirm ConfirmFunc
	now     func() time.Time
	log     *logrus.Logger
}

// New assembles a builder from a validated configuration and a publisher.
func New(cfg config.Config, publisher Publisher, opts ...Option) *Builder {
	var source *feed.Source
	if cfg.FeedURL != "" {
		source = feed.NewURLSource(cfg.FeedURL)
	} else {
		source = feed.NewFileSource(cfg.FeedPath)
	}

	b := &Builder{
		cfg:       cfg,
		source:    source,
		parser:    feed.NewParser(),
		renderer:  post.NewRenderer(post.WithMaxLinks(cfg.MaxLinks)),
		publisher: publisher,
		now:       time.Now,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the pipeline once. A fetch failure, an empty filtered set,
// an unparsable feed, and an operator decline all end the run cleanly with
// nothing published; every other error is fatal.
func (b *Builder) Run(ctx context.Context) error {
	b.log.WithField("source", b.source.Location()).Info("fetching feed")
	raw, err := b.source.Fetch(ctx)
	if err != nil {
		var fetchErr *feed.FetchError
		if errors.As(err, &fetchErr) {
			b.log.WithError(err).Error("failed to fetch feed content")
			return nil
		}
		return err
	}

	entries, err := b.parser.Parse(raw)
	if err != nil {
		// The feed pipeline tolerates unparsable input: no entries means
		// nothing to post, not a failed run.
		b.log.WithError(err).Warn("feed could not be parsed")
	}

	now := b.now()
	matching, err := filter.ByRecency(entries, b.cfg.Timespan, now)
	if err != nil {
		return err
	}
	if len(matching) == 0 {
		b.log.Info("nothing to post")
		return nil
	}
	b.log.WithField("count", len(matching)).Info("entries within timespan")

	rendered, err := b.renderer.Render(matching, now)
	if err != nil {
		return err
	}

	if b.confirm != nil {
		ok, err := b.confirm(rendered)
		if err != nil {
			return err
		}
		if !ok {
			b.log.Info("aborted")
			return nil
		}
	}

	if err := b.publisher.Publish(ctx, rendered); err != nil {
		return err
	}
	b.log.Info("successfully published new post")
	return nil
}

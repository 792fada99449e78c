// Package publish commits a rendered post into a Git-backed content
// repository and pushes it.
package publish

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"linkpost/internal/config"
)

const commitMessage = "Add new assorted links."

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithRunner sets a custom git runner (used by tests).
func WithRunner(r Runner) PublisherOption {
	return func(p *Publisher) {
		p.git = r
	}
}

// WithClock sets the time source used for the post slug.
func WithClock(now func() time.Time) PublisherOption {
	return func(p *Publisher) {
		p.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Logger) PublisherOption {
	return func(p *Publisher) {
		p.log = log
	}
}

// Publisher clones the content repository into a temporary workspace, writes
// the post under a dated slug directory, commits, and pushes.
type Publisher struct {
	repo       string
	branch     string
	pathToPost string

	git Runner
	now func() time.Time
	log *logrus.Logger
}

// NewPublisher creates a publisher for the configured repository.
func NewPublisher(cfg config.Config, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		repo:       cfg.BlogRepo,
		branch:     cfg.BlogRepoBranch,
		pathToPost: cfg.PathToPost,
		git:        ExecGit{},
		now:        time.Now,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Slug names the post directory for a given date.
func Slug(now time.Time) string {
	return "assorted-links-" + now.Format("2006-01-02")
}

// RedactURL strips any embedded credential from a repository URL for logging
// and error messages. Unparsable locators are returned unchanged.
func RedactURL(repo string) string {
	u, err := url.Parse(repo)
	if err != nil || u.User == nil {
		return repo
	}
	u.User = nil
	return u.String()
}

// Publish runs the publish sequence: workspace, clone, slug directory,
// write, then config/add/commit/push. The temporary workspace is removed on
// every exit path. There is no retry and no rollback; the first failing step
// aborts the run.
func (p *Publisher) Publish(ctx context.Context, post string) error {
	workspace, err := os.MkdirTemp("", "linkpost-")
	if err != nil {
		return &PublishError{Step: "workspace", Err: err}
	}
	defer func() { _ = os.RemoveAll(workspace) }()

	repoDir := filepath.Join(workspace, "blog")
	p.log.WithFields(logrus.Fields{
		"repo": RedactURL(p.repo),
		"dir":  repoDir,
	}).Debug("cloning blog repo")
	if err := p.git.Run(ctx, "", "clone", "--branch", p.branch, "--single-branch", p.repo, repoDir); err != nil {
		return &CloneError{Repo: p.repo, Err: err}
	}

	slug := Slug(p.now())
	slugDir := filepath.Join(repoDir, filepath.FromSlash(p.pathToPost), slug)
	if err := os.Mkdir(slugDir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &SlugExistsError{Path: path.Join(p.pathToPost, slug)}
		}
		return &PublishError{Step: "mkdir", Err: err}
	}

	postFile := path.Join(p.pathToPost, slug, "index.md")
	p.log.WithField("path", postFile).Debug("writing post to repo")
	if err := os.WriteFile(filepath.Join(slugDir, "index.md"), []byte(post), 0o644); err != nil {
		return &PublishError{Step: "write", Err: err}
	}

	// Commit signing is disabled for this clone only; operator git config
	// stays untouched.
	steps := []struct {
		name string
		args []string
	}{
		{"config", []string{"config", "--local", "commit.gpgsign", "false"}},
		{"add", []string{"add", postFile}},
		{"commit", []string{"commit", "-m", commitMessage}},
		{"push", []string{"push", "origin", p.branch}},
	}
	for _, step := range steps {
		if err := p.git.Run(ctx, repoDir, step.args...); err != nil {
			return &PublishError{Step: step.name, Err: err}
		}
	}
	return nil
}

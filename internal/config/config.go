// Package config holds the immutable run configuration for linkpost.
//
// A Config is constructed once in cmd/linkpost from flags and environment
// variables and passed by value into the pipeline; no other package reads
// ambient environment state.
package config

import "errors"

// Defaults applied by the CLI when a flag/env value is absent.
const (
	DefaultTimespan   = "7"
	DefaultBranch     = "main"
	DefaultPathToPost = "content/post"
)

// Config describes a single linkpost run.
type Config struct {
	// FeedURL and FeedPath are mutually exclusive feed sources.
	FeedURL  string
	FeedPath string

	// MaxLinks truncates the rendered post to the first N entries.
	// Zero means unlimited.
	MaxLinks int

	// Timespan is the recency window in days. Kept as a string for
	// extensibility; the filter rejects non-numeric values.
	Timespan string

	// BlogRepo is the git remote URL of the content repository. It may
	// embed a token credential.
	BlogRepo string

	// BlogRepoBranch is the branch to clone and push.
	BlogRepoBranch string

	// PathToPost is the posts subdirectory under the repository root.
	PathToPost string

	// NoInteractive skips the preview/confirmation step before publishing.
	NoInteractive bool
}

// Validate checks the invariants that must hold before the pipeline runs.
func (c Config) Validate() error {
	if c.FeedURL == "" && c.FeedPath == "" {
		return errors.New("either an RSS URL or a local path to an RSS file must be provided")
	}
	if c.FeedURL != "" && c.FeedPath != "" {
		return errors.New("RSS URL and RSS path are mutually exclusive; provide exactly one")
	}
	if c.BlogRepo == "" {
		return errors.New("blog repository URL is required")
	}
	if c.MaxLinks < 0 {
		return errors.New("max links must not be negative")
	}
	return nil
}

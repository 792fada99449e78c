// Package feed fetches and parses RSS/Atom feeds into entries.
package feed

import "time"

// Entry is one item of a parsed feed. Entries are immutable once parsed.
type Entry struct {
	Title   string
	Link    string
	Summary string

	// Updated is the entry's update timestamp, falling back to its publish
	// timestamp. Nil when the feed provided neither; the recency filter
	// rejects such entries rather than the parser dropping them.
	Updated *time.Time
}

// FetchError reports a failed feed retrieval, either a network/HTTP failure
// or a local file read failure. It is a benign outcome for the pipeline:
// the run ends without publishing.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return "fetching feed from " + e.Source + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

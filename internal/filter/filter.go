// Package filter retains feed entries updated within a trailing window of days.
package filter

import (
	"math"
	"strconv"
	"time"

	"linkpost/internal/feed"
)

// UnsupportedWindowError reports a recency window that is not a plain
// non-negative integer. Other window forms (explicit dates, durations) are
// unimplemented policies and must fail rather than silently pass everything
// through.
type UnsupportedWindowError struct {
	Window string
}

func (e *UnsupportedWindowError) Error() string {
	return "unsupported timespan " + strconv.Quote(e.Window) + ": only a number of days is supported"
}

// MissingTimestampError reports an entry with no updated/published time.
// One such entry fails the whole filter step.
type MissingTimestampError struct {
	Title string
}

func (e *MissingTimestampError) Error() string {
	return "entry " + strconv.Quote(e.Title) + " has no updated timestamp"
}

// ByRecency returns the entries whose update time falls within the trailing
// window, in their original order. No deduplication. The window is the
// configured timespan string and must parse as a non-negative integer number
// of days.
//
// An entry is retained iff floor((now - updated) / 24h) <= window days, so a
// window of 0 keeps only entries updated within the current day.
func ByRecency(entries []feed.Entry, window string, now time.Time) ([]feed.Entry, error) {
	days, err := parseWindow(window)
	if err != nil {
		return nil, err
	}

	matching := make([]feed.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Updated == nil {
			return nil, &MissingTimestampError{Title: entry.Title}
		}
		daysAgo := int(math.Floor(now.Sub(*entry.Updated).Hours() / 24))
		if daysAgo > days {
			continue
		}
		matching = append(matching, entry)
	}
	return matching, nil
}

func parseWindow(window string) (int, error) {
	days, err := strconv.Atoi(window)
	if err != nil || days < 0 {
		return 0, &UnsupportedWindowError{Window: window}
	}
	return days, nil
}

package feed

import (
	"testing"
	"time"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Assorted Reading</title>
    <item>
      <title>First</title>
      <link>https://example.com/first</link>
      <description>The first item.</description>
      <pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Second</title>
      <link>https://example.com/second</link>
      <description>The second item.</description>
      <pubDate>Tue, 02 Jan 2024 12:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Reading</title>
  <entry>
    <title>Atom Entry</title>
    <link href="https://example.com/atom-entry"/>
    <summary>An atom entry.</summary>
    <updated>2024-01-03T09:00:00Z</updated>
  </entry>
</feed>`

const undatedFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>No Dates</title>
    <item>
      <title>Dateless</title>
      <link>https://example.com/dateless</link>
      <description>No timestamp here.</description>
    </item>
  </channel>
</rss>`

// TestParser_RSS verifies RSS 2.0 items map to entries in feed order.
func TestParser_RSS(t *testing.T) {
	entries, err := NewParser().Parse([]byte(rssFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "First" {
		t.Errorf("expected title 'First', got %q", first.Title)
	}
	if first.Link != "https://example.com/first" {
		t.Errorf("expected link, got %q", first.Link)
	}
	if first.Summary != "The first item." {
		t.Errorf("expected summary, got %q", first.Summary)
	}
	if first.Updated == nil {
		t.Fatal("expected a timestamp from pubDate")
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if !first.Updated.Equal(want) {
		t.Errorf("expected %v, got %v", want, first.Updated)
	}
	if entries[1].Title != "Second" {
		t.Errorf("feed order not preserved, got %q second", entries[1].Title)
	}
}

// TestParser_Atom verifies Atom entries map to entries with their updated time.
func TestParser_Atom(t *testing.T) {
	entries, err := NewParser().Parse([]byte(atomFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Title != "Atom Entry" {
		t.Errorf("expected title 'Atom Entry', got %q", entry.Title)
	}
	if entry.Updated == nil {
		t.Fatal("expected a timestamp from <updated>")
	}
	want := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	if !entry.Updated.Equal(want) {
		t.Errorf("expected %v, got %v", want, entry.Updated)
	}
}

// TestParser_MissingTimestamp verifies entries without a date keep a nil
// Updated instead of being dropped; the filter decides their fate.
func TestParser_MissingTimestamp(t *testing.T) {
	entries, err := NewParser().Parse([]byte(undatedFeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Updated != nil {
		t.Errorf("expected nil timestamp, got %v", entries[0].Updated)
	}
}

// TestParser_MalformedInput verifies unparsable input returns an error the
// pipeline can treat as an empty feed.
func TestParser_MalformedInput(t *testing.T) {
	entries, err := NewParser().Parse([]byte("this is not a feed"))
	if err == nil {
		t.Fatalf("expected error for malformed input, got %d entries", len(entries))
	}
}

package feed

import (
	"bytes"
	"time"

	"github.com/mmcdole/gofeed"
)

// Parser turns raw feed bytes into entries. It delegates RSS 2.0 and Atom
// handling to gofeed and performs no validation of its own: parsing is a
// structural transform, and entries without a timestamp are passed through
// for the filter to reject.
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a feed parser.
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse converts raw feed content into entries in feed order. Unparsable
// input yields an error; callers treat that as an empty feed rather than a
// fatal failure.
func (p *Parser) Parse(raw []byte) ([]Entry, error) {
	parsed, err := p.parser.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		var updated *time.Time
		if item.UpdatedParsed != nil {
			updated = item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			updated = item.PublishedParsed
		}

		entries = append(entries, Entry{
			Title:   item.Title,
			Link:    item.Link,
			Summary: summary,
			Updated: updated,
		})
	}
	return entries, nil
}

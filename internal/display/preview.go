// Package display provides terminal output formatting for linkpost.
package display

import (
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 40

// PostPreview formats a rendered post for terminal review before publishing.
type PostPreview struct {
	header *color.Color
	rule   *color.Color
}

// NewPostPreview creates a new post preview formatter.
func NewPostPreview() *PostPreview {
	return &PostPreview{
		header: color.New(color.FgCyan, color.Bold),
		rule:   color.New(color.Faint),
	}
}

// FormatPost renders the preview block shown to the operator: a header, the
// post between two rule lines, and nothing else. The post body is passed
// through verbatim so what the operator approves is exactly what gets
// committed.
func (p *PostPreview) FormatPost(post string) string {
	rule := p.rule.Sprint(strings.Repeat("-", ruleWidth))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.header.Sprint("Generated post content:"))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(post)
	if !strings.HasSuffix(post, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")
	return b.String()
}

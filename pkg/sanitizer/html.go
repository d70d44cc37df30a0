// Package sanitizer cleans the rich-text HTML produced by the note editor.
package sanitizer

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// NoteContentSanitizer strips scripts, event handlers and unknown markup from
// note bodies while keeping the formatting the editor emits.
// bluemonday policies are safe for concurrent use after creation.
type NoteContentSanitizer struct {
	policy *bluemonday.Policy
}

func NewNoteContentSanitizer() *NoteContentSanitizer {
	return &NoteContentSanitizer{policy: noteContentPolicy()}
}

func noteContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("p", "br", "hr", "span", "div")
	p.AllowElements("strong", "b", "em", "i", "u", "s", "del", "sub", "sup", "mark", "code", "pre")
	p.AllowElements("ul", "ol", "li", "blockquote")

	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_(blank|self)$`)).OnElements("a")
	p.RequireNoFollowOnLinks(true)

	p.AllowImages()
	p.AllowAttrs("alt", "title", "width", "height").OnElements("img")

	p.AllowTables()

	// task lists
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")

	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)).Globally()
	p.AllowStyles("text-align").MatchingEnum("left", "right", "center", "justify").Globally()

	return p
}

func (s *NoteContentSanitizer) Sanitize(content string) string {
	if content == "" {
		return content
	}
	return s.policy.Sanitize(content)
}

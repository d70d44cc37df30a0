package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	s := NewNoteContentSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "keeps formatting",
			in:   "<p>This is <strong>bold</strong> and <em>italic</em>.</p>",
			want: "<p>This is <strong>bold</strong> and <em>italic</em>.</p>",
		},
		{
			name: "drops script",
			in:   "<p>hi</p><script>alert(1)</script>",
			want: "<p>hi</p>",
		},
		{
			name: "drops event handlers",
			in:   `<p onclick="steal()">x</p>`,
			want: "<p>x</p>",
		},
		{
			name: "drops javascript urls",
			in:   `<a href="javascript:alert(1)">x</a>`,
			want: "x",
		},
		{
			name: "keeps lists",
			in:   "<ul><li>milk</li><li>eggs</li></ul>",
			want: "<ul><li>milk</li><li>eggs</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}

func TestSanitizeLinksGetNofollow(t *testing.T) {
	s := NewNoteContentSanitizer()
	out := s.Sanitize(`<a href="https://example.com">site</a>`)
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `rel="nofollow"`)
}

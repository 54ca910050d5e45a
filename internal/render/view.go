package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// View is a formatted value: its spans and their total display width.
type View struct {
	spans []Span
	width int
}

func newView(spans []Span) View {
	view := View{}
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		view.spans = append(view.spans, span)
		view.width += runewidth.StringWidth(span.Text)
	}
	return view
}

func (view View) Width() int { return view.width }

func (view View) String() string {
	var builder strings.Builder
	for _, span := range view.spans {
		builder.WriteString(span.Text)
	}
	return builder.String()
}

func (view View) write(builder *strings.Builder, color bool) {
	for _, span := range view.spans {
		if color && span.Color != "" {
			builder.WriteString(string(span.Color))
			builder.WriteString(span.Text)
			builder.WriteString(string(Reset))
			continue
		}
		builder.WriteString(span.Text)
	}
}

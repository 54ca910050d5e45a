package render

import "lss/internal/domain"

type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
)

// Span is one colored piece of a formatted value.
type Span struct {
	Text  string
	Color Color
}

type Formatter interface {
	Format(item *domain.Item) []Span
}

type FormatterFunc func(item *domain.Item) []Span

func (fn FormatterFunc) Format(item *domain.Item) []Span {
	return fn(item)
}

// Column describes one field of a listing row. Fill is written after the
// value; Prefix is written before it, and only when the value is non-empty.
type Column struct {
	Name      string
	Formatter Formatter
	Align     Align
	Fill      string
	Prefix    string
}

// NewColumn returns a right aligned column separated by a single space.
func NewColumn(name string, formatter Formatter) Column {
	return Column{Name: name, Formatter: formatter, Align: AlignRight, Fill: " "}
}

func single(text string, color Color) []Span {
	return []Span{{Text: text, Color: color}}
}

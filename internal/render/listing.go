package render

import (
	"io"
	"sort"
	"strings"

	"lss/internal/domain"
)

type ListingOptions struct {
	SortMode domain.SortMode
	Reverse  bool
	Color    bool
}

// Listing collects items and renders them as aligned rows. Items may still
// change after Add; values are only computed by Render and Lines.
type Listing struct {
	columns []Column
	items   []*domain.Item
	opts    ListingOptions
}

func NewListing(columns []Column, opts ListingOptions) *Listing {
	if opts.SortMode == "" {
		opts.SortMode = domain.SortByName
	}
	return &Listing{columns: columns, opts: opts}
}

func (listing *Listing) Add(item *domain.Item) {
	listing.items = append(listing.items, item)
}

func (listing *Listing) Len() int { return len(listing.items) }

// Sorted returns the items in display order.
func (listing *Listing) Sorted() []*domain.Item {
	items := append([]*domain.Item(nil), listing.items...)
	less := lessFunc(listing.opts.SortMode, items)
	sort.SliceStable(items, less)
	if listing.opts.Reverse {
		for left, right := 0, len(items)-1; left < right; left, right = left+1, right-1 {
			items[left], items[right] = items[right], items[left]
		}
	}
	return items
}

func lessFunc(mode domain.SortMode, items []*domain.Item) func(i, j int) bool {
	switch mode {
	case domain.SortBySize:
		return func(i, j int) bool { return items[i].Size() < items[j].Size() }
	case domain.SortByMod:
		return func(i, j int) bool { return items[i].Mtime().Before(items[j].Mtime()) }
	default:
		return func(i, j int) bool { return items[i].Name() < items[j].Name() }
	}
}

// Lines renders every row without the trailing newline.
func (listing *Listing) Lines() []string {
	items := listing.Sorted()
	rows := make([][]View, len(items))
	widths := make([]int, len(listing.columns))
	for index, item := range items {
		row := make([]View, len(listing.columns))
		for column, descriptor := range listing.columns {
			row[column] = newView(descriptor.Formatter.Format(item))
			if row[column].width > widths[column] {
				widths[column] = row[column].width
			}
		}
		rows[index] = row
	}

	lines := make([]string, len(rows))
	for index, row := range rows {
		lines[index] = listing.line(row, widths)
	}
	return lines
}

func (listing *Listing) line(row []View, widths []int) string {
	var builder strings.Builder
	lastFill := ""
	for column, view := range row {
		descriptor := listing.columns[column]
		if view.width > 0 && descriptor.Prefix != "" {
			builder.WriteString(descriptor.Prefix)
		}
		padding := strings.Repeat(" ", widths[column]-view.width)
		if descriptor.Align == AlignRight {
			builder.WriteString(padding)
		}
		view.write(&builder, listing.opts.Color)
		if descriptor.Align == AlignLeft {
			builder.WriteString(padding)
		}
		if widths[column] > 0 || lastFill == "" {
			builder.WriteString(descriptor.Fill)
			lastFill = descriptor.Fill
		}
	}
	return builder.String()
}

// Render writes one line per item to w.
func (listing *Listing) Render(w io.Writer) error {
	for _, line := range listing.Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

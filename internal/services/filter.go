package services

import (
	"path/filepath"
	"strings"
)

// Filter returns true to hide an entry name.
type Filter func(name string) bool

type Filters []Filter

// Rejects reports whether any filter hides name.
func (filters Filters) Rejects(name string) bool {
	for _, filter := range filters {
		if filter(name) {
			return true
		}
	}
	return false
}

func HideDotFiles(name string) bool {
	return strings.HasPrefix(name, ".")
}

func ShowAll(string) bool {
	return false
}

func HideBackups(name string) bool {
	return strings.HasSuffix(name, "~")
}

// HidePattern hides names matching a shell glob. A malformed pattern hides
// nothing.
func HidePattern(pattern string) Filter {
	return func(name string) bool {
		matched, err := filepath.Match(pattern, name)
		return err == nil && matched
	}
}

// BuildFilters composes the name filters for the listing flags. Filters are
// independent and their rejections add up.
func BuildFilters(all bool, ignoreBackups bool, patterns []string) Filters {
	filters := Filters{HideDotFiles}
	if all {
		filters = Filters{ShowAll}
	}
	if ignoreBackups {
		filters = append(filters, HideBackups)
	}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		filters = append(filters, HidePattern(pattern))
	}
	return filters
}

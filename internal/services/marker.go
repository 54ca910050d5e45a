package services

import (
	"github.com/mordilloSan/go-logger/logger"

	"lss/internal/domain"
)

// MarkerFunc inspects a directory. A zero Mark means no annotation; an error
// means the same.
type MarkerFunc func(file *domain.File) (domain.Mark, error)

type namedMarker struct {
	name string
	fn   MarkerFunc
}

// Registry holds the markers applied to every directory a Traverser visits.
// It is populated explicitly before the first walk.
type Registry struct {
	markers []namedMarker
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (registry *Registry) Register(name string, fn MarkerFunc) {
	registry.markers = append(registry.markers, namedMarker{name: name, fn: fn})
}

func (registry *Registry) Len() int {
	if registry == nil {
		return 0
	}
	return len(registry.markers)
}

func (registry *Registry) Names() []string {
	if registry == nil {
		return nil
	}
	names := make([]string, 0, len(registry.markers))
	for _, marker := range registry.markers {
		names = append(names, marker.name)
	}
	return names
}

// Apply runs every marker against file and merges the results into item.
func (registry *Registry) Apply(item *domain.Item, file *domain.File) {
	if registry == nil || item == nil {
		return
	}
	for _, marker := range registry.markers {
		mark, err := marker.fn(file)
		if err != nil {
			logger.DebugKV("marker failed", "marker", marker.name, "path", file.Path(), "error", err)
			continue
		}
		item.SetMark(mark)
	}
}

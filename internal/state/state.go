package state

import (
	"path/filepath"
	"time"

	"lss/internal/config"
	"lss/internal/domain"
	"lss/internal/render"
)

type Preferences struct {
	ShowHidden bool
	SortMode   domain.SortMode
	Reverse    bool
	Theme      string
}

// State is the browser's view of one listed directory.
type State struct {
	Path        string
	Cursor      int
	Prefs       Preferences
	KeyBindings map[string]string
	Problems    []error
	Elapsed     time.Duration
	Scanned     bool

	columns []render.Column
	color   bool
	items   []*domain.Item
	rows    []*domain.Item
	lines   []string
}

func NewState(cfg config.Config, columns []render.Column, color bool) *State {
	path := "."
	if len(cfg.Paths) > 0 {
		path = cfg.Paths[0]
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &State{
		Path: path,
		Prefs: Preferences{
			ShowHidden: cfg.All,
			SortMode:   cfg.SortMode,
			Reverse:    cfg.Reverse,
			Theme:      cfg.Theme,
		},
		KeyBindings: ensureBindings(cfg.KeyBindings),
		columns:     columns,
		color:       color,
	}
}

func ensureBindings(bindings map[string]string) map[string]string {
	if bindings == nil {
		return map[string]string{}
	}
	return bindings
}

// SetListing replaces the items of the current directory.
func (appState *State) SetListing(path string, items []*domain.Item, problems []error, elapsed time.Duration) {
	if path != appState.Path {
		appState.Cursor = 0
	}
	appState.Path = path
	appState.items = items
	appState.Problems = problems
	appState.Elapsed = elapsed
	appState.Scanned = true
	appState.relist()
}

func (appState *State) relist() {
	listing := render.NewListing(appState.columns, render.ListingOptions{
		SortMode: appState.Prefs.SortMode,
		Reverse:  appState.Prefs.Reverse,
		Color:    appState.color,
	})
	for _, item := range appState.items {
		listing.Add(item)
	}
	appState.rows = listing.Sorted()
	appState.lines = listing.Lines()
	appState.clampCursor()
}

func (appState *State) clampCursor() {
	if appState.Cursor >= len(appState.rows) {
		appState.Cursor = len(appState.rows) - 1
	}
	if appState.Cursor < 0 {
		appState.Cursor = 0
	}
}

// Rows returns the items in display order, matching Lines.
func (appState *State) Rows() []*domain.Item { return appState.rows }

func (appState *State) Lines() []string { return appState.lines }

func (appState *State) CurrentItem() *domain.Item {
	if appState.Cursor < 0 || appState.Cursor >= len(appState.rows) {
		return nil
	}
	return appState.rows[appState.Cursor]
}

func (appState *State) MoveCursor(delta int) bool {
	previous := appState.Cursor
	appState.Cursor += delta
	appState.clampCursor()
	return appState.Cursor != previous
}

// Focus moves the cursor to the row for path, if it is listed.
func (appState *State) Focus(path string) bool {
	for index, item := range appState.rows {
		if item.Path() == path {
			appState.Cursor = index
			return true
		}
	}
	return false
}

// EnterTarget is the directory the cursor points at. Symlinks to
// directories are followed.
func (appState *State) EnterTarget() (string, bool) {
	item := appState.CurrentItem()
	if item == nil {
		return "", false
	}
	if item.IsDir() {
		return item.Path(), true
	}
	if item.IsSymlink() {
		if target, err := item.LinkedFile(); err == nil && target.IsDir() {
			return item.Path(), true
		}
	}
	return "", false
}

func (appState *State) ParentPath() (string, bool) {
	parent := filepath.Dir(appState.Path)
	if parent == appState.Path {
		return "", false
	}
	return parent, true
}

func (appState *State) ToggleSortMode() domain.SortMode {
	appState.Prefs.SortMode = appState.Prefs.SortMode.Next()
	appState.relist()
	return appState.Prefs.SortMode
}

func (appState *State) ToggleReverse() bool {
	appState.Prefs.Reverse = !appState.Prefs.Reverse
	appState.relist()
	return appState.Prefs.Reverse
}

// ToggleShowHidden only flips the preference; hidden entries appear after
// the next scan.
func (appState *State) ToggleShowHidden() bool {
	appState.Prefs.ShowHidden = !appState.Prefs.ShowHidden
	return appState.Prefs.ShowHidden
}

func (appState *State) Incomplete() int {
	count := 0
	for _, item := range appState.items {
		if !item.Complete() {
			count++
		}
	}
	return count
}

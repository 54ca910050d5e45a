package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lss/internal/config"
	"lss/internal/domain"
	"lss/internal/render"
	"lss/internal/services"
	"lss/internal/state"
)

var nameColumn = []render.Column{{
	Name: "name",
	Formatter: render.FormatterFunc(func(item *domain.Item) []render.Span {
		return []render.Span{{Text: item.Name()}}
	}),
}}

func newTestModel(t *testing.T, root string) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Paths = []string{root}
	opts := services.DefaultTraverseOptions()
	opts.Timeout = time.Minute
	return NewModel(state.NewState(cfg, nameColumn, false), services.NewDirScanner(opts, false, nil))
}

// drive runs cmd synchronously and feeds its message back into the model.
func drive(t *testing.T, model Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	updated, next := model.Update(cmd())
	assert.Nil(t, next)
	return updated.(Model)
}

func press(t *testing.T, model Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(msg)
	return updated.(Model), cmd
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func browseFixture(t *testing.T) string {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "guide"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "intro.md"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), nil, 0o644))
	return root
}

func TestBrowseEnterAndLeave(t *testing.T) {
	root := browseFixture(t)
	model := newTestModel(t, root)
	model = drive(t, model, model.Init())

	assert.Equal(t, []string{"docs", "main.go"}, model.state.Lines())
	assert.Contains(t, model.status, "Scanned 2 items")

	model, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, model.scanning)
	model = drive(t, model, cmd)
	assert.Equal(t, filepath.Join(root, "docs"), model.state.Path)
	assert.Equal(t, []string{"guide", "intro.md"}, model.state.Lines())

	model, cmd = press(t, model, tea.KeyMsg{Type: tea.KeyLeft})
	model = drive(t, model, cmd)
	assert.Equal(t, root, model.state.Path)
	assert.Equal(t, "docs", model.state.CurrentItem().Name(), "cursor returns to the directory we left")
}

func TestBrowseEnterIgnoresFiles(t *testing.T) {
	root := browseFixture(t)
	model := newTestModel(t, root)
	model = drive(t, model, model.Init())

	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "main.go", model.state.CurrentItem().Name())
	_, cmd := press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestBrowseToggles(t *testing.T) {
	root := browseFixture(t)
	model := newTestModel(t, root)
	model = drive(t, model, model.Init())

	model, cmd := press(t, model, runes("h"))
	model = drive(t, model, cmd)
	assert.Equal(t, []string{".env", "docs", "main.go"}, model.state.Lines())

	model, _ = press(t, model, runes("r"))
	assert.Equal(t, []string{"main.go", "docs", ".env"}, model.state.Lines())

	model, _ = press(t, model, runes("o"))
	assert.Equal(t, domain.SortByMod, model.state.Prefs.SortMode)
	assert.Equal(t, "Sort: mtime", model.status)

	model, _ = press(t, model, runes("?"))
	assert.Contains(t, model.View(), "lss Help")
	model, _ = press(t, model, runes("?"))
	assert.NotContains(t, model.View(), "lss Help")
}

func TestBrowseScanError(t *testing.T) {
	scanner := services.NewMockScanner()
	cfg := config.DefaultConfig()
	cfg.Paths = []string{"/nowhere"}
	model := NewModel(state.NewState(cfg, nameColumn, false), scanner)

	model = drive(t, model, model.Init())
	assert.Contains(t, model.status, "Scan error")
	require.Len(t, scanner.Requests, 1)
	assert.Equal(t, "/nowhere", scanner.Requests[0].RootPath)
	assert.Contains(t, model.View(), "Scanning...")
}

func TestBrowseIgnoresSupersededScan(t *testing.T) {
	root := browseFixture(t)
	model := newTestModel(t, root)
	model = drive(t, model, model.Init())

	model, first := press(t, model, runes("s"))
	model, second := press(t, model, runes("s"))
	require.NotNil(t, first)

	updated, next := model.Update(first())
	assert.Nil(t, next)
	model = updated.(Model)
	assert.True(t, model.scanning)
	assert.NotNil(t, model.cancel)
	assert.Equal(t, "Scanning... "+root, model.status)

	model = drive(t, model, second)
	assert.False(t, model.scanning)
	assert.Contains(t, model.status, "Scanned 2 items")
}

func TestBrowseQuit(t *testing.T) {
	model := newTestModel(t, t.TempDir())
	_, cmd := press(t, model, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsCursorAndSummary(t *testing.T) {
	root := browseFixture(t)
	model := newTestModel(t, root)
	model = drive(t, model, model.Init())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	model = updated.(Model)

	view := model.View()
	assert.Contains(t, view, "> docs")
	assert.Contains(t, view, "  main.go")
	assert.Contains(t, view, "2 items")
	assert.Len(t, strings.Split(view, "\n"), 10)
}

func TestKeyMapFrom(t *testing.T) {
	keys := KeyMapFrom(map[string]string{"quit": "x, ctrl+q", "bogus": "z", "sort": " "})
	assert.Equal(t, []string{"x", "ctrl+q"}, keys.Quit.Keys())
	assert.Equal(t, "x/ctrl+q", keys.Quit.Help().Key)
	assert.Equal(t, []string{"o"}, keys.Sort.Keys())
}

func TestScanStatus(t *testing.T) {
	dir := t.TempDir()
	file, err := domain.NewFile(dir)
	require.NoError(t, err)
	result := services.ScanResult{
		Items:    []*domain.Item{domain.NewItem(file, 1)},
		Problems: []error{errors.New("denied")},
		Duration: 1500 * time.Microsecond,
	}
	assert.Equal(t, "Scanned 1 items in 2ms, 1 incomplete - warning: 1 unreadable", scanStatus(result))
}

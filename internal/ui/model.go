package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mordilloSan/go-logger/logger"

	"lss/internal/services"
	"lss/internal/state"
)

type Model struct {
	state    *state.State
	scanner  services.Scanner
	keys     KeyMap
	showHelp bool
	status   string
	scanning bool
	cancel   context.CancelFunc
	scanID   int
	width    int
	height   int
	viewTop  int
}

func NewModel(appState *state.State, scanner services.Scanner) Model {
	return Model{
		state:   appState,
		scanner: scanner,
		keys:    KeyMapFrom(appState.KeyBindings),
		status:  "Ready",
		width:   100,
		height:  30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) Init() tea.Cmd {
	if model.state.Scanned {
		return nil
	}
	return model.scanCmd(context.Background(), model.state.Path, "")
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.ensureCursorVisible()
		return model, nil
	case scanResultMsg:
		if typed.scanID != model.scanID {
			// Superseded by a newer scan.
			return model, nil
		}
		model.scanning = false
		model.cancel = nil
		if typed.err != nil {
			if errors.Is(typed.err, context.Canceled) {
				model.status = "Scan cancelled"
				return model, nil
			}
			logger.Warnf("browse: %v", typed.err)
			model.status = fmt.Sprintf("Scan error: %v", typed.err)
			return model, nil
		}
		result := typed.result
		model.state.SetListing(result.RootPath, result.Items, result.Problems, result.Duration)
		if typed.focus != "" {
			model.state.Focus(typed.focus)
		}
		model.status = scanStatus(result)
		model.ensureCursorVisible()
		return model, nil
	default:
		return model, nil
	}
}

func scanStatus(result services.ScanResult) string {
	status := fmt.Sprintf("Scanned %d items in %s", len(result.Items), result.Duration.Round(time.Millisecond))
	if incomplete := result.Incomplete(); incomplete > 0 {
		status += fmt.Sprintf(", %d incomplete", incomplete)
	}
	if len(result.Problems) > 0 {
		status += fmt.Sprintf(" - warning: %d unreadable", len(result.Problems))
	}
	return status
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		model = model.cancelScan("")
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		if model.state.MoveCursor(-1) {
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Down):
		if model.state.MoveCursor(1) {
			model.ensureCursorVisible()
		}
		return model, nil
	case key.Matches(msg, model.keys.Top):
		model.state.MoveCursor(-len(model.state.Rows()))
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Bottom):
		model.state.MoveCursor(len(model.state.Rows()))
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Enter):
		path, ok := model.state.EnterTarget()
		if !ok {
			return model, nil
		}
		return model.beginScan(path, "")
	case key.Matches(msg, model.keys.Back):
		parent, ok := model.state.ParentPath()
		if !ok {
			return model, nil
		}
		return model.beginScan(parent, model.state.Path)
	case key.Matches(msg, model.keys.Sort):
		mode := model.state.ToggleSortMode()
		model.status = fmt.Sprintf("Sort: %s", mode)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Reverse):
		model.state.ToggleReverse()
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Hidden):
		model.state.ToggleShowHidden()
		return model.beginScan(model.state.Path, focusPath(model))
	case key.Matches(msg, model.keys.Scan):
		return model.beginScan(model.state.Path, focusPath(model))
	default:
		return model, nil
	}
}

func focusPath(model Model) string {
	if item := model.state.CurrentItem(); item != nil {
		return item.Path()
	}
	return ""
}

func (model Model) beginScan(path string, focus string) (Model, tea.Cmd) {
	model = model.cancelScan("")
	ctx, cancel := context.WithCancel(context.Background())
	model.cancel = cancel
	model.scanID++
	model.scanning = true
	model.status = fmt.Sprintf("Scanning... %s", path)
	return model, model.scanCmd(ctx, path, focus)
}

func (model Model) scanCmd(ctx context.Context, path string, focus string) tea.Cmd {
	request := services.ScanRequest{
		RootPath:   path,
		ShowHidden: model.state.Prefs.ShowHidden,
	}
	scanner := model.scanner
	scanID := model.scanID

	return func() tea.Msg {
		result, err := scanner.Scan(ctx, request)
		return scanResultMsg{scanID: scanID, result: result, err: err, focus: focus}
	}
}

func (model Model) cancelScan(message string) Model {
	if model.cancel != nil {
		model.cancel()
		model.cancel = nil
	}
	if message != "" {
		model.status = message
	}
	model.scanning = false
	return model
}

func (model *Model) ensureCursorVisible() {
	rows := len(model.state.Rows())
	if rows == 0 {
		model.viewTop = 0
		return
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	cursor := model.state.Cursor
	if cursor < model.viewTop {
		model.viewTop = cursor
	}
	if cursor >= model.viewTop+listHeight {
		model.viewTop = cursor - listHeight + 1
	}
	maxTop := rows - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	return model.height - 3
}

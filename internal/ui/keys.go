package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Sort    key.Binding
	Reverse key.Binding
	Hidden  key.Binding
	Scan    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("right", "enter", "l"),
			key.WithHelp("→/enter", "enter directory"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "backspace"),
			key.WithHelp("←/backspace", "parent directory"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first entry"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last entry"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle sort"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hidden"),
		),
		Scan: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rescan"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFrom applies user overrides, "action: key[,key...]", on top of the
// defaults. Unknown actions are ignored.
func KeyMapFrom(bindings map[string]string) KeyMap {
	keys := DefaultKeyMap()
	targets := map[string]*key.Binding{
		"up":      &keys.Up,
		"down":    &keys.Down,
		"enter":   &keys.Enter,
		"back":    &keys.Back,
		"top":     &keys.Top,
		"bottom":  &keys.Bottom,
		"sort":    &keys.Sort,
		"reverse": &keys.Reverse,
		"hidden":  &keys.Hidden,
		"scan":    &keys.Scan,
		"help":    &keys.Help,
		"quit":    &keys.Quit,
	}
	for action, value := range bindings {
		binding, ok := targets[strings.ToLower(action)]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		var keyNames []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				keyNames = append(keyNames, name)
			}
		}
		binding.SetKeys(keyNames...)
		binding.SetHelp(strings.Join(keyNames, "/"), binding.Help().Desc)
	}
	return keys
}

func (keys KeyMap) bindings() []key.Binding {
	return []key.Binding{
		keys.Up,
		keys.Down,
		keys.Enter,
		keys.Back,
		keys.Top,
		keys.Bottom,
		keys.Sort,
		keys.Reverse,
		keys.Hidden,
		keys.Scan,
		keys.Help,
		keys.Quit,
	}
}

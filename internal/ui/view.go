package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"lss/internal/render"
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
		}
	}
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	return strings.Join([]string{
		renderHeader(model, styles),
		renderBody(model, styles),
		renderFooter(model, styles),
	}, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	status := "IDLE"
	if model.scanning {
		status = "SCANNING"
	}
	left := styles.headerStyle.Render("lss") + "  " + breadcrumbs(model.state.Path)
	right := styles.statusStyle.Render(status)
	if label := sizeLabel(model); label != "" {
		right = styles.mutedStyle.Render(label) + "  " + right
	}
	return padLine(left, right, model.width)
}

func renderBody(model Model, styles uiStyles) string {
	height := maxInt(model.listHeight(), 1)
	lines := model.state.Lines()
	body := make([]string, 0, height)
	if len(lines) == 0 {
		message := "Empty directory"
		if !model.state.Scanned {
			message = "Scanning..."
		}
		body = append(body, styles.mutedStyle.Render(message))
	}
	start := clamp(model.viewTop, 0, maxInt(len(lines)-1, 0))
	end := minInt(start+height, len(lines))
	for index := start; index < end; index++ {
		line := lines[index]
		marker := "  "
		if index == model.state.Cursor {
			marker = styles.cursorStyle.Render("> ")
		}
		if model.width > 2 {
			line = truncate.StringWithTail(line, uint(model.width-2), "…")
		}
		body = append(body, marker+line)
	}
	for len(body) < height {
		body = append(body, "")
	}
	return strings.Join(body, "\n")
}

func renderFooter(model Model, styles uiStyles) string {
	statusStyle := styles.mutedStyle
	lower := strings.ToLower(model.status)
	if strings.Contains(lower, "error") || strings.Contains(lower, "warning") {
		statusStyle = styles.warnStyle
	}
	statusLine := statusStyle.Render(trimStatus(model.status, model.width))

	prefs := model.state.Prefs
	sortInfo := fmt.Sprintf("Sort: %s", strings.ToUpper(string(prefs.SortMode)))
	if prefs.Reverse {
		sortInfo += " (rev)"
	}
	hiddenInfo := "Hidden: off"
	if prefs.ShowHidden {
		hiddenInfo = "Hidden: on"
	}
	summary := fmt.Sprintf("%d items  %d incomplete  %s  %s  %s",
		len(model.state.Rows()), model.state.Incomplete(), sortInfo, hiddenInfo, model.state.Elapsed.Round(time.Microsecond))
	keys := "↑/↓ move  → enter  ← up  o sort  r reverse  h hidden  s rescan  ? help  q quit"
	footerLine := padLine(summary, keys, model.width)
	return strings.Join([]string{statusLine, styles.mutedStyle.Render(footerLine)}, "\n")
}

func renderHelpView(model Model, styles uiStyles) string {
	lines := []string{styles.headerStyle.Render("lss Help"), ""}
	lines = append(lines, styles.headerStyle.Render("Columns"))
	lines = append(lines,
		"permissions  user  group  count  size  + incomplete  age  markers  name",
		"count and size of directories include everything folded below them",
		"+ means the walk ran out of time before finishing the directory",
	)
	lines = append(lines, "", styles.headerStyle.Render("Keys"))
	for _, binding := range model.keys.bindings() {
		keysLabel := strings.Join(binding.Keys(), ", ")
		lines = append(lines, fmt.Sprintf("%-18s %s", keysLabel, binding.Help().Desc))
	}
	lines = append(lines, "", "Press ? to close help")
	content := strings.Join(lines, "\n")
	width := model.width
	if width <= 0 {
		width = 80
	}
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return border.Width(maxInt(width-2, 10)).Render(content)
}

func breadcrumbs(path string) string {
	path = filepath.Clean(path)
	if path == "." {
		return "."
	}
	parts := strings.Split(path, string(filepath.Separator))
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}
	if len(parts) == 2 && parts[1] == "" {
		return parts[0]
	}
	return strings.Join(parts, " › ")
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func trimStatus(message string, width int) string {
	if width <= 4 {
		return message
	}
	return truncate.StringWithTail(message, uint(width-4), "...")
}

// sizeLabel is the size of the entry under the cursor.
func sizeLabel(model Model) string {
	item := model.state.CurrentItem()
	if item == nil {
		return ""
	}
	return render.HumanSize(item.Size())
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

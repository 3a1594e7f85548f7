package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/menu-launcher/internal/format/table"
	"github.com/atomicstack/menu-launcher/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	itemIndicator = "▌"
	subMenuMarker = "›"
	// border plus horizontal padding of the box style
	boxChrome = 4
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := make([]string, 0, 5)
	if header := m.menuHeader(); header != "" {
		sections = append(sections, renderLines(applyWidth([]styledLine{{text: header, style: styles.Header}}, m.width)))
	}
	sections = append(sections, m.renderBox())
	sections = append(sections, renderLines(applyWidth([]styledLine{m.statusLine()}, m.width)))
	if m.filterEnabled {
		sections = append(sections, m.filterPrompt())
	}
	if m.showFooter {
		footer := m.help.View(m.keys)
		if styles.Footer != nil {
			footer = styles.Footer.Render(footer)
		}
		sections = append(sections, footer)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

// renderBox draws the visible slice of the current level inside a border.
func (m *Model) renderBox() string {
	current := m.currentLevel()
	lines := make([]styledLine, 0, 16)
	if current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			rows := m.itemRows(displayItems)
			inner := m.innerWidth(rows)
			for i, row := range rows {
				lines = append(lines, m.buildItemLine(row, start+i, current.Cursor, inner))
			}
		}
	}
	body := renderLines(lines)
	if styles.Box == nil {
		return body
	}
	return styles.Box.Render(body)
}

// itemRows lays out labels and hints in aligned columns.
func (m *Model) itemRows(entries []menu.Entry) []string {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Label, m.entryHint(entry)}
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (m *Model) entryHint(entry menu.Entry) string {
	if entry.IsSubMenu() {
		return subMenuMarker
	}
	if m.verbose {
		return entry.Command.String()
	}
	return ""
}

// innerWidth is the text width inside the box: the widest row, capped to the
// terminal width when it is known.
func (m *Model) innerWidth(rows []string) int {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(itemIndicator + " " + strings.TrimRight(row, " ")); w > width {
			width = w
		}
	}
	if m.width > 0 {
		if limit := m.width - boxChrome; limit > 0 && width > limit {
			width = limit
		}
	}
	return width
}

// buildItemLine constructs a single styledLine for a menu row, padded to
// width so the selected row's background spans the box.
func (m *Model) buildItemLine(row string, idx, cursor, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := itemIndicator + " " + strings.TrimRight(row, " ")
	if width > 0 {
		if lipgloss.Width(text) > width {
			text = ansi.Truncate(text, width, "…")
		}
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.launching:
		return styledLine{text: fmt.Sprintf("Launching %s…", m.pendingLabel), style: styles.Loading}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) menuHeader() string {
	segments := m.nav.Breadcrumbs()
	cleaned := make([]string, 0, len(segments))
	for _, segment := range segments {
		if s := strings.TrimSpace(segment); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // box borders + status line
	if header := m.menuHeader(); header != "" {
		used++
	}
	if m.filterEnabled {
		used++
	}
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}

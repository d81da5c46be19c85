package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/icon"
	"github.com/sjoeboo/msgbox/internal/layout"
	"github.com/sjoeboo/msgbox/internal/markup"
)

// iconGap separates the icon column from the message text.
const iconGap = 2

// MessageDialog shows a message with an icon, a button row and an optional
// countdown.
type MessageDialog struct {
	frame

	messages []markup.RichMessage
	icon     []string
	metrics  layout.FontMetrics
	// base is the size resolved from the message; size is base clamped to the
	// screen and measured after wrapping.
	base  layout.Size
	size  layout.Size
	lines [][]string
}

func newMessageDialog(req Request, set buttons.Set, lang string, metrics layout.FontMetrics, cd countdown) *MessageDialog {
	var messages []markup.RichMessage
	for _, seg := range req.Message {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		messages = append(messages, markup.Translate(seg))
	}
	d := &MessageDialog{
		frame:    newFrame(req.Caption, set, lang, cd),
		messages: messages,
		icon:     icon.Render(req.Icon),
		metrics:  metrics,
		base:     layout.Resolve(req.Message, metrics, req.Buttons),
	}
	d.relayout()
	return d
}

// Size returns the dialog geometry for the current screen.
func (d *MessageDialog) Size() layout.Size { return d.size }

func (d *MessageDialog) iconWidth() int {
	if len(d.icon) == 0 {
		return 0
	}
	return lipgloss.Width(d.icon[0]) + iconGap
}

func (d *MessageDialog) relayout() {
	size := d.base.Clamp(d.width)
	textWidth := size.Columns - d.iconWidth()
	d.lines = d.lines[:0]
	counts := make([]int, 0, len(d.messages))
	for _, m := range d.messages {
		ls := markup.Render(m, textWidth)
		d.lines = append(d.lines, ls)
		counts = append(counts, len(ls))
	}
	d.size = size.Measure(counts, d.metrics, len(d.icon) > 0)
}

func (d *MessageDialog) SetSize(width, height int) {
	d.frame.SetSize(width, height)
	d.relayout()
}

func (d *MessageDialog) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(d.Title()), d.countdown.tick())
}

func (d *MessageDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case tickMsg:
		return d, d.handleTick(msg)
	case closeMsg:
		return d, d.finish(buttons.TokenOK)
	case tea.KeyMsg:
		cmd, _ := d.HandleKey(msg)
		return d, cmd
	}
	return d, nil
}

func (d *MessageDialog) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if d.closed {
		return nil, false
	}
	return d.handleButtonKey(msg)
}

func (d *MessageDialog) View() string {
	if d.closed {
		return ""
	}
	width := d.size.Columns

	var b strings.Builder
	b.WriteString(d.renderTitle(width))
	b.WriteString("\n\n")
	b.WriteString(d.renderBody())
	if !d.set.Empty() {
		b.WriteString("\n\n")
		b.WriteString(d.renderButtons(width, true))
		b.WriteString("\n")
		b.WriteString(hint(keys.Right, keys.Activate, keys.Cancel))
	}

	box := DialogBoxStyle.Width(width + 2).Render(b.String())
	return d.place(box)
}

// renderBody draws the icon column beside the message. Segments are separated
// by a blank line.
func (d *MessageDialog) renderBody() string {
	var text []string
	for i, ls := range d.lines {
		if i > 0 {
			text = append(text, "")
		}
		text = append(text, ls...)
	}

	// Rows counts the top and bottom margins the box already draws.
	height := max(len(text), len(d.icon), d.size.Rows-4)
	textCol := lipgloss.PlaceVertical(height, lipgloss.Top, strings.Join(text, "\n"))
	if len(d.icon) == 0 {
		return textCol
	}
	iconCol := lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(d.icon, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, iconCol, strings.Repeat(" ", iconGap), textCol)
}

var _ Dialog = (*MessageDialog)(nil)

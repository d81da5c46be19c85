// Package dialog runs blocking message and input dialogs as Bubble Tea
// programs. A Controller keeps at most one dialog open at a time.
package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/i18n"
)

// Dialog is the common interface implemented by the message and input
// dialogs. The Controller runs one as a program and reads Token once the
// program has exited.
type Dialog interface {
	tea.Model

	// Title returns the caption, with the remaining countdown once it runs.
	Title() string

	// Token reports how the dialog was closed; TokenNone while it is open.
	Token() buttons.Token

	// HandleKey processes a key event. Returns the resulting command and whether
	// the key was consumed.
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool)

	// SetSize informs the dialog of the current terminal dimensions.
	SetSize(width, height int)
}

// closeMsg asks the dialog to close as if dismissed programmatically.
type closeMsg struct{}

// frame is the state shared by both dialogs: caption, button row, focus and
// countdown.
type frame struct {
	caption string
	set     buttons.Set
	labels  []string
	// focus is the index into set.Specs of the focused button, or -1.
	focus     int
	countdown countdown
	token     buttons.Token
	closed    bool
	width     int
	height    int
}

func newFrame(caption string, set buttons.Set, lang string, cd countdown) frame {
	labels := make([]string, len(set.Specs))
	for i, s := range set.Specs {
		labels[i] = i18n.Label(lang, s.Key)
	}
	return frame{
		caption:   caption,
		set:       set,
		labels:    labels,
		focus:     set.DefaultIndex(),
		countdown: cd,
	}
}

// Title returns the caption, followed by the remaining seconds once the
// countdown has ticked.
func (f *frame) Title() string {
	if !f.countdown.ticked {
		return f.caption
	}
	return strings.TrimSpace(fmt.Sprintf("%s [%d]", f.caption, f.countdown.remaining))
}

func (f *frame) Token() buttons.Token { return f.token }

func (f *frame) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// finish records the closing token and quits the program. Later calls are
// ignored so the first close wins.
func (f *frame) finish(t buttons.Token) tea.Cmd {
	if f.closed {
		return nil
	}
	f.closed = true
	f.token = t
	f.countdown.stop()
	return tea.Quit
}

func (f *frame) handleTick(msg tickMsg) tea.Cmd {
	if f.closed || !f.countdown.active || msg.ID != f.countdown.id {
		return nil
	}
	if f.countdown.step() {
		return f.finish(buttons.TokenOK)
	}
	return tea.Batch(tea.SetWindowTitle(f.Title()), f.countdown.tick())
}

// cancel triggers the cancel button, or closes with TokenCancel when the row
// has none.
func (f *frame) cancel() tea.Cmd {
	if i := f.set.CancelIndex(); i >= 0 {
		return f.finish(f.set.Specs[i].Token)
	}
	return f.finish(buttons.TokenCancel)
}

func (f *frame) activate() tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.set.Specs) {
		return nil
	}
	return f.finish(f.set.Specs[f.focus].Token)
}

// Specs run right to left, so moving right on screen lowers the index.
func (f *frame) focusRight() {
	n := len(f.set.Specs)
	if n == 0 {
		return
	}
	if f.focus < 0 {
		f.focus = n - 1
		return
	}
	f.focus = (f.focus - 1 + n) % n
}

func (f *frame) focusLeft() {
	n := len(f.set.Specs)
	if n == 0 {
		return
	}
	if f.focus < 0 {
		f.focus = 0
		return
	}
	f.focus = (f.focus + 1) % n
}

// handleButtonKey covers the keys every dialog shares once a button has focus.
func (f *frame) handleButtonKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Close):
		return f.finish(buttons.TokenCancel), true
	case key.Matches(msg, keys.Cancel):
		return f.cancel(), true
	case key.Matches(msg, keys.Next, keys.Right):
		f.focusRight()
		return nil, true
	case key.Matches(msg, keys.Prev, keys.Left):
		f.focusLeft()
		return nil, true
	case key.Matches(msg, keys.Activate):
		return f.activate(), true
	}
	return nil, false
}

func (f *frame) renderTitle(width int) string {
	return DialogTitleStyle.Render(ansi.Truncate(f.Title(), width, "…"))
}

// renderButtons lays the row out left to right, right aligned in width.
func (f *frame) renderButtons(width int, focused bool) string {
	n := len(f.set.Specs)
	if n == 0 {
		return ""
	}
	rendered := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		style := DialogButtonStyle
		if focused && i == f.focus {
			style = DialogButtonActiveStyle
		}
		rendered = append(rendered, style.Render(padLabel(f.labels[i])))
		if i > 0 {
			rendered = append(rendered, " ")
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(row)
}

// padLabel centers a caption in at least minButtonCells cells.
func padLabel(label string) string {
	w := runewidth.StringWidth(label)
	if w >= minButtonCells {
		return label
	}
	left := (minButtonCells - w) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", minButtonCells-w-left)
}

// place centers the box on the screen once its size is known.
func (f *frame) place(box string) string {
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, box)
}

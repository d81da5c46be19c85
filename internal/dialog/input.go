package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/layout"
	"github.com/sjoeboo/msgbox/internal/markup"
)

// multilineRows is the height of a multiline input field.
const multilineRows = 5

// InputDialog asks for one line or a block of text.
type InputDialog struct {
	frame

	message   markup.RichMessage
	lines     []string
	multiline bool
	input     textinput.Model
	area      textarea.Model
	// fieldFocused is true while keys go to the text field rather than the
	// buttons.
	fieldFocused bool
	value        string
	columns      int
	base         int
}

// Input dialogs always use the narrow tier.
func newInputDialog(req InputRequest, set buttons.Set, lang string, metrics layout.FontMetrics) *InputDialog {
	d := &InputDialog{
		frame:        newFrame(req.Caption, set, lang, countdown{}),
		message:      markup.Translate(req.Message),
		multiline:    req.Multiline,
		fieldFocused: true,
		base:         layout.Narrow.Columns(metrics.CellWidth),
	}
	d.focus = -1

	if d.multiline {
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 0
		ta.SetHeight(multilineRows)
		ta.SetValue(req.Value)
		ta.Focus()
		d.area = ta
	} else {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 0
		ti.SetValue(req.Value)
		ti.Focus()
		d.input = ti
	}
	d.relayout()
	return d
}

func (d *InputDialog) relayout() {
	d.columns = layout.Size{Columns: d.base}.Clamp(d.width).Columns
	d.lines = markup.Render(d.message, d.columns)
	// Leave room for the field border.
	if d.multiline {
		d.area.SetWidth(d.columns - 2)
	} else {
		d.input.Width = d.columns - 2 - len(d.input.Prompt) - 1
	}
}

func (d *InputDialog) SetSize(width, height int) {
	d.frame.SetSize(width, height)
	d.relayout()
}

// Value returns the accepted text. It is empty unless the dialog closed with
// TokenOK.
func (d *InputDialog) Value() string { return d.value }

func (d *InputDialog) fieldValue() string {
	if d.multiline {
		return d.area.Value()
	}
	return d.input.Value()
}

func (d *InputDialog) accept() tea.Cmd {
	d.value = d.fieldValue()
	return d.finish(buttons.TokenOK)
}

func (d *InputDialog) focusField(on bool) {
	d.fieldFocused = on
	switch {
	case on && d.multiline:
		d.area.Focus()
	case on:
		d.input.Focus()
	case d.multiline:
		d.area.Blur()
	default:
		d.input.Blur()
	}
}

func (d *InputDialog) Init() tea.Cmd {
	blink := textinput.Blink
	if d.multiline {
		blink = textarea.Blink
	}
	return tea.Batch(tea.SetWindowTitle(d.Title()), blink)
}

func (d *InputDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case closeMsg:
		// A dialog closed from outside was never confirmed.
		return d, d.finish(buttons.TokenNone)
	case tea.KeyMsg:
		cmd, consumed := d.HandleKey(msg)
		if consumed || d.closed {
			return d, cmd
		}
	}
	return d, d.updateField(msg)
}

func (d *InputDialog) updateField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if d.multiline {
		d.area, cmd = d.area.Update(msg)
	} else {
		d.input, cmd = d.input.Update(msg)
	}
	return cmd
}

// HandleKey moves focus between the field and the buttons. Keys it does not
// consume belong to the text field.
func (d *InputDialog) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if d.closed {
		return nil, true
	}
	if !d.fieldFocused {
		switch {
		case key.Matches(msg, keys.Next) && d.focus == 0:
			d.focus = -1
			d.focusField(true)
			return nil, true
		case key.Matches(msg, keys.Prev) && d.focus == len(d.set.Specs)-1:
			d.focus = -1
			d.focusField(true)
			return nil, true
		case key.Matches(msg, keys.Activate):
			return d.activate(), true
		}
		return d.handleButtonKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Close):
		return d.finish(buttons.TokenCancel), true
	case key.Matches(msg, keys.Cancel):
		return d.cancel(), true
	case key.Matches(msg, keys.Accept):
		return d.accept(), true
	case !d.multiline && msg.Type == tea.KeyEnter:
		return d.accept(), true
	case key.Matches(msg, keys.Next):
		d.focusField(false)
		d.focusRight()
		return nil, true
	case key.Matches(msg, keys.Prev):
		d.focusField(false)
		d.focusLeft()
		return nil, true
	}
	return nil, false
}

// activate on the OK button accepts the field text.
func (d *InputDialog) activate() tea.Cmd {
	if d.focus >= 0 && d.set.Specs[d.focus].Token == buttons.TokenOK {
		return d.accept()
	}
	return d.frame.activate()
}

func (d *InputDialog) View() string {
	if d.closed {
		return ""
	}
	var b strings.Builder
	b.WriteString(d.renderTitle(d.columns))
	b.WriteString("\n\n")
	if len(d.lines) > 0 {
		b.WriteString(strings.Join(d.lines, "\n"))
		b.WriteString("\n\n")
	}

	field := d.input.View()
	if d.multiline {
		field = d.area.View()
	}
	fieldStyle := DialogInputStyle
	if d.fieldFocused {
		fieldStyle = DialogInputFocusedStyle
	}
	b.WriteString(fieldStyle.Width(d.columns - 2).Render(field))
	b.WriteString("\n\n")
	b.WriteString(d.renderButtons(d.columns, !d.fieldFocused))
	b.WriteString("\n")
	if d.multiline {
		b.WriteString(hint(keys.Accept, keys.Next, keys.Cancel))
	} else {
		b.WriteString(hint(keys.Activate, keys.Next, keys.Cancel))
	}

	box := DialogBoxStyle.Width(d.columns + 2).Render(b.String())
	return d.place(box)
}

var _ Dialog = (*InputDialog)(nil)

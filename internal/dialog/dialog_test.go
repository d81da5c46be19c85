package dialog

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/icon"
	"github.com/sjoeboo/msgbox/internal/layout"
)

func newTestMessage(sel buttons.Selector, timeout int, lang string, message ...string) *MessageDialog {
	if len(message) == 0 {
		message = []string{"Hello"}
	}
	req := Request{Message: message, Caption: "Title", Buttons: sel, Icon: icon.None, Timeout: timeout}
	return newMessageDialog(req, buttons.Resolve(sel), lang, layout.DefaultMetrics(), newCountdown(timeout, time.Millisecond))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func press(d tea.Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := d.Update(msg)
	return cmd
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCountdown_ClosesAfterExactTicks(t *testing.T) {
	d := newTestMessage(buttons.OKCancel, 3, "en")
	tick := tickMsg{ID: d.countdown.id}

	assert.Equal(t, "Title", d.Title(), "no count before the first tick")

	_, cmd := d.Update(tick)
	assert.NotNil(t, cmd)
	assert.False(t, d.closed)
	assert.Equal(t, "Title [2]", d.Title())

	d.Update(tick)
	assert.False(t, d.closed)
	assert.Equal(t, "Title [1]", d.Title())

	_, cmd = d.Update(tick)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, buttons.TokenOK, d.Token())
	assert.Equal(t, buttons.ResultOK, d.set.ResultFor(d.Token()))

	_, cmd = d.Update(tick)
	assert.Nil(t, cmd, "ticks after close are dropped")
}

func TestCountdown_ResultIsOKWithoutOKButton(t *testing.T) {
	d := newTestMessage(buttons.YesNo, 1, "en")

	_, cmd := d.Update(tickMsg{ID: d.countdown.id})
	require.True(t, isQuit(cmd))
	assert.Equal(t, buttons.ResultOK, d.set.ResultFor(d.Token()))
}

func TestCountdown_IgnoresForeignTicks(t *testing.T) {
	d := newTestMessage(buttons.OK, 3, "en")

	_, cmd := d.Update(tickMsg{ID: d.countdown.id + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, d.countdown.remaining)
}

func TestCountdown_DisabledWithoutTimeout(t *testing.T) {
	d := newTestMessage(buttons.OK, 0, "en")
	assert.False(t, d.countdown.active)
	assert.Nil(t, d.countdown.tick())

	_, cmd := d.Update(tickMsg{ID: d.countdown.id})
	assert.Nil(t, cmd)
}

func TestMessageDialog_CloseMsgStopsCountdown(t *testing.T) {
	d := newTestMessage(buttons.OKCancel, 5, "en")
	d.Update(tickMsg{ID: d.countdown.id})
	require.Equal(t, "Title [4]", d.Title())

	_, cmd := d.Update(closeMsg{})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, buttons.TokenOK, d.Token())

	_, cmd = d.Update(tickMsg{ID: d.countdown.id})
	assert.Nil(t, cmd)
	assert.Equal(t, "Title [4]", d.Title())

	_, cmd = d.Update(closeMsg{})
	assert.Nil(t, cmd, "second close is a no-op")
}

func TestMessageDialog_Keys(t *testing.T) {
	tests := []struct {
		name string
		sel  buttons.Selector
		keys []tea.KeyMsg
		want buttons.Result
	}{
		{"enter activates default", buttons.OKCancel, []tea.KeyMsg{keyEnter}, buttons.ResultOK},
		{"space activates default", buttons.OKCancel, []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, buttons.ResultOK},
		{"esc activates cancel", buttons.OKCancel, []tea.KeyMsg{keyEsc}, buttons.ResultCancel},
		{"esc activates no", buttons.YesNo, []tea.KeyMsg{keyEsc}, buttons.ResultNo},
		{"esc without cancel button", buttons.OK, []tea.KeyMsg{keyEsc}, buttons.ResultCancel},
		{"ctrl+c closes window", buttons.YesNo, []tea.KeyMsg{keyCtrlC}, buttons.ResultCancel},
		{"right moves to no", buttons.YesNoCancel, []tea.KeyMsg{keyRight, keyEnter}, buttons.ResultNo},
		{"tab twice reaches cancel", buttons.YesNoCancel, []tea.KeyMsg{keyTab, keyTab, keyEnter}, buttons.ResultCancel},
		{"left wraps to cancel", buttons.YesNoCancel, []tea.KeyMsg{keyLeft, keyEnter}, buttons.ResultCancel},
		{"shift+tab back to yes", buttons.YesNoCancel, []tea.KeyMsg{keyTab, keyShiftTab, keyEnter}, buttons.ResultYes},
		{"retry is default", buttons.RetryIgnoreCancel, []tea.KeyMsg{keyEnter}, buttons.ResultRetry},
		{"ignore", buttons.RetryIgnoreCancel, []tea.KeyMsg{keyRight, keyEnter}, buttons.ResultIgnore},
		{"open", buttons.OpenCancel, []tea.KeyMsg{keyEnter}, buttons.ResultOpen},
		{"save", buttons.SaveCancel, []tea.KeyMsg{keyEnter}, buttons.ResultSave},
		{"close", buttons.Close, []tea.KeyMsg{keyEnter}, buttons.ResultOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestMessage(tt.sel, 0, "en")
			var cmd tea.Cmd
			for _, k := range tt.keys {
				cmd = press(d, k)
			}
			require.True(t, isQuit(cmd))
			assert.Equal(t, tt.want, d.set.ResultFor(d.Token()))
		})
	}
}

func TestMessageDialog_KeysAfterCloseIgnored(t *testing.T) {
	d := newTestMessage(buttons.OKCancel, 0, "en")
	require.True(t, isQuit(press(d, keyEnter)))

	assert.Nil(t, press(d, keyEsc))
	assert.Equal(t, buttons.TokenOK, d.Token())
}

func TestMessageDialog_View(t *testing.T) {
	d := newTestMessage(buttons.OKCancel, 0, "de", "Datei gespeichert")
	view := d.View()

	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "Datei gespeichert")
	assert.Contains(t, view, "Abbrechen")
	assert.Contains(t, view, "OK")

	press(d, keyEnter)
	assert.Empty(t, d.View(), "closed dialogs render nothing")
}

func TestMessageDialog_ViewShowsCountdown(t *testing.T) {
	d := newTestMessage(buttons.OK, 10, "en")
	d.Update(tickMsg{ID: d.countdown.id})
	assert.Contains(t, d.View(), "Title [9]")
}

func TestMessageDialog_NoButtonsNoRow(t *testing.T) {
	d := newTestMessage(buttons.None, 0, "en")
	assert.NotContains(t, d.View(), "OK")
}

func TestMessageDialog_SkipsBlankSegments(t *testing.T) {
	d := newTestMessage(buttons.OK, 0, "en", "first", "  ", "second")
	assert.Len(t, d.lines, 2)
}

func TestMessageDialog_Tier(t *testing.T) {
	d := newTestMessage(buttons.RetryIgnoreCancel, 0, "en")
	assert.Equal(t, layout.Medium, d.Size().Tier)
	assert.Equal(t, 64, d.Size().Columns)

	d = newTestMessage(buttons.OK, 0, "en")
	assert.Equal(t, layout.Narrow, d.Size().Tier)
}

func TestMessageDialog_ClampsToScreen(t *testing.T) {
	d := newTestMessage(buttons.OK, 0, "en")
	d.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Equal(t, 36, d.Size().Columns)
	assert.Equal(t, layout.Narrow, d.Size().Tier)
}

func TestMessageDialog_IconColumn(t *testing.T) {
	req := Request{Message: []string{"Saved"}, Caption: "Title", Buttons: buttons.OK, Icon: icon.Success}
	d := newMessageDialog(req, buttons.Resolve(buttons.OK), "en", layout.DefaultMetrics(), countdown{})

	require.NotEmpty(t, d.icon)
	assert.Greater(t, d.iconWidth(), iconGap)
	assert.Equal(t, 79, d.Size().ContentHeight, "short messages grow to fit the icon")
}

func newTestInput(value string, multiline bool, sel buttons.Selector) *InputDialog {
	req := InputRequest{Message: "Name?", Value: value, Caption: "Input", Multiline: multiline, Buttons: sel}
	return newInputDialog(req, buttons.ResolveInput(sel), "en", layout.DefaultMetrics())
}

func TestInputDialog_EnterAccepts(t *testing.T) {
	d := newTestInput("abc", false, buttons.OKCancel)

	require.True(t, isQuit(press(d, keyEnter)))
	assert.Equal(t, buttons.TokenOK, d.Token())
	assert.Equal(t, "abc", d.Value())
}

func TestInputDialog_Typing(t *testing.T) {
	d := newTestInput("", false, buttons.OKCancel)

	press(d, runes("h"))
	press(d, runes("i"))
	require.True(t, isQuit(press(d, keyEnter)))
	assert.Equal(t, "hi", d.Value())
}

func TestInputDialog_EmptyValueIsStillAccepted(t *testing.T) {
	d := newTestInput("", false, buttons.OK)

	require.True(t, isQuit(press(d, keyEnter)))
	assert.Equal(t, buttons.TokenOK, d.Token())
	assert.Equal(t, "", d.Value())
}

func TestInputDialog_EscCancels(t *testing.T) {
	for _, sel := range []buttons.Selector{buttons.OKCancel, buttons.OK} {
		d := newTestInput("abc", false, sel)

		require.True(t, isQuit(press(d, keyEsc)), sel.String())
		assert.NotEqual(t, buttons.TokenOK, d.Token(), sel.String())
		assert.Empty(t, d.Value(), sel.String())
	}
}

func TestInputDialog_Buttons(t *testing.T) {
	// Row is "OK Cancel"; tab leaves the field for OK first.
	d := newTestInput("abc", false, buttons.OKCancel)
	press(d, keyTab)
	assert.False(t, d.fieldFocused)
	require.True(t, isQuit(press(d, keyEnter)))
	assert.Equal(t, "abc", d.Value())

	d = newTestInput("abc", false, buttons.OKCancel)
	press(d, keyTab)
	press(d, keyTab)
	require.True(t, isQuit(press(d, keyEnter)))
	assert.Equal(t, buttons.TokenCancel, d.Token())
	assert.Empty(t, d.Value())
}

func TestInputDialog_TabCyclesBackToField(t *testing.T) {
	d := newTestInput("", false, buttons.OKCancel)
	press(d, keyTab)
	press(d, keyTab)
	press(d, keyTab)
	assert.True(t, d.fieldFocused)

	press(d, keyShiftTab)
	assert.False(t, d.fieldFocused)
	assert.Equal(t, 0, d.focus, "shift+tab from the field lands on the rightmost button")
}

func TestInputDialog_Multiline(t *testing.T) {
	d := newTestInput("line1", true, buttons.OKCancel)

	assert.False(t, isQuit(press(d, keyEnter)))
	assert.False(t, d.closed, "enter inserts a newline")
	press(d, runes("line2"))

	require.True(t, isQuit(press(d, keyCtrlS)))
	assert.Contains(t, d.Value(), "line1")
	assert.Contains(t, d.Value(), "line2")
	assert.Contains(t, d.Value(), "\n")
}

func TestInputDialog_CloseMsgIsNotConfirmation(t *testing.T) {
	d := newTestInput("abc", false, buttons.OKCancel)

	_, cmd := d.Update(closeMsg{})
	require.True(t, isQuit(cmd))
	assert.Equal(t, buttons.TokenNone, d.Token())
	assert.Empty(t, d.Value())
}

func TestInputDialog_View(t *testing.T) {
	d := newTestInput("abc", false, buttons.OKCancel)
	view := d.View()

	assert.Contains(t, view, "Input")
	assert.Contains(t, view, "Name?")
	assert.Contains(t, view, "Cancel")
}

func TestPadLabel(t *testing.T) {
	assert.Equal(t, "  OK  ", padLabel("OK"))
	assert.Equal(t, "Abbrechen", padLabel("Abbrechen"))
}

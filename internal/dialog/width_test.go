package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/sjoeboo/msgbox/internal/buttons"
)

// measureVisualWidth measures the visual width of a string (strips ANSI, measures display width)
func measureVisualWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// assertMaxWidth verifies that all lines in output respect maxWidth
func assertMaxWidth(t *testing.T, output string, maxWidth int, context string) {
	t.Helper()
	for i, line := range strings.Split(output, "\n") {
		if width := measureVisualWidth(line); width > maxWidth {
			t.Errorf("%s: line %d exceeds maxWidth %d (actual: %d)\nLine: %q",
				context, i, maxWidth, width, ansi.Strip(line))
		}
	}
}

// Border and padding add two cells on each side of the content.
const boxChrome = 4

func TestMessageDialog_ViewFitsTier(t *testing.T) {
	long := strings.Repeat("word ", 120)
	tests := []struct {
		name    string
		sel     buttons.Selector
		message []string
	}{
		{"short", buttons.OK, []string{"Hello"}},
		{"long wraps", buttons.OKCancel, []string{long}},
		{"unbreakable", buttons.YesNo, []string{strings.Repeat("x", 300)}},
		{"many buttons", buttons.RetryIgnoreCancel, []string{"Disk not ready"}},
		{"wide runes", buttons.OK, []string{strings.Repeat("日本語 ", 40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestMessage(tt.sel, 0, "en", tt.message...)
			assertMaxWidth(t, d.View(), d.Size().Columns+boxChrome, tt.name)
		})
	}
}

func TestMessageDialog_ViewFitsNarrowScreen(t *testing.T) {
	d := newTestMessage(buttons.YesNoCancel, 0, "fr", strings.Repeat("texte ", 100))
	d.Update(tea.WindowSizeMsg{Width: 50, Height: 40})

	assertMaxWidth(t, d.View(), 50, "narrow screen")
}

func TestMessageDialog_TitleTruncated(t *testing.T) {
	d := newTestMessage(buttons.OK, 0, "en")
	d.caption = strings.Repeat("Caption ", 20)

	assertMaxWidth(t, d.View(), d.Size().Columns+boxChrome, "long caption")
	assert.Contains(t, ansi.Strip(d.View()), "…")
}

func TestInputDialog_ViewFitsTier(t *testing.T) {
	for _, multiline := range []bool{false, true} {
		d := newTestInput(strings.Repeat("v", 200), multiline, buttons.OKCancel)
		assertMaxWidth(t, d.View(), d.columns+boxChrome, "input")
	}
}

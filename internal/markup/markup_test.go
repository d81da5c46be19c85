package markup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_BoldAndParagraph(t *testing.T) {
	got := string(Translate("a<b>b</b>c<p>d"))

	require.True(t, strings.HasPrefix(got, Header))
	assert.Equal(t, 1, strings.Count(got, Header))

	body := strings.TrimPrefix(got, Header)
	bOn := strings.Index(body, `\b `)
	bOff := strings.Index(body, `\b0 `)
	par := strings.Index(body, `\par `)
	require.NotEqual(t, -1, bOn)
	require.NotEqual(t, -1, bOff)
	require.NotEqual(t, -1, par)

	assert.Equal(t, bOn+len(`\b `), strings.Index(body, `b\b0`))
	assert.Equal(t, bOff+len(`\b0 `), strings.Index(body, "c"))
	assert.Equal(t, par+len(`\par `), strings.Index(body, "d"))
}

func TestTranslate_Substitutions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x<i>y</i>", `x\i y\i0 `},
		{"<u>z</u>", `\ul z\ulnone `},
		{"a<t>b", `a\tab b`},
		{"one\ntwo", `one\par two`},
		{"one\r\ntwo", `one\par two`},
		{`one\ntwo`, `one\par two`},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, Header+tt.want, string(Translate(tt.in)))
		})
	}
}

func TestTranslate_IsPure(t *testing.T) {
	in := "<b>x</b><p><i>y</i>"
	assert.Equal(t, Translate(in), Translate(in))
}

func TestBody(t *testing.T) {
	assert.Equal(t, `a\b b`, Translate("a<b>b").Body())
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "abc\nd", PlainText(Translate("a<b>b</b>c<p>d")))
	assert.Equal(t, "a    b", PlainText(Translate("a<t>b")))
	assert.Equal(t, "x y", PlainText(Translate("<u>x</u> y")))
}

func TestRender_Paragraphs(t *testing.T) {
	lines := Render(Translate("a<b>b</b>c<p>d"), 40)
	require.Len(t, lines, 2)
	assert.Equal(t, "abc", ansi.Strip(lines[0]))
	assert.Equal(t, "d", ansi.Strip(lines[1]))
}

func TestRender_WrapsAtWidth(t *testing.T) {
	msg := Translate("the quick brown fox jumps over the lazy dog")
	lines := Render(msg, 10)

	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(ansi.Strip(l)), 10, l)
	}
	var words []string
	for _, l := range lines {
		words = append(words, strings.Fields(ansi.Strip(l))...)
	}
	assert.Equal(t, strings.Fields("the quick brown fox jumps over the lazy dog"), words)
}

func TestRender_HardBreaksLongWords(t *testing.T) {
	lines := Render(Translate(strings.Repeat("x", 25)), 10)
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("x", 10), ansi.Strip(lines[0]))
	assert.Equal(t, strings.Repeat("x", 5), ansi.Strip(lines[2]))
}

func TestRender_EmptyParagraph(t *testing.T) {
	lines := Render(Translate("a<p><p>b"), 10)
	require.Len(t, lines, 3)
	assert.Equal(t, "", ansi.Strip(lines[1]))
}

func TestRender_Link(t *testing.T) {
	lines := Render(Translate("see https://example.com/docs"), 60)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "https://example.com/docs")
}

func TestRender_UnknownControlWordsAreDropped(t *testing.T) {
	lines := Render(RichMessage(Header+`\fs20 big`), 20)
	require.Len(t, lines, 1)
	assert.Equal(t, "big", ansi.Strip(lines[0]))
}

package markup

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// TabWidth is the number of cells a \tab occupies.
const TabWidth = 4

var linkPattern = regexp.MustCompile(`^https?://[^\s]+$`)

type style struct {
	bold, italic, underline bool
}

type fragment struct {
	text string
	st   style
}

// word is a run of non-space text that may change style midway ("a<b>b</b>c").
type word struct {
	frags []fragment
	// gap is the number of blank cells before the word.
	gap int
}

func (w word) plain() string {
	var sb strings.Builder
	for _, f := range w.frags {
		sb.WriteString(f.text)
	}
	return sb.String()
}

func (w word) width() int { return runewidth.StringWidth(w.plain()) }

// paragraph is a list of words; a paragraph break starts a new one.
type paragraph []word

// parse reads the payload body into paragraphs of styled words.
func parse(body string) []paragraph {
	var (
		paras   []paragraph
		cur     paragraph
		st      style
		text    strings.Builder
		frags   []fragment
		pending int // blank cells waiting in front of the next word
	)
	flushFrag := func() {
		if text.Len() > 0 {
			frags = append(frags, fragment{text: text.String(), st: st})
			text.Reset()
		}
	}
	flushWord := func() {
		flushFrag()
		if len(frags) > 0 {
			cur = append(cur, word{frags: frags, gap: pending})
			frags = nil
			pending = 0
		}
	}
	endParagraph := func() {
		flushWord()
		paras = append(paras, cur)
		cur = nil
		pending = 0
	}

	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			j := i + 1
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			name := string(runes[i+1 : j])
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '-') {
				j++
			}
			ctl := string(runes[i+1 : j])
			// A single space terminates a control word and is consumed by it.
			if j < len(runes) && runes[j] == ' ' {
				j++
			}
			i = j - 1

			switch {
			case name == "par":
				endParagraph()
				continue
			case name == "tab":
				flushWord()
				pending += TabWidth
				continue
			}
			flushFrag()
			switch ctl {
			case "b":
				st.bold = true
			case "b0":
				st.bold = false
			case "i":
				st.italic = true
			case "i0":
				st.italic = false
			case "ul":
				st.underline = true
			case "ulnone", "ul0":
				st.underline = false
			}
			continue
		}
		if r == ' ' {
			flushWord()
			pending++
			continue
		}
		if r == '\r' || r == '\n' {
			continue
		}
		text.WriteRune(r)
	}
	endParagraph()
	return paras
}

// Render lays the payload out in lines no wider than width cells. Bold,
// italic and underline are applied with lipgloss; http(s) links are
// underlined and, when the terminal supports styling, emitted as hyperlinks.
func Render(msg RichMessage, width int) []string {
	if width <= 0 {
		width = 1
	}
	var lines []string
	for _, p := range parse(msg.Body()) {
		lines = append(lines, wrap(p, width)...)
	}
	return lines
}

// PlainText returns the payload's text without styling, one paragraph per
// line.
func PlainText(msg RichMessage) string {
	var out []string
	for _, p := range parse(msg.Body()) {
		var sb strings.Builder
		for _, w := range p {
			sb.WriteString(strings.Repeat(" ", w.gap))
			sb.WriteString(w.plain())
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func wrap(p paragraph, width int) []string {
	var (
		lines []string
		line  strings.Builder
		used  int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	for _, w := range p {
		ww := w.width()
		gap := w.gap
		if used == 0 {
			gap = min(gap, width-1)
			if len(lines) > 0 {
				// Leading blanks are dropped on continuation lines.
				gap = 0
			}
		}
		if used > 0 && used+gap+ww > width {
			flush()
			gap = 0
		}
		if gap+ww > width-used {
			// Longer than a whole line: hard-break it.
			line.WriteString(strings.Repeat(" ", gap))
			used += gap
			for _, piece := range split(w, width-used, width) {
				if used > 0 && used+piece.width() > width {
					flush()
				}
				line.WriteString(renderWord(piece))
				used += piece.width()
			}
			continue
		}
		line.WriteString(strings.Repeat(" ", gap))
		line.WriteString(renderWord(w))
		used += gap + ww
	}
	if used > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// split cuts a word into pieces; the first piece fits in first cells, the
// rest in width cells each.
func split(w word, first, width int) []word {
	if first <= 0 {
		first = width
	}
	var (
		pieces []word
		cur    word
		used   int
		limit  = first
	)
	for _, f := range w.frags {
		var sb strings.Builder
		for _, r := range f.text {
			rw := runewidth.RuneWidth(r)
			if used+rw > limit && used > 0 {
				if sb.Len() > 0 {
					cur.frags = append(cur.frags, fragment{text: sb.String(), st: f.st})
					sb.Reset()
				}
				pieces = append(pieces, cur)
				cur = word{}
				used = 0
				limit = width
			}
			sb.WriteRune(r)
			used += rw
		}
		if sb.Len() > 0 {
			cur.frags = append(cur.frags, fragment{text: sb.String(), st: f.st})
		}
	}
	if len(cur.frags) > 0 {
		pieces = append(pieces, cur)
	}
	return pieces
}

func renderWord(w word) string {
	plain := w.plain()
	if linkPattern.MatchString(plain) {
		s := lipgloss.NewStyle().Underline(true).Render(plain)
		if lipgloss.ColorProfile() == termenv.Ascii {
			return s
		}
		return termenv.Hyperlink(plain, s)
	}
	var sb strings.Builder
	for _, f := range w.frags {
		sb.WriteString(styleFor(f.st).Render(f.text))
	}
	return sb.String()
}

func styleFor(st style) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(st.bold).
		Italic(st.italic).
		Underline(st.underline)
}

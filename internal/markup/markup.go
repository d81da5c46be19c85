// Package markup translates the lightweight message markup into a rich text
// payload and renders that payload as styled terminal lines.
//
// Supported tags: <b>, <i>, <u> (with closing tags), <p> for a paragraph
// break, <t> for a tab, and a newline (real or the two characters `\n`) for a
// paragraph break. Nothing else is escaped: a message that already contains
// control words keeps them, so messages must not come from untrusted input.
package markup

import "strings"

// Header opens every rich text payload.
const Header = "{\\rtf1\\ansi\\ansicpg1252\n"

// RichMessage is a rich text payload produced by Translate.
type RichMessage string

var replacer = strings.NewReplacer(
	"\r\n", `\par `,
	"\n", `\par `,
	`\n`, `\par `,
	"<p>", `\par `,
	"<t>", `\tab `,
	"<b>", `\b `,
	"</b>", `\b0 `,
	"<i>", `\i `,
	"</i>", `\i0 `,
	"<u>", `\ul `,
	"</u>", `\ulnone `,
)

// Translate converts one message segment to a rich text payload.
func Translate(segment string) RichMessage {
	return RichMessage(Header + replacer.Replace(segment))
}

// Body returns the payload without its header.
func (m RichMessage) Body() string {
	return strings.TrimPrefix(string(m), Header)
}

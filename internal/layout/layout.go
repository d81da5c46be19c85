// Package layout picks a dialog's width tier and content height from the
// message, the font metrics and the button set.
package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sjoeboo/msgbox/internal/buttons"
)

// Tier is a dialog width in logical pixels.
type Tier int

const (
	Narrow    Tier = 350
	Medium    Tier = 450
	Wide      Tier = 550
	ExtraWide Tier = 650
)

func (t Tier) String() string {
	switch t {
	case Narrow:
		return "narrow"
	case Medium:
		return "medium"
	case Wide:
		return "wide"
	case ExtraWide:
		return "extra-wide"
	}
	return "custom"
}

// FontMetrics describes the dialog font. LineHeight is in logical pixels,
// CellWidth is the pixel width of one terminal cell.
type FontMetrics struct {
	LineHeight int
	CellWidth  int
}

// DefaultMetrics matches the platform message box font (9pt, 15px lines).
func DefaultMetrics() FontMetrics {
	return FontMetrics{LineHeight: 15, CellWidth: 7}
}

func (m FontMetrics) normalized() FontMetrics {
	d := DefaultMetrics()
	if m.LineHeight <= 0 {
		m.LineHeight = d.LineHeight
	}
	if m.CellWidth <= 0 {
		m.CellWidth = d.CellWidth
	}
	return m
}

// Columns converts the tier to terminal columns.
func (t Tier) Columns(cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultMetrics().CellWidth
	}
	return int(t) / cellWidth
}

// MessageLength is the length of all segments joined together. Blank
// segments count even though they are not displayed.
func MessageLength(segments []string) int {
	return utf8.RuneCountInString(strings.Join(segments, ""))
}

// TierFor returns the width tier. Each threshold can only raise the tier.
func TierFor(length, lineHeight int, sel buttons.Selector) Tier {
	tier := Narrow
	raise := func(t Tier) {
		if t > tier {
			tier = t
		}
	}
	if length > 250 || lineHeight >= 18 || sel == buttons.RetryIgnoreCancel {
		raise(Medium)
	}
	if length > 500 || lineHeight >= 20 {
		raise(Wide)
	}
	if length > 750 || lineHeight >= 22 {
		raise(ExtraWide)
	}
	return tier
}

// ContentHeight returns the pixel height of the message area: a top margin of
// two lines, each displayed segment plus half a line of spacing, and a bottom
// margin of one and a half lines. With an icon the area is at least tall
// enough to center it.
func ContentHeight(lineCounts []int, lineHeight int, hasIcon bool) int {
	h := float64(lineHeight)
	top := lineHeight * 2
	for _, n := range lineCounts {
		top += n*lineHeight + lineHeight/2
	}
	top += int(h * 1.5)
	if hasIcon && float64(top) < 5.5*h {
		top = int(5.3 * h)
	}
	return top
}

// Size is the resolved geometry of one dialog.
type Size struct {
	Tier    Tier
	Columns int
	// ContentHeight is in pixels; Rows is the same height in text rows.
	ContentHeight int
	Rows          int
}

// Resolve picks the tier for a message. The content height is filled in by
// Measure once the message has been wrapped to Columns.
func Resolve(segments []string, m FontMetrics, sel buttons.Selector) Size {
	m = m.normalized()
	tier := TierFor(MessageLength(segments), m.LineHeight, sel)
	return Size{Tier: tier, Columns: tier.Columns(m.CellWidth)}
}

// Measure returns a copy of s with the content height computed from the
// number of wrapped lines of each displayed segment.
func (s Size) Measure(lineCounts []int, m FontMetrics, hasIcon bool) Size {
	m = m.normalized()
	s.ContentHeight = ContentHeight(lineCounts, m.LineHeight, hasIcon)
	s.Rows = int(math.Ceil(float64(s.ContentHeight) / float64(m.LineHeight)))
	return s
}

// Clamp narrows the size to fit a screen of the given width, keeping room for
// a border and padding. Zero means the screen width is unknown.
func (s Size) Clamp(screenWidth int) Size {
	const chrome = 4
	if screenWidth > 0 && s.Columns > screenWidth-chrome {
		s.Columns = max(screenWidth-chrome, 20)
	}
	return s
}

// Package icon holds the dialog icons: small embedded bitmaps decoded once and
// drawn with half-block characters.
package icon

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//go:embed assets/*.png
var assets embed.FS

// Kind selects an icon.
type Kind int

const (
	Information Kind = iota
	Success
	Warning
	Error
	None
)

var kindNames = [...]string{"Information", "Success", "Warning", "Error", "None"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindNames returns the names of all icon kinds.
func KindNames() []string {
	return append([]string(nil), kindNames[:]...)
}

// ParseKind looks an icon kind up by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("unknown icon %q", name)
}

var files = map[Kind]string{
	Information: "assets/information.png",
	Success:     "assets/success.png",
	Warning:     "assets/warning.png",
	Error:       "assets/error.png",
}

// glyphs stand in for the bitmaps on terminals without color.
var glyphs = map[Kind]string{
	Information: "(i)",
	Success:     "(v)",
	Warning:     "/!\\",
	Error:       "(x)",
}

var (
	decodeOnce sync.Once
	bitmaps    map[Kind]image.Image
)

// decodeAll decodes every embedded icon. The icons are part of the binary, so
// a decode failure is a build defect and panics.
func decodeAll() {
	bitmaps = make(map[Kind]image.Image, len(files))
	for k, name := range files {
		data, err := assets.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("icon: read %s: %v", name, err))
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			panic(fmt.Sprintf("icon: decode %s: %v", name, err))
		}
		bitmaps[k] = img
	}
}

// Bitmap returns the decoded image for k. None and unknown kinds have no
// bitmap. The returned image is shared and must not be modified.
func Bitmap(k Kind) (image.Image, bool) {
	decodeOnce.Do(decodeAll)
	img, ok := bitmaps[k]
	return img, ok
}

// Render draws the icon as terminal lines, or returns nil when k has no icon.
func Render(k Kind) []string {
	img, ok := Bitmap(k)
	if !ok {
		return nil
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		return []string{glyphs[k]}
	}
	return renderBlocks(img)
}

// renderBlocks packs two pixel rows into one text row using upper half
// blocks: foreground is the upper pixel, background the lower one.
func renderBlocks(img image.Image) []string {
	b := img.Bounds()
	var lines []string
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := pixel(img.At(x, y))
			var bottom string
			bottomOK := false
			if y+1 < b.Max.Y {
				bottom, bottomOK = pixel(img.At(x, y+1))
			}
			switch {
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom)).
					Render("▀"))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render("▀"))
			case bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄"))
			default:
				sb.WriteString(" ")
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// pixel returns the hex color of c, or false when c is mostly transparent.
func pixel(c color.Color) (string, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 128 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), true
}

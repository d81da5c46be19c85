package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// parseColorProfile maps a configured profile name; ok is false for empty or
// unknown names.
func parseColorProfile(name string) (termenv.Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "truecolor", "true", "24bit":
		return termenv.TrueColor, true
	case "256", "ansi256":
		return termenv.ANSI256, true
	case "16", "ansi", "basic":
		return termenv.ANSI, true
	case "none", "off", "ascii":
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}

// detectColorProfile prefers TrueColor: most modern terminals support it even
// if not advertised.
func detectColorProfile(getenv func(string) string) termenv.Profile {
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	colorTerm := getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return termenv.TrueColor
	}

	term := getenv("TERM")
	if term == "dumb" {
		return termenv.Ascii
	}
	trueColorTerms := []string{
		"xterm-256color",
		"screen-256color",
		"tmux-256color",
		"xterm-direct",
		"alacritty",
		"kitty",
		"wezterm",
	}
	for _, t := range trueColorTerms {
		if strings.Contains(term, t) {
			return termenv.TrueColor
		}
	}

	if getenv("WT_SESSION") != "" || // Windows Terminal
		getenv("ITERM_SESSION_ID") != "" || // iTerm2
		getenv("TERMINAL_EMULATOR") != "" || // JetBrains terminals
		getenv("KONSOLE_VERSION") != "" { // Konsole
		return termenv.TrueColor
	}

	// ANSI256 works in SSH, basic terminals and older emulators
	return termenv.ANSI256
}

// initColorProfile applies the configured profile, or the detected one, to
// both lipgloss and the CLI's own messages.
func initColorProfile(setting string, getenv func(string) string) termenv.Profile {
	p, ok := parseColorProfile(setting)
	if !ok {
		p = detectColorProfile(getenv)
	}
	lipgloss.SetColorProfile(p)
	color.NoColor = p == termenv.Ascii
	return p
}

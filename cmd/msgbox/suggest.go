package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/icon"
)

// suggest returns the closest of names to input, or "" when nothing matches.
func suggest(input string, names []string) string {
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}
	matches := fuzzy.Find(strings.ToLower(input), lowered)
	if len(matches) == 0 {
		return ""
	}
	return names[matches[0].Index]
}

func unknownName(kind, input string, names []string) error {
	if s := suggest(input, names); s != "" {
		return fmt.Errorf("unknown %s %q (did you mean %s?)", kind, input, s)
	}
	return fmt.Errorf("unknown %s %q (valid: %s)", kind, input, strings.Join(names, ", "))
}

func parseButtons(name string) (buttons.Selector, error) {
	sel, err := buttons.ParseSelector(name)
	if err != nil {
		return buttons.None, unknownName("buttons", name, buttons.SelectorNames())
	}
	return sel, nil
}

func parseIcon(name string) (icon.Kind, error) {
	k, err := icon.ParseKind(name)
	if err != nil {
		return icon.None, unknownName("icon", name, icon.KindNames())
	}
	return k, nil
}

// Package buttons resolves a button selector into the ordered, role-assigned
// set of buttons a dialog shows, and maps the raw token a closed dialog
// reports back to a Result.
//
// Selector names are composites of the button keys they produce
// ("RetryIgnoreCancel" yields Cancel, Ignore and Retry). The resolution table
// is written out explicitly, but it must keep matching that naming
// convention: TestTableMatchesSelectorNames fails when a selector's buttons
// drift from the keys contained in its name.
package buttons

import (
	"fmt"
	"strings"
)

// Selector names a combination of buttons.
type Selector int

const (
	OK Selector = iota
	OKCancel
	RetryIgnoreCancel
	RetryCancel
	YesNo
	YesNoCancel
	Open
	OpenCancel
	Save
	SaveCancel
	Close
	None
)

var selectorNames = [...]string{
	OK:                "OK",
	OKCancel:          "OKCancel",
	RetryIgnoreCancel: "RetryIgnoreCancel",
	RetryCancel:       "RetryCancel",
	YesNo:             "YesNo",
	YesNoCancel:       "YesNoCancel",
	Open:              "Open",
	OpenCancel:        "OpenCancel",
	Save:              "Save",
	SaveCancel:        "SaveCancel",
	Close:             "Close",
	None:              "None",
}

func (s Selector) String() string {
	if s < 0 || int(s) >= len(selectorNames) {
		return fmt.Sprintf("Selector(%d)", int(s))
	}
	return selectorNames[s]
}

// Selectors returns every known selector in declaration order.
func Selectors() []Selector {
	out := make([]Selector, len(selectorNames))
	for i := range selectorNames {
		out[i] = Selector(i)
	}
	return out
}

// SelectorNames returns the names of all selectors, for help text and
// suggestions.
func SelectorNames() []string {
	return append([]string(nil), selectorNames[:]...)
}

// ParseSelector looks a selector up by name, ignoring case.
func ParseSelector(name string) (Selector, error) {
	for i, n := range selectorNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Selector(i), nil
		}
	}
	return None, fmt.Errorf("unknown button set %q", name)
}

// Key is the label key of a button. Keys double as the English caption and
// as the lookup key for localized captions.
type Key string

const (
	KeyOK     Key = "OK"
	KeyCancel Key = "Cancel"
	KeyRetry  Key = "Retry"
	KeyIgnore Key = "Ignore"
	KeyYes    Key = "Yes"
	KeyNo     Key = "No"
	KeyOpen   Key = "Open"
	KeySave   Key = "Save"
	KeyClose  Key = "Close"
)

// Spec is one resolved button.
type Spec struct {
	Key   Key
	Token Token
	// Default marks the Enter target.
	Default bool
	// Cancel marks the Escape / window-close target.
	Cancel bool
}

// Set is the resolved button row. Specs are ordered right to left: the first
// spec sits at the right edge of the row.
type Set struct {
	Specs []Spec
	// Open records whether TokenAbort means Open (true) or Save (false).
	Open bool
}

// Empty reports whether the set has no buttons, i.e. the dialog is
// non-interactive and can only be closed remotely.
func (s Set) Empty() bool { return len(s.Specs) == 0 }

// DefaultIndex returns the index of the default button, or -1.
func (s Set) DefaultIndex() int {
	for i, b := range s.Specs {
		if b.Default {
			return i
		}
	}
	return -1
}

// CancelIndex returns the index of the cancel button, or -1.
func (s Set) CancelIndex() int {
	for i, b := range s.Specs {
		if b.Cancel {
			return i
		}
	}
	return -1
}

// table lists each selector's keys in resolution order. The order is the fixed
// priority Cancel, Ignore, Retry, No, Yes, Close, OK, Open, Save regardless of
// the order the keys appear in the selector name.
var table = map[Selector][]Key{
	OK:                {KeyOK},
	OKCancel:          {KeyCancel, KeyOK},
	RetryIgnoreCancel: {KeyCancel, KeyIgnore, KeyRetry},
	RetryCancel:       {KeyCancel, KeyRetry},
	YesNo:             {KeyNo, KeyYes},
	YesNoCancel:       {KeyCancel, KeyNo, KeyYes},
	Open:              {KeyOpen},
	OpenCancel:        {KeyCancel, KeyOpen},
	Save:              {KeySave},
	SaveCancel:        {KeyCancel, KeySave},
	Close:             {KeyClose},
	None:              nil,
}

var tokens = map[Key]Token{
	KeyCancel: TokenCancel,
	KeyIgnore: TokenIgnore,
	KeyRetry:  TokenRetry,
	KeyNo:     TokenNo,
	KeyYes:    TokenYes,
	KeyClose:  TokenOK,
	KeyOK:     TokenOK,
	KeyOpen:   TokenAbort,
	KeySave:   TokenAbort,
}

func isDefaultCandidate(k Key) bool {
	switch k {
	case KeyRetry, KeyYes, KeyClose, KeyOK, KeyOpen, KeySave:
		return true
	}
	return false
}

// No doubles as the escape target when the row has no Cancel button.
func isCancelCandidate(k Key) bool {
	return k == KeyCancel || k == KeyNo
}

// Resolve returns the button set for a selector. Unknown selectors and None
// resolve to an empty set.
func Resolve(sel Selector) Set {
	return build(table[sel])
}

func build(keys []Key) Set {
	var set Set
	hasDefault, hasCancel := false, false
	for _, k := range keys {
		spec := Spec{Key: k, Token: tokens[k]}
		if !hasCancel && isCancelCandidate(k) {
			spec.Cancel = true
			hasCancel = true
		}
		if !hasDefault && isDefaultCandidate(k) {
			spec.Default = true
			hasDefault = true
		}
		if k == KeyOpen {
			set.Open = true
		}
		set.Specs = append(set.Specs, spec)
	}
	return set
}

// ResolveInput returns the buttons of an input dialog: OK always, preceded by
// Cancel when the selector offers one.
func ResolveInput(sel Selector) Set {
	keys := []Key{KeyOK}
	if HasKey(sel, KeyCancel) {
		keys = []Key{KeyCancel, KeyOK}
	}
	return build(keys)
}

// HasKey reports whether the selector produces a button with the given key.
func HasKey(sel Selector, k Key) bool {
	for _, have := range table[sel] {
		if have == k {
			return true
		}
	}
	return false
}

// ResultFor maps a raw token reported by a closed dialog to a Result.
// Unrecognized tokens map to ResultOK.
func (s Set) ResultFor(t Token) Result {
	switch t {
	case TokenCancel:
		return ResultCancel
	case TokenIgnore:
		return ResultIgnore
	case TokenRetry:
		return ResultRetry
	case TokenYes:
		return ResultYes
	case TokenNo:
		return ResultNo
	case TokenAbort:
		if s.Open {
			return ResultOpen
		}
		return ResultSave
	default:
		return ResultOK
	}
}

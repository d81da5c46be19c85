package buttons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(set Set) []Key {
	var out []Key
	for _, s := range set.Specs {
		out = append(out, s.Key)
	}
	return out
}

func TestResolve_RetryIgnoreCancel(t *testing.T) {
	set := Resolve(RetryIgnoreCancel)

	require.Equal(t, []Key{KeyCancel, KeyIgnore, KeyRetry}, keysOf(set))
	assert.True(t, set.Specs[0].Cancel)
	assert.False(t, set.Specs[0].Default)
	assert.False(t, set.Specs[1].Default)
	assert.False(t, set.Specs[1].Cancel)
	assert.True(t, set.Specs[2].Default)
	assert.Equal(t, 2, set.DefaultIndex())
	assert.Equal(t, 0, set.CancelIndex())
}

func TestResolve_YesNoCancel(t *testing.T) {
	set := Resolve(YesNoCancel)

	require.Equal(t, []Key{KeyCancel, KeyNo, KeyYes}, keysOf(set))
	assert.True(t, set.Specs[0].Cancel)
	assert.False(t, set.Specs[1].Cancel, "No must not steal the cancel role from Cancel")
	assert.True(t, set.Specs[2].Default)
}

func TestResolve_YesNoUsesNoAsCancel(t *testing.T) {
	set := Resolve(YesNo)

	require.Equal(t, []Key{KeyNo, KeyYes}, keysOf(set))
	assert.Equal(t, 0, set.CancelIndex())
	assert.Equal(t, 1, set.DefaultIndex())
}

func TestResolve_None(t *testing.T) {
	set := Resolve(None)
	assert.True(t, set.Empty())
	assert.Equal(t, -1, set.DefaultIndex())
	assert.Equal(t, -1, set.CancelIndex())
}

func TestResolve_UnknownSelectorIsEmpty(t *testing.T) {
	assert.True(t, Resolve(Selector(99)).Empty())
}

func TestResolve_RolesAreUnique(t *testing.T) {
	for _, sel := range Selectors() {
		set := Resolve(sel)
		defaults, cancels := 0, 0
		for _, s := range set.Specs {
			if s.Default {
				defaults++
			}
			if s.Cancel {
				cancels++
			}
		}
		assert.LessOrEqual(t, defaults, 1, sel.String())
		assert.LessOrEqual(t, cancels, 1, sel.String())
		if !set.Empty() {
			assert.Equal(t, 1, defaults, "%s should have a default button", sel)
		}
	}
}

// The explicit table must agree with the naming convention the selectors
// follow: every key contained in the name, tested in priority order.
func TestTableMatchesSelectorNames(t *testing.T) {
	priority := []Key{KeyCancel, KeyIgnore, KeyRetry, KeyNo, KeyYes, KeyClose, KeyOK, KeyOpen, KeySave}

	for _, sel := range Selectors() {
		if sel == None {
			// "None" contains "No"; it is special-cased as the empty row.
			continue
		}
		var want []Key
		for _, k := range priority {
			if strings.Contains(sel.String(), string(k)) {
				want = append(want, k)
			}
		}
		assert.Equal(t, want, keysOf(Resolve(sel)), sel.String())
	}
}

func TestResultFor_OpenAndSaveShareToken(t *testing.T) {
	open := Resolve(OpenCancel)
	save := Resolve(SaveCancel)

	assert.True(t, open.Open)
	assert.False(t, save.Open)
	assert.Equal(t, TokenAbort, open.Specs[1].Token)
	assert.Equal(t, TokenAbort, save.Specs[1].Token)
	assert.Equal(t, ResultOpen, open.ResultFor(TokenAbort))
	assert.Equal(t, ResultSave, save.ResultFor(TokenAbort))
}

func TestResultFor(t *testing.T) {
	set := Resolve(RetryIgnoreCancel)
	tests := []struct {
		token Token
		want  Result
	}{
		{TokenOK, ResultOK},
		{TokenCancel, ResultCancel},
		{TokenRetry, ResultRetry},
		{TokenIgnore, ResultIgnore},
		{TokenYes, ResultYes},
		{TokenNo, ResultNo},
		{TokenNone, ResultOK},
		{Token(42), ResultOK},
	}
	for _, tt := range tests {
		t.Run(tt.token.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, set.ResultFor(tt.token))
		})
	}
}

func TestCloseButtonReportsOK(t *testing.T) {
	set := Resolve(Close)
	require.Len(t, set.Specs, 1)
	assert.Equal(t, ResultOK, set.ResultFor(set.Specs[0].Token))
}

func TestResolveInput(t *testing.T) {
	assert.Equal(t, []Key{KeyOK}, keysOf(ResolveInput(OK)))
	assert.Equal(t, []Key{KeyOK}, keysOf(ResolveInput(YesNo)))

	set := ResolveInput(OKCancel)
	assert.Equal(t, []Key{KeyCancel, KeyOK}, keysOf(set))
	assert.True(t, set.Specs[0].Cancel)
	assert.True(t, set.Specs[1].Default)
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("yesnocancel")
	require.NoError(t, err)
	assert.Equal(t, YesNoCancel, sel)

	_, err = ParseSelector("maybe")
	assert.Error(t, err)
}

func TestResultNegative(t *testing.T) {
	assert.True(t, ResultCancel.Negative())
	assert.True(t, ResultNo.Negative())
	assert.False(t, ResultOK.Negative())
	assert.False(t, ResultNone.Negative())
}

package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeep_WritesBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBeeper(&buf)

	assert.True(t, b.Beep())
	assert.Equal(t, "\a", buf.String())
}

func TestBeep_RateLimited(t *testing.T) {
	var buf bytes.Buffer
	b := NewBeeper(&buf)

	assert.True(t, b.Beep())
	assert.False(t, b.Beep())
	assert.Equal(t, "\a", buf.String())
}

func TestBeep_NilIsSilent(t *testing.T) {
	var b *Beeper
	assert.False(t, b.Beep())
	assert.False(t, NewBeeper(nil).Beep())
}

// Package sound plays the notification bell for newly shown dialogs.
package sound

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/sjoeboo/msgbox/internal/logging"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// MinInterval is the shortest gap between two bells; dialogs replaced in
// quick succession ring only once.
const MinInterval = 500 * time.Millisecond

// Beeper rings the terminal bell, rate limited.
type Beeper struct {
	mu      sync.Mutex
	out     io.Writer
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewBeeper returns a Beeper writing to out (usually the terminal's stderr,
// so stdout stays clean for results).
func NewBeeper(out io.Writer) *Beeper {
	return &Beeper{
		out:     out,
		limiter: rate.NewLimiter(rate.Every(MinInterval), 1),
		log:     logging.ForComponent(logging.CompSound),
	}
}

// Beep rings the bell unless one rang within MinInterval. It reports whether
// the bell was written.
func (b *Beeper) Beep() bool {
	if b == nil || b.out == nil {
		return false
	}
	if !b.limiter.Allow() {
		b.log.Debug("beep_suppressed")
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.out, bell); err != nil {
		b.log.Warn("beep_failed", slog.String("err", err.Error()))
		return false
	}
	return true
}

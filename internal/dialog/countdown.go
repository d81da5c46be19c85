package dialog

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is the countdown step.
const DefaultTickInterval = time.Second

var lastCountdownID atomic.Int64

// tickMsg is one countdown step. ID ties it to the countdown that scheduled
// it, so ticks outliving their dialog are dropped.
type tickMsg struct {
	ID int64
}

// countdown auto-closes a dialog after a number of ticks.
type countdown struct {
	id        int64
	remaining int
	active    bool
	ticked    bool
	interval  time.Duration
}

func newCountdown(seconds int, interval time.Duration) countdown {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return countdown{
		id:        lastCountdownID.Add(1),
		remaining: seconds,
		active:    seconds > 0,
		interval:  interval,
	}
}

func (c countdown) tick() tea.Cmd {
	if !c.active {
		return nil
	}
	id := c.id
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return tickMsg{ID: id}
	})
}

// step consumes one tick and reports whether the countdown ran out.
func (c *countdown) step() (expired bool) {
	c.remaining--
	c.ticked = true
	return c.remaining <= 0
}

func (c *countdown) stop() { c.active = false }

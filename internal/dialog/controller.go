package dialog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/config"
	"github.com/sjoeboo/msgbox/internal/icon"
	"github.com/sjoeboo/msgbox/internal/logging"
	"github.com/sjoeboo/msgbox/internal/sound"
)

// Request describes a message dialog.
type Request struct {
	// Message segments are shown in order; blank segments are skipped but
	// still count toward the width tier.
	Message []string
	Caption string
	Buttons buttons.Selector
	Icon    icon.Kind
	// Timeout in seconds; zero or less disables auto-close.
	Timeout int
}

// InputRequest describes an input dialog. Only Cancel in Buttons is
// significant; OK is always present.
type InputRequest struct {
	Message   string
	Value     string
	Caption   string
	Multiline bool
	Buttons   buttons.Selector
}

// handle is the open dialog.
type handle struct {
	program *tea.Program
	done    chan struct{}
	caption string
}

// Controller shows dialogs one at a time. Showing a dialog while another is
// open closes the earlier one first.
type Controller struct {
	mu       sync.Mutex
	active   *handle
	settings config.Settings

	programOpts  []tea.ProgramOption
	tickInterval time.Duration
	beeper       *sound.Beeper
	log          *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithProgramOptions appends Bubble Tea program options, e.g. to redirect
// input and output.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(c *Controller) { c.programOpts = append(c.programOpts, opts...) }
}

// WithTickInterval sets the countdown step (default one second).
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.tickInterval = d }
}

// WithBeeper replaces the bell. A nil Beeper is silent.
func WithBeeper(b *sound.Beeper) Option {
	return func(c *Controller) { c.beeper = b }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New returns an idle Controller.
func New(settings config.Settings, opts ...Option) *Controller {
	c := &Controller{
		settings:     settings,
		tickInterval: DefaultTickInterval,
		beeper:       sound.NewBeeper(os.Stderr),
		log:          logging.ForComponent(logging.CompDialog),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSettings replaces the settings used by dialogs shown from now on.
func (c *Controller) SetSettings(s config.Settings) {
	c.mu.Lock()
	c.settings = s
	c.mu.Unlock()
	c.log.Info("settings_updated", slog.String("language", s.Language), slog.Bool("beep", s.BeepOnShow))
}

// Settings returns the current settings.
func (c *Controller) Settings() config.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// IsOpen reports whether a dialog is currently shown.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

// Done returns a channel closed once the open dialog has gone away. It is
// already closed when no dialog is open.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return c.active.done
}

// Close dismisses the open dialog as if OK had been chosen and waits for it
// to tear down. It does nothing when no dialog is open.
func (c *Controller) Close() {
	c.mu.Lock()
	h := c.active
	c.active = nil
	c.mu.Unlock()
	if h == nil {
		return
	}
	c.log.Info("dialog_force_closed", slog.String("caption", h.caption))
	h.program.Send(closeMsg{})
	<-h.done
}

// Show displays a message dialog and blocks until it closes. With
// buttons.None it returns ResultNone at once and the dialog stays up until
// Close or the next Show.
func (c *Controller) Show(req Request) (buttons.Result, error) {
	s := c.Settings()
	set := buttons.Resolve(req.Buttons)
	d := newMessageDialog(req, set, s.Language, s.Metrics(), newCountdown(req.Timeout, c.tickInterval))

	h := c.open(d, req.Caption, s)
	c.log.Info("dialog_shown",
		slog.String("kind", "message"),
		slog.String("buttons", req.Buttons.String()),
		slog.String("icon", req.Icon.String()),
		slog.String("tier", d.Size().Tier.String()),
		slog.Int("timeout", req.Timeout))

	if set.Empty() {
		go func() {
			if _, err := c.run(h); err != nil {
				c.log.Error("dialog_failed", slog.String("err", err.Error()))
			}
		}()
		return buttons.ResultNone, nil
	}

	if _, err := c.run(h); err != nil {
		return buttons.ResultCancel, fmt.Errorf("run message dialog: %w", err)
	}
	result := set.ResultFor(d.Token())
	c.log.Info("dialog_closed", slog.String("token", d.Token().String()), slog.String("result", result.String()))
	return result, nil
}

// Input displays an input dialog and blocks until it closes. ok is false
// when the dialog was cancelled or closed without confirming, which is
// distinct from confirming an empty value.
func (c *Controller) Input(req InputRequest) (value string, ok bool, err error) {
	s := c.Settings()
	set := buttons.ResolveInput(req.Buttons)
	d := newInputDialog(req, set, s.Language, s.Metrics())

	h := c.open(d, req.Caption, s)
	c.log.Info("dialog_shown",
		slog.String("kind", "input"),
		slog.Bool("multiline", req.Multiline),
		slog.Bool("cancel", set.CancelIndex() >= 0))

	if _, err := c.run(h); err != nil {
		return "", false, fmt.Errorf("run input dialog: %w", err)
	}
	c.log.Info("dialog_closed", slog.String("token", d.Token().String()))
	if d.Token() != buttons.TokenOK {
		return "", false, nil
	}
	return d.Value(), true, nil
}

// open closes any open dialog and registers a program for d as the active
// one.
func (c *Controller) open(d Dialog, caption string, s config.Settings) *handle {
	var opts []tea.ProgramOption
	if s.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, c.programOpts...)

	h := &handle{
		program: tea.NewProgram(d, opts...),
		done:    make(chan struct{}),
		caption: caption,
	}
	for {
		c.Close()
		c.mu.Lock()
		if c.active == nil {
			c.active = h
			c.mu.Unlock()
			break
		}
		c.mu.Unlock()
	}

	if s.BeepOnShow {
		c.beeper.Beep()
	}
	return h
}

// run blocks until the program exits, then releases h.
func (c *Controller) run(h *handle) (tea.Model, error) {
	defer func() {
		c.mu.Lock()
		if c.active == h {
			c.active = nil
		}
		c.mu.Unlock()
		close(h.done)
	}()
	return h.program.Run()
}

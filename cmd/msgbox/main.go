package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sjoeboo/msgbox/internal/config"
	"github.com/sjoeboo/msgbox/internal/dialog"
	"github.com/sjoeboo/msgbox/internal/logging"
)

// Version is set at build time
var Version = "dev"

// Exit statuses.
const (
	exitOK       = 0
	exitDeclined = 1
	exitError    = 2
)

// declinedError reports a dialog answered with Cancel or No, or an input
// left without a value. It is not a failure.
type declinedError struct{}

func (declinedError) Error() string { return "declined" }

var colorError = color.New(color.FgRed, color.Bold)

// App holds the CLI application state.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath string
	language   string
	debug      bool

	settings   config.Settings
	controller *dialog.Controller
	watcher    *config.Watcher
	log        *slog.Logger

	// programOpts are passed to every dialog program; tests run headless.
	programOpts  []tea.ProgramOption
	tickInterval time.Duration
}

// NewApp creates the CLI with its commands.
func NewApp(stdout, stderr io.Writer) *App {
	a := &App{stdout: stdout, stderr: stderr, getenv: os.Getenv}

	a.root = &cobra.Command{
		Use:   "msgbox",
		Short: "Blocking message and input dialogs for the terminal",
		Long: `msgbox shows a modal dialog in the terminal and prints the answer.

Use it from scripts to ask a question, confirm an action or collect a value:

  msgbox show --buttons YesNo --icon Warning "Overwrite the file?"
  name=$(msgbox input --caption Setup "Your name")`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (default ~/.msgbox/config.toml)")
	flags.StringVar(&a.language, "lang", "", "button caption language (de, fr, en)")
	flags.BoolVar(&a.debug, "debug", false, "write debug logs to stderr")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.inputCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "msgbox %s\n", Version)
		},
	}
}

// setup loads settings, logging and the dialog controller before any command.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		path = p
	}
	a.configPath = path

	settings, loadErr := config.Load(path)
	if a.language != "" {
		settings.Language = a.language
	}
	if a.debug {
		settings.Log.Debug = true
		settings.Log.Level = "debug"
	}
	a.settings = settings

	logging.Init(settings.Logging())
	a.log = logging.ForComponent(logging.CompCLI)
	if loadErr != nil {
		// Load returned the defaults.
		a.log.Warn("config_load_failed", slog.String("path", path), slog.String("err", loadErr.Error()))
		fmt.Fprintf(a.stderr, "%s %v\n", colorError.Sprint("warning:"), loadErr)
	}

	profile := initColorProfile(settings.Color, a.getenv)
	a.log.Debug("color_profile", slog.Int("profile", int(profile)))

	opts := []dialog.Option{dialog.WithProgramOptions(a.dialogProgramOptions()...)}
	if a.tickInterval > 0 {
		opts = append(opts, dialog.WithTickInterval(a.tickInterval))
	}
	a.controller = dialog.New(settings, opts...)
	a.watchSettings(path)
	return nil
}

// watchSettings hot-reloads the settings file into the controller. A missing
// settings directory just means there is nothing to watch.
func (a *App) watchSettings(path string) {
	w, err := config.NewWatcher(path)
	if err != nil {
		a.log.Debug("config_watch_skipped", slog.String("err", err.Error()))
		return
	}
	a.watcher = w
	w.Start()
	go func() {
		for s := range w.Changes() {
			if a.language != "" {
				s.Language = a.language
			}
			a.controller.SetSettings(s)
		}
	}()
}

func (a *App) teardown() {
	if a.controller != nil {
		a.controller.Close()
	}
	if a.watcher != nil {
		a.watcher.Close()
	}
	logging.Shutdown()
}

// dialogProgramOptions keeps stdout free for the answer: when it is not a
// terminal the dialog draws on stderr, and when stdin is not a terminal keys
// are read from the controlling TTY.
func (a *App) dialogProgramOptions() []tea.ProgramOption {
	if a.programOpts != nil {
		return a.programOpts
	}
	var opts []tea.ProgramOption
	if !isTerminal(os.Stdout) {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	if !isTerminal(os.Stdin) {
		opts = append(opts, tea.WithInputTTY())
	}
	return opts
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// requireTerminal fails early when there is no terminal to draw the dialog
// on at all.
func (a *App) requireTerminal() error {
	if a.programOpts != nil {
		return nil
	}
	if !isTerminal(os.Stdout) && !isTerminal(os.Stderr) {
		return errors.New("msgbox needs a terminal: neither stdout nor stderr is a TTY")
	}
	return nil
}

// Run executes the command line and returns the process exit status.
func (a *App) Run(args []string) int {
	a.root.SetArgs(args)
	err := a.root.Execute()
	a.teardown()
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, new(declinedError)):
		return exitDeclined
	}
	fmt.Fprintf(a.stderr, "%s %v\n", colorError.Sprint("Error:"), err)
	return exitError
}

func main() {
	os.Exit(NewApp(os.Stdout, os.Stderr).Run(os.Args[1:]))
}

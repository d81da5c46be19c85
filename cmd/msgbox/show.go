package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sjoeboo/msgbox/internal/buttons"
	"github.com/sjoeboo/msgbox/internal/dialog"
	"github.com/sjoeboo/msgbox/internal/icon"
)

func (a *App) showCmd() *cobra.Command {
	var (
		caption    string
		buttonName string
		iconName   string
		timeout    int
	)

	cmd := &cobra.Command{
		Use:   "show [flags] message...",
		Short: "Show a message dialog and print the chosen button",
		Long: `Show a message dialog. Each argument is a message segment; segments are
shown as separate paragraphs. Inside a segment, "\n" starts a new line.

The chosen button is printed (OK, Cancel, Yes, No, ...). The exit status is 1
for Cancel and No, 0 otherwise. With --buttons None the dialog has no buttons
and stays up until --timeout runs out or msgbox is interrupted.

Example:
  msgbox show --buttons YesNoCancel --icon Warning "Save changes?"
  msgbox show --timeout 5 "Backup finished"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseButtons(buttonName)
			if err != nil {
				return err
			}
			kind, err := parseIcon(iconName)
			if err != nil {
				return err
			}
			if timeout < 0 {
				return fmt.Errorf("--timeout must not be negative, got %d", timeout)
			}
			if err := a.requireTerminal(); err != nil {
				return err
			}

			req := dialog.Request{
				Message: args,
				Caption: caption,
				Buttons: sel,
				Icon:    kind,
				Timeout: timeout,
			}
			result, err := a.controller.Show(req)
			if err != nil {
				return err
			}
			if sel == buttons.None {
				a.waitNonModal()
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			if result.Negative() {
				return declinedError{}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&caption, "caption", "c", "", "dialog title")
	cmd.Flags().StringVarP(&buttonName, "buttons", "b", buttons.OK.String(), "button set: "+strings.Join(buttons.SelectorNames(), ", "))
	cmd.Flags().StringVarP(&iconName, "icon", "i", "None", "icon: "+strings.Join(icon.KindNames(), ", "))
	cmd.Flags().IntVarP(&timeout, "timeout", "t", 0, "close automatically after this many seconds")
	return cmd
}

// waitNonModal keeps a button-less dialog up until it times out or the
// process is asked to stop.
func (a *App) waitNonModal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-a.controller.Done():
	case sig := <-sigs:
		a.log.Info("non_modal_interrupted", slog.String("signal", sig.String()))
		a.controller.Close()
	}
}

func (a *App) inputCmd() *cobra.Command {
	var (
		caption    string
		value      string
		buttonName string
		multiline  bool
	)

	cmd := &cobra.Command{
		Use:   "input [flags] message",
		Short: "Ask for a value and print it",
		Long: `Show an input dialog and print the entered text.

The exit status is 1 when the dialog is cancelled or closed, so an empty
answer can be told apart from no answer.

Example:
  name=$(msgbox input --value "$USER" "Your name")
  msgbox input --multiline --buttons OKCancel "Release notes"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseButtons(buttonName)
			if err != nil {
				return err
			}
			if err := a.requireTerminal(); err != nil {
				return err
			}

			text, ok, err := a.controller.Input(dialog.InputRequest{
				Message:   args[0],
				Value:     value,
				Caption:   caption,
				Multiline: multiline,
				Buttons:   sel,
			})
			if err != nil {
				return err
			}
			if !ok {
				return declinedError{}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&caption, "caption", "c", "", "dialog title")
	cmd.Flags().StringVarP(&value, "value", "v", "", "initial text")
	cmd.Flags().StringVarP(&buttonName, "buttons", "b", buttons.OKCancel.String(), "OK, or OKCancel for a Cancel button")
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "multi-line field (ctrl+s accepts)")
	return cmd
}

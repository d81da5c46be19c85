package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sjoeboo/msgbox/internal/config"
)

var colorPath = color.New(color.FgCyan)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an example settings file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.CreateExampleConfig(a.configPath); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings file: %s\n", colorPath.Sprint(a.configPath))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			s := a.settings
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:         %s\n", a.configPath)
			fmt.Fprintf(out, "language:     %s\n", s.Language)
			fmt.Fprintf(out, "beep_on_show: %t\n", s.BeepOnShow)
			fmt.Fprintf(out, "alt_screen:   %t\n", s.AltScreen)
			fmt.Fprintf(out, "color:        %s\n", orDefault(s.Color, "auto"))
			fmt.Fprintf(out, "font:         %s, %dpx lines, %dpx cells\n", s.Font.Name, s.Font.LineHeight, s.Font.CellWidth)
		},
	})
	return cmd
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

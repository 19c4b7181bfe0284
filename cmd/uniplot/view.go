package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"uniplot/internal/series"
	"uniplot/internal/viewer"
)

func (a *app) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [FILE|-]",
		Short: "Browse data files interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				d    series.Dataset
				name = "no data"
			)
			if len(args) == 1 {
				var err error
				if d, name, err = readData(cmd, args, nil, nil); err != nil {
					return err
				}
			}
			opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
			if len(args) == 1 && args[0] == "-" {
				// stdin carried the data; keys come from the terminal
				opts = append(opts, tea.WithInputTTY())
			}
			m := viewer.New(cmd.Context(), a.cfg.PlotOptions(), d, name)
			_, err := tea.NewProgram(m, opts...).Run()
			return err
		},
	}
}

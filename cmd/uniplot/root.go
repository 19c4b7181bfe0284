package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"uniplot/internal/config"
	"uniplot/internal/logging"
)

// app carries the settings shared by all subcommands.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "uniplot",
		Short:         "Plot data and images in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
				return err
			}
			w, h := config.DefaultWidth, config.DefaultHeight
			if tw, th, ok := terminalSize(cmd.OutOrStdout()); ok {
				// leave a row for the shell prompt
				w, h = tw, th-1
			}
			a.cfg = cfg.WithSize(w, h)
			logging.For("cli").Debugf("output %dx%d", a.cfg.Width, a.cfg.Height)
			return nil
		},
	}
	if err := config.BindFlags(a.v, root.PersistentFlags()); err != nil {
		panic(err)
	}
	root.AddCommand(
		a.lineCmd("line", false),
		a.lineCmd("scatter", true),
		a.funcCmd(),
		a.imageCmd(),
		a.viewCmd(),
	)
	return root
}

// terminalSize reports the size of w when it is a terminal.
func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 1 {
		return 0, 0, false
	}
	return cols, rows, true
}

func (a *app) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch a.cfg.Color {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// context bounds a command by the configured timeout; zero disables it.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
}

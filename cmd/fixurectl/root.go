package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fixure/fixure-backend/internal/app"
	"github.com/fixure/fixure-backend/internal/config"
)

// opener builds a wired application from a config path. Empty path means
// the default lookup (CONFIG_PATH, then ./config.yaml, then env).
type opener func(ctx context.Context, configPath string) (*app.App, error)

func openApp(ctx context.Context, configPath string) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.NewLogger(cfg.Log))
}

type cli struct {
	open       opener
	tty        func(io.Reader) bool
	configPath string
}

// withApp opens the application for the duration of fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(a *app.App) error) (err error) {
	a, err := c.open(cmd.Context(), c.configPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	return fn(a)
}

func newRootCmd(open opener) *cobra.Command {
	c := &cli{open: open, tty: isTerminal}
	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fixurectl",
		Short:         "Inspect and maintain fixure feedback and pulse data",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to YAML config (default: CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		c.statsCmd(),
		c.patternsCmd(),
		c.feedbackCmd(),
		c.exportCmd(),
		c.seedCmd(),
		c.clearCmd(),
	)
	return root
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

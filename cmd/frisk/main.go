package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/apierr"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/directory"
	"github.com/frisklabs/frisk/httpf"
)

// app resolves the shared wiring (config, logging, HTTP factory, user
// directory) once per invocation. Services take these via constructor
// injection; there is no container.
type app struct {
	configPath string

	cfg     config.Config
	logs    aplog.Builder
	factory httpf.F
}

func (a *app) resolve() error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", a.configPath, err)
	}

	a.cfg = cfg
	a.logs = aplog.NewBuilder(cfg.GetRoot().Logging.GetRootLogger())
	a.factory = httpf.CreateFactory(cfg)

	return nil
}

// resolveDirectory loads the session user directory. Every enriching
// command does this near start, mirroring the console session.
func (a *app) resolveDirectory(cmd *cobra.Command) (directory.D, error) {
	dir, err := directory.New(a.factory, a.logs)
	if err != nil {
		return nil, err
	}

	if err := dir.Load(cmd.Context()); err != nil {
		return nil, err
	}

	return dir, nil
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "frisk",
		Short:         "Terminal console for the fraud review service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "frisk.yaml", "Path to the console config file")

	root.AddCommand(cmdList(a))
	root.AddCommand(cmdLinkAnalysis(a))
	root.AddCommand(cmdDashboard(a))
	root.AddCommand(cmdLookup(a))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apierr.UserMessage(err))
		os.Exit(1)
	}
}

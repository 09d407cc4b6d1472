package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

// app carries state shared by subcommands once the root pre-run has loaded
// the configuration.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Animate BFS, DFS, Dijkstra and A* on a 2-D grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "path to the YAML configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level from the configuration")

	root.AddCommand(
		newServeCmd(a),
		newRunCmd(a),
		newExportCmd(a),
		newAlgorithmsCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	a.cfg, a.log = cfg, log
	a.log.WithField("config", a.configPath).Debug("configuration loaded")
	return nil
}

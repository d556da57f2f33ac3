package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dbform/internal/config"
	"github.com/goliatone/go-dbform/internal/logging"
)

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d}
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "dbform",
		Short: "Serve form-enabled pages and export their captured submissions",
		Long: `dbform expands r:database tags in HTML pages into forms, stores every
posted form as a submission, and exports stored submissions as XML through
an admin surface or from the command line.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.stderr)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			logger.Debug("configuration loaded",
				"store", cfg.Store.Driver,
				"pages", cfg.Site.PagesDir,
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(d.stdout)
	root.SetErr(d.stderr)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.dbform.yaml or $HOME/.dbform.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newFormsCmd(a),
		newExportCmd(a),
		newRenderCmd(a),
	)

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\nRun '%s --help' for usage", err, cmd.CommandPath())
	})
	return root
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hostexpand/internal/infra/appconfig"
	"github.com/aalvaropc/hostexpand/internal/infra/hostfile"
	"github.com/aalvaropc/hostexpand/internal/infra/logger"
	"github.com/aalvaropc/hostexpand/internal/infra/netfile"
	"github.com/aalvaropc/hostexpand/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "hostexpand",
		Short:        "hostexpand — expand IPv4 subnet lists into usable host addresses",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cfg, cfgErr := appconfig.Load(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug || cfg.Logging.Debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			if cfgErr != nil {
				logger.L().Warn("config.load.failed", "err", cfgErr)
			}

			deps := tui.Deps{
				Lines:  netfile.NewReader(),
				Sinks:  hostfile.NewFactory(),
				Config: cfg,
				Logger: logger.L(),
				Debug:  debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .hostexpand/logs/hostexpand.log")

	cmd.AddCommand(expandCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/infra/appconfig"
	"github.com/aalvaropc/hostexpand/internal/infra/logger"
)

// setupRun loads config and the file logger for a subcommand. The
// returned cleanup is never nil.
func setupRun(cmd *cobra.Command) (domain.Config, func() error, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	cfg, cfgErr := appconfig.Load(wd)

	debug, _ := cmd.Flags().GetBool("debug")
	cleanup, _ := logger.Setup(logger.Config{
		Root:  wd,
		Debug: debug || cfg.Logging.Debug,
	})
	if cleanup == nil {
		cleanup = func() error { return nil }
	}

	if cfgErr != nil {
		if domain.IsKind(cfgErr, domain.KindInvalidConfig) {
			return cfg, cleanup, cfgErr
		}
		logger.L().Warn("config.load.failed", "err", cfgErr)
	}
	return cfg, cleanup, nil
}

func printSummary(w io.Writer, sum domain.Summary) {
	fmt.Fprintf(w, "Networks:  %d", sum.Networks)
	if sum.Coerced > 0 {
		fmt.Fprintf(w, " (%d coerced from host addresses)", sum.Coerced)
	}
	fmt.Fprintln(w)
	if sum.Rejected > 0 {
		fmt.Fprintf(w, "Rejected:  %d\n", sum.Rejected)
	}
	if sum.Blank > 0 {
		fmt.Fprintf(w, "Blank:     %d\n", sum.Blank)
	}
	fmt.Fprintf(w, "Hosts:     %d\n", sum.Hosts)
}

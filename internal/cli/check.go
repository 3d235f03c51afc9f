package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hostexpand/internal/infra/logger"
	"github.com/aalvaropc/hostexpand/internal/infra/netfile"
	"github.com/aalvaropc/hostexpand/internal/usecase"
)

func checkCmd() *cobra.Command {
	var input string
	var quiet bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Classify a subnet list and report, writing nothing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cleanup, err := setupRun(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if !cmd.Flags().Changed("quiet") {
				quiet = cfg.Diagnostics.Quiet
			}

			notify := newConsoleNotifier(os.Stderr, logger.L(), quiet)
			uc := usecase.NewCheckList(netfile.NewReader(), notify)

			sum, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printSummary(os.Stdout, sum)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "File with one IPv4 network or host per line (required)")
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress coercion/rejection notices on stderr")

	_ = c.MarkFlagRequired("input")
	return c
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/infra/hostfile"
	"github.com/aalvaropc/hostexpand/internal/infra/logger"
	"github.com/aalvaropc/hostexpand/internal/infra/netfile"
	"github.com/aalvaropc/hostexpand/internal/usecase"
)

func expandCmd() *cobra.Command {
	var input string
	var output string
	var force bool
	var quiet bool

	c := &cobra.Command{
		Use:   "expand",
		Short: "Expand a subnet list file into a host list file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cleanup, err := setupRun(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if !cmd.Flags().Changed("force") {
				force = cfg.Output.Force
			}
			if !cmd.Flags().Changed("quiet") {
				quiet = cfg.Diagnostics.Quiet
			}

			notify := newConsoleNotifier(os.Stderr, logger.L(), quiet)
			uc := usecase.NewExpandList(netfile.NewReader(), hostfile.NewFactory(), notify)

			sum, err := uc.Execute(cmd.Context(), input, output, force)
			if err != nil {
				if errors.Is(err, domain.ErrOutputExists) {
					return fmt.Errorf("%s exists; pass --force to overwrite, or run hostexpand without arguments for the interactive mode", output)
				}
				return err
			}

			logger.L().Info("expand.ok",
				"input", input,
				"output", output,
				"networks", sum.Networks,
				"hosts", sum.Hosts,
			)
			printSummary(os.Stdout, sum)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "File with one IPv4 network or host per line (required)")
	c.Flags().StringVarP(&output, "output", "o", "", "Destination file for the host list (required)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite the output file if it exists")
	c.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress coercion/rejection notices on stderr")

	_ = c.MarkFlagRequired("input")
	_ = c.MarkFlagRequired("output")
	return c
}

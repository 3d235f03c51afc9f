package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

// consoleNotifier surfaces classification diagnostics on a writer
// (stderr in practice) and mirrors them to the structured log. With
// quiet set, only the log receives them.
type consoleNotifier struct {
	w     io.Writer
	log   *slog.Logger
	quiet bool
}

func newConsoleNotifier(w io.Writer, log *slog.Logger, quiet bool) *consoleNotifier {
	return &consoleNotifier{w: w, log: log, quiet: quiet}
}

var _ ports.Notifier = (*consoleNotifier)(nil)

func (n *consoleNotifier) Coerced(spec domain.AddressSpec) {
	n.log.Warn("classify.coerced",
		"original", spec.Original,
		"network", spec.Net.String(),
	)
	if !n.quiet {
		fmt.Fprintf(n.w, "Warning: %s\n", spec.CoercionNotice())
	}
}

func (n *consoleNotifier) Rejected(spec domain.AddressSpec) {
	n.log.Warn("classify.rejected",
		"original", spec.Original,
		"reason", spec.Reason,
	)
	if !n.quiet {
		fmt.Fprintf(n.w, "Error: %s\n", spec.RejectionNotice())
	}
}

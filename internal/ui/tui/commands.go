package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
	"github.com/aalvaropc/hostexpand/internal/usecase"
)

// recordingNotifier keeps notices for the done screen and mirrors them
// to the structured log. It is owned by a single expansion goroutine.
type recordingNotifier struct {
	log     *slog.Logger
	notices []string
}

var _ ports.Notifier = (*recordingNotifier)(nil)

func (n *recordingNotifier) Coerced(spec domain.AddressSpec) {
	n.log.Warn("classify.coerced", "original", spec.Original, "network", spec.Net.String())
	n.notices = append(n.notices, "Warning: "+spec.CoercionNotice())
}

func (n *recordingNotifier) Rejected(spec domain.AddressSpec) {
	n.log.Warn("classify.rejected", "original", spec.Original, "reason", spec.Reason)
	n.notices = append(n.notices, "Error: "+spec.RejectionNotice())
}

func listenExpand(ch <-chan expandDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return expandDoneMsg{err: errors.New("expand channel closed")}
		}
		return msg
	}
}

func startExpandAsync(deps Deps, inPath, outPath string, overwrite bool) (chan expandDoneMsg, tea.Cmd) {
	ch := make(chan expandDoneMsg, 1)

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("expand.start",
			"input", inPath,
			"output", outPath,
			"overwrite", overwrite,
		)

		notify := &recordingNotifier{log: log}
		uc := usecase.NewExpandList(deps.Lines, deps.Sinks, notify)

		// No deadline: a /0 expansion is legitimate, and quitting the
		// program already abandons the run.
		sum, err := uc.Execute(context.Background(), inPath, outPath, overwrite)
		if err != nil {
			log.Error("expand.failed", "err", err)
		} else {
			log.Info("expand.ok", "networks", sum.Networks, "hosts", sum.Hosts)
		}

		ch <- expandDoneMsg{sum: sum, notices: notify.notices, err: err}
	}()

	return ch, listenExpand(ch)
}

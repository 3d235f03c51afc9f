package tui

import (
	"log/slog"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

type Deps struct {
	Lines ports.SubnetSource
	Sinks ports.SinkFactory

	Config domain.Config
	Logger *slog.Logger
	Debug  bool
}

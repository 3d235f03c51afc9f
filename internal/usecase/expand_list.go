package usecase

import (
	"context"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
	ucclassify "github.com/aalvaropc/hostexpand/internal/usecase/classify"
	ucexpand "github.com/aalvaropc/hostexpand/internal/usecase/expand"
)

// ExpandList is the batch pipeline: read lines, classify, expand every
// accepted network into its usable hosts, stream them to a sink.
//
// Malformed lines never abort the run; they are reported to the
// notifier and dropped. Only source/sink I/O failures are fatal.
type ExpandList struct {
	source ports.SubnetSource
	sinks  ports.SinkFactory
	notify ports.Notifier
}

func NewExpandList(src ports.SubnetSource, sinks ports.SinkFactory, n ports.Notifier) *ExpandList {
	return &ExpandList{
		source: src,
		sinks:  sinks,
		notify: n,
	}
}

func (uc *ExpandList) Execute(ctx context.Context, inPath, outPath string, overwrite bool) (domain.Summary, error) {
	networks, sum, err := classifyAll(uc.source, inPath, uc.notify)
	if err != nil {
		return sum, err
	}

	sink, err := uc.sinks.Create(outPath, overwrite)
	if err != nil {
		return sum, err
	}

	for host := range ucexpand.All(networks) {
		if cerr := ctx.Err(); cerr != nil {
			_ = sink.Close()
			return sum, &domain.OpError{
				Op:   "usecase.expand_list",
				Kind: domain.KindExecution,
				Err:  cerr,
			}
		}
		if werr := sink.WriteHost(host); werr != nil {
			_ = sink.Close()
			return sum, werr
		}
		sum.Hosts++
	}

	return sum, sink.Close()
}

// classifyAll drains the source, building the accepted networks in input
// order. Rejects and blanks are counted but contribute nothing; there is
// no in-place deletion pass, the accepted list is built directly.
func classifyAll(src ports.SubnetSource, path string, notify ports.Notifier) ([]domain.Network, domain.Summary, error) {
	var (
		networks []domain.Network
		sum      domain.Summary
	)

	err := src.Each(path, func(line string) error {
		spec := ucclassify.Classify(line)
		switch spec.Kind {
		case domain.SpecNetwork:
			sum.Networks++
			networks = append(networks, spec.Net)
		case domain.SpecCoerced:
			sum.Networks++
			sum.Coerced++
			networks = append(networks, spec.Net)
			if notify != nil {
				notify.Coerced(spec)
			}
		case domain.SpecRejected:
			sum.Rejected++
			if notify != nil {
				notify.Rejected(spec)
			}
		case domain.SpecEmpty:
			sum.Blank++
		}
		return nil
	})
	if err != nil {
		return nil, sum, err
	}

	return networks, sum, nil
}

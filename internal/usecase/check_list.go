package usecase

import (
	"context"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

// CheckList classifies an input file without writing anything: the dry
// run behind the check subcommand. The returned summary projects how
// many host addresses a real expansion would produce.
type CheckList struct {
	source ports.SubnetSource
	notify ports.Notifier
}

func NewCheckList(src ports.SubnetSource, n ports.Notifier) *CheckList {
	return &CheckList{source: src, notify: n}
}

func (uc *CheckList) Execute(ctx context.Context, inPath string) (domain.Summary, error) {
	if err := ctx.Err(); err != nil {
		return domain.Summary{}, &domain.OpError{
			Op:   "usecase.check_list",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	networks, sum, err := classifyAll(uc.source, inPath, uc.notify)
	if err != nil {
		return sum, err
	}

	for _, n := range networks {
		sum.Hosts += n.HostCount()
	}
	return sum, nil
}

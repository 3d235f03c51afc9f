package usecase

import (
	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

type fakeSource struct {
	lines []string
	err   error
}

func (f fakeSource) Each(_ string, fn func(line string) error) error {
	if f.err != nil {
		return f.err
	}
	for _, l := range f.lines {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

type fakeSink struct {
	hosts    []string
	writeErr error
	closed   bool
}

func (f *fakeSink) WriteHost(addr string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.hosts = append(f.hosts, addr)
	return nil
}

func (f *fakeSink) Close() error {
	f.closed = true
	return nil
}

type fakeSinkFactory struct {
	sink *fakeSink
	err  error

	gotPath      string
	gotOverwrite bool
}

func (f *fakeSinkFactory) Create(path string, overwrite bool) (ports.HostSink, error) {
	f.gotPath = path
	f.gotOverwrite = overwrite
	if f.err != nil {
		return nil, f.err
	}
	return f.sink, nil
}

type fakeNotifier struct {
	coerced  []domain.AddressSpec
	rejected []domain.AddressSpec
}

func (f *fakeNotifier) Coerced(spec domain.AddressSpec)  { f.coerced = append(f.coerced, spec) }
func (f *fakeNotifier) Rejected(spec domain.AddressSpec) { f.rejected = append(f.rejected, spec) }

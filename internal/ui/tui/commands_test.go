package tui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aalvaropc/hostexpand/internal/ports"
)

type fakeSource struct {
	lines []string
}

func (f fakeSource) Each(_ string, fn func(line string) error) error {
	for _, l := range f.lines {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

type fakeSink struct {
	hosts  []string
	closed bool
}

func (f *fakeSink) WriteHost(addr string) error {
	f.hosts = append(f.hosts, addr)
	return nil
}

func (f *fakeSink) Close() error {
	f.closed = true
	return nil
}

type fakeSinkFactory struct {
	sink *fakeSink
}

func (f *fakeSinkFactory) Create(string, bool) (ports.HostSink, error) {
	return f.sink, nil
}

func TestStartExpandAsync_CompletesWithoutDeadline(t *testing.T) {
	sink := &fakeSink{}
	deps := Deps{
		Lines:  fakeSource{lines: []string{"192.168.1.0/30", "10.0.0.5/30", "junk"}},
		Sinks:  &fakeSinkFactory{sink: sink},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	_, cmd := startExpandAsync(deps, "in.txt", "out.txt", true)

	raw := cmd()
	msg, ok := raw.(expandDoneMsg)
	if !ok {
		t.Fatalf("expected expandDoneMsg, got %T", raw)
	}
	if msg.err != nil {
		t.Fatalf("expected no error, got %v", msg.err)
	}
	if msg.sum.Networks != 2 || msg.sum.Hosts != 4 {
		t.Fatalf("unexpected summary: %+v", msg.sum)
	}
	if len(msg.notices) != 2 {
		t.Fatalf("expected coercion + rejection notice, got %v", msg.notices)
	}
	if !sink.closed {
		t.Fatal("sink must be closed")
	}
}

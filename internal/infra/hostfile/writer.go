// Package hostfile writes expanded host addresses to a file, one per
// line, through a buffered sink.
package hostfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

const defaultBufSize = 64 * 1024

// Factory creates file-backed host sinks.
type Factory struct {
	bufSize int
}

type Option func(*Factory)

// WithBufferSize overrides the write buffer size.
func WithBufferSize(n int) Option {
	return func(f *Factory) { f.bufSize = n }
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{bufSize: defaultBufSize}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.SinkFactory = (*Factory)(nil)

// Create opens path for writing. An existing file is refused unless
// overwrite is set, so a non-interactive run cannot clobber data the
// user was never asked about.
func (f *Factory) Create(path string, overwrite bool) (ports.HostSink, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, &domain.OpError{
				Op:   "hostfile.create",
				Kind: domain.KindConflict,
				Path: path,
				Err:  domain.ErrOutputExists,
			}
		}
	}

	fh, err := os.Create(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "hostfile.create",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return &sink{
		path: path,
		f:    fh,
		w:    bufio.NewWriterSize(fh, f.bufSize),
	}, nil
}

type sink struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

func (s *sink) WriteHost(addr string) error {
	if _, err := s.w.WriteString(addr); err != nil {
		return s.writeErr(err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return s.writeErr(err)
	}
	return nil
}

func (s *sink) Close() error {
	ferr := s.w.Flush()
	cerr := s.f.Close()
	if ferr != nil {
		return s.writeErr(ferr)
	}
	if cerr != nil {
		return s.writeErr(cerr)
	}
	return nil
}

func (s *sink) writeErr(err error) error {
	return &domain.OpError{
		Op:   "hostfile.write",
		Kind: domain.KindExecution,
		Path: s.path,
		Err:  fmt.Errorf("write host list: %w", err),
	}
}

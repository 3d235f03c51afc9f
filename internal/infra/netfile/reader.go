// Package netfile reads subnet list files line by line.
package netfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/aalvaropc/hostexpand/internal/domain"
	"github.com/aalvaropc/hostexpand/internal/ports"
)

// Reader streams a text file one line at a time. It never loads the
// whole file into memory, and it puts no cap on line length: an
// oversized garbage line is still delivered whole, so classification
// can reject it instead of the run aborting.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

var _ ports.SubnetSource = (*Reader)(nil)

func (r *Reader) Each(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.OpError{
			Op:   "netfile.each",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			if ferr := fn(strings.TrimRight(line, "\r\n")); ferr != nil {
				return ferr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return &domain.OpError{
				Op:   "netfile.each",
				Kind: domain.KindExecution,
				Path: path,
				Err:  rerr,
			}
		}
	}
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

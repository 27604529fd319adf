package sink

import (
	"errors"
	"io"
	"os"
	"syscall"
)

var (
	// ErrPipeClosed reports that the downstream reader closed its end of
	// the pipe. It is the sink's only expected terminal condition and the
	// caller is expected to exit quietly on it.
	ErrPipeClosed = errors.New("sink: downstream pipe closed")
)

// LineSink consumes newline-terminated records one at a time.
type LineSink interface {
	WriteLine(line []byte) error
}

// Stream writes each record with a single unbuffered write so the
// downstream reader sees it immediately. It never batches: end-to-end
// latency to the consumer matters more than syscall count here.
type Stream struct {
	w io.Writer
}

// NewStdout returns the sink for the process's standard output.
//
// The caller must claim SIGPIPE beforehand (see the adapter mains);
// otherwise a closed pipe kills the process with a signal before the write
// error ever reaches this code.
func NewStdout() *Stream {
	return &Stream{w: os.Stdout}
}

// New wraps an arbitrary writer, mainly for tests and tools.
func New(w io.Writer) *Stream {
	return &Stream{w: w}
}

func (s *Stream) WriteLine(line []byte) error {
	if _, err := s.w.Write(line); err != nil {
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
			return ErrPipeClosed
		}
		return err
	}
	return nil
}

package sink

import (
	"bytes"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	require.NoError(t, s.WriteLine([]byte("1,T,B,95,10\n")))
	require.NoError(t, s.WriteLine([]byte("2,T,S,96,20\n")))
	assert.Equal(t, "1,T,B,95,10\n2,T,S,96,20\n", buf.String())
}

func TestWriteLineMapsBrokenPipe(t *testing.T) {
	s := New(failWriter{err: syscall.EPIPE})
	err := s.WriteLine([]byte("1,T,B,95,10\n"))
	assert.ErrorIs(t, err, ErrPipeClosed)

	s = New(failWriter{err: io.ErrClosedPipe})
	err = s.WriteLine([]byte("1,T,B,95,10\n"))
	assert.ErrorIs(t, err, ErrPipeClosed)
}

func TestWriteLineKeepsOtherErrors(t *testing.T) {
	cause := errors.New("disk gone")
	s := New(failWriter{err: cause})
	err := s.WriteLine([]byte("1,T,B,95,10\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPipeClosed)
}

func TestWriteLineClosedOSPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	require.NoError(t, r.Close())

	s := New(w)
	defer w.Close()

	// The first write into a closed pipe may be buffered by the kernel on
	// some platforms; retry a few times and require the mapped error.
	for i := 0; i < 8; i++ {
		if err = s.WriteLine([]byte("1,T,B,95,10\n")); err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, ErrPipeClosed)
}

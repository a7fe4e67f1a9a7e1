package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all its writers, e.g. stdout and the rotated log file.
// A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.Writers = append(cw.Writers, w)
		}
	}
	return cw
}

// Write reports len(p) once every writer took the whole of p, otherwise the
// shortest write together with the combined errors.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	n := len(p)
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			n = min(n, written)
		}
	}
	return n, err
}

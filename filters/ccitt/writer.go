package ccitt

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/log"
)

var (
	errTooManyRows = errors.New("too many rows")
	errClosed      = errors.New("write to closed CCITT writer")
	errPartialRow  = errors.New("incomplete last row")
)

// Writer encodes packed rows to a CCITT stream.
// The rows use the same layout as the output of Reader: one bit per
// pixel, MSB first, each row starting on a byte boundary.
type Writer struct {
	p   Params
	out *bufio.Writer
	enc encoder

	rows   int // number of encoded rows
	closed bool
	err    error

	// partial row, for Write
	buf []byte
	n   int
}

// NewWriter returns a Writer encoding to `dst`. Close must be called to
// terminate the data.
func NewWriter(dst io.Writer, p Params) (*Writer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	out := bufio.NewWriter(dst)
	limit := p.edgeLimit()
	w := &Writer{
		p:   p,
		out: out,
		enc: encoder{
			bw:      bitWriter{dst: out},
			columns: p.Columns,
			cur:     newScanline(p.Columns, limit),
			ref:     newScanline(p.Columns, limit),
		},
		buf: make([]byte, p.rowBytes()),
	}
	return w, nil
}

// Encode is a convenience function encoding the packed `rows`, whose
// length must be a multiple of the row size.
func Encode(rows []byte, p Params) ([]byte, error) {
	var out bytes.Buffer
	w, err := NewWriter(&out, p)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(rows); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Rows returns the number of rows written so far.
func (w *Writer) Rows() int { return w.rows }

// oneD returns true if the row of the given index is coded with the
// one-dimensional scheme.
func (w *Writer) oneD(row int) bool {
	switch {
	case w.p.K < 0:
		return false
	case w.p.K == 0:
		return true
	default:
		return row%w.p.K == 0
	}
}

// WriteRow encodes one packed row, which must be at least RowBytes long.
func (w *Writer) WriteRow(row []byte) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return errClosed
	}
	if len(row) < len(w.buf) {
		return io.ErrShortBuffer
	}
	if w.p.Rows > 0 && w.rows >= w.p.Rows {
		w.err = protocolError(w.rows, errTooManyRows)
		return w.err
	}

	enc := &w.enc
	oneD := w.oneD(w.rows)
	tagged := w.p.K > 0
	if w.p.rowEOLs() {
		if w.p.EncodedByteAlign {
			enc.putFill()
		}
		enc.putEOL(tagged, oneD)
	} else {
		if w.p.EncodedByteAlign {
			enc.bw.flush()
		}
		if tagged {
			enc.putTag(oneD)
		}
	}

	enc.cur.unpack(row, w.p.BlackIs1)
	enc.cur.scanEdges()
	if !enc.cur.edgesOK {
		log.Debug.Printf("CCITT: row %d has more than %d changing elements\n", w.rows, enc.cur.limit)
	}
	enc.encodeRow(!oneD)
	enc.cur, enc.ref = enc.ref, enc.cur
	w.rows++

	w.err = enc.bw.err
	return w.err
}

// RowBytes returns the size of a packed row.
func (w *Writer) RowBytes() int { return len(w.buf) }

// Write implements io.Writer, buffering partial rows.
func (w *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if w.n == 0 && len(p) >= len(w.buf) {
			// whole row, without copy
			if err := w.WriteRow(p); err != nil {
				return written, err
			}
			p = p[len(w.buf):]
			written += len(w.buf)
			continue
		}
		c := copy(w.buf[w.n:], p)
		w.n += c
		p = p[c:]
		written += c
		if w.n == len(w.buf) {
			w.n = 0
			if err := w.WriteRow(w.buf); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// Close terminates the data with RTC (or EOFB) when EndOfBlock is set,
// and flushes the output. It does not close the underlying writer.
// A partial row written with Write is an error.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}
	if w.n != 0 {
		w.err = protocolError(w.rows, errPartialRow)
		return w.err
	}

	enc := &w.enc
	if w.p.EndOfBlock {
		if w.p.EncodedByteAlign {
			if w.p.rowEOLs() {
				enc.putFill()
			} else {
				enc.bw.flush()
			}
		}
		tagged := w.p.K > 0
		for i := 0; i < w.p.rtcLength(); i++ {
			enc.putEOL(tagged, true)
		}
		log.Write.Printf("CCITT: %d rows written, end of block\n", w.rows)
	} else {
		log.Write.Printf("CCITT: %d rows written\n", w.rows)
	}
	enc.bw.flush()
	if w.err = enc.bw.err; w.err != nil {
		return w.err
	}
	w.err = w.out.Flush()
	return w.err
}

package ccitt

import (
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/log"
)

var (
	errBadRTC     = errors.New("bad RTC code")
	errMissingEOL = errors.New("missing EOL")
)

// Reader decodes a CCITT stream, row by row.
// The rows are one bit per pixel (MSB first), each row starting on a
// byte boundary. By default, 1 means white and 0 means black; see
// Params.BlackIs1.
type Reader struct {
	p   Params
	src io.ByteReader
	dec decoder

	twoD bool // coding of the next row
	rows int  // number of decoded rows
	done bool
	err  error

	// current row, for Read and ReadByte
	buf []byte
	off int
}

// NewReader returns a ready to use Reader, decoding `src`. It reads `src`
// until the start of the first row.
//
// A zero Rows means that the image height is not known in advance. The
// data then ends with RTC (or EOFB), or with the end of `src`.
func NewReader(src io.ByteReader, p Params) (*Reader, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	limit := p.edgeLimit()
	r := &Reader{
		p:   p,
		src: src,
		dec: decoder{
			br:           bitReader{src: src},
			tables:       defaultTables(),
			columns:      p.Columns,
			uncompressed: p.Uncompressed,
			cur:          newScanline(p.Columns, limit),
			ref:          newScanline(p.Columns, limit),
		},
		twoD: p.K < 0,
	}
	r.buf = make([]byte, p.rowBytes())
	r.off = len(r.buf)
	if err := r.initialize(); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode is a convenience function decoding the complete `data`.
func Decode(data []byte, p Params) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data), p)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// RowBytes returns the size of a decoded row.
func (r *Reader) RowBytes() int { return len(r.buf) }

// Rows returns the number of rows decoded so far.
func (r *Reader) Rows() int { return r.rows }

// Buffered returns the number of bytes read from the source but not
// used by the decoder.
func (r *Reader) Buffered() int { return r.dec.br.buffered() }

// skip the optional EOL before the first row, and get its tag bit
func (r *Reader) initialize() error {
	n, err := r.eolRun()
	if err != nil {
		return err
	}
	if n >= 2 {
		log.Read.Printf("CCITT: empty data (%d EOLs)\n", n)
		r.finish()
		return nil
	}
	if r.dec.br.exhausted() {
		r.finish()
		return nil
	}
	if n == 0 && r.p.K > 0 {
		if err := r.readTag(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) readTag() error {
	b, err := r.dec.br.getBit()
	if err != nil {
		return err
	}
	r.twoD = b == 0
	return nil
}

// eolRun consumes consecutive EOLs, at most as many as RTC (or EOFB)
// has, and the tag bits following them. It returns the number of EOLs.
func (r *Reader) eolRun() (int, error) {
	br := &r.dec.br
	n, rtc := 0, r.p.rtcLength()
	for n < rtc && br.readEOL() {
		n++
		if r.p.K > 0 {
			if err := r.readTag(); err == io.EOF {
				break
			} else if err != nil {
				return n, err
			}
		}
	}
	return n, br.err
}

// endOfRow processes what follows a row: alignment, EOL and tag bit, or
// the end of the data.
func (r *Reader) endOfRow() error {
	br := &r.dec.br
	align := r.p.EncodedByteAlign && !r.p.rowEOLs()

	if r.p.Rows > 0 && r.rows == r.p.Rows {
		if r.p.EndOfBlock {
			if align {
				br.align()
			}
			if _, err := r.eolRun(); err != nil {
				return err
			}
		}
		r.finish()
		return nil
	}

	if align {
		br.align()
	}
	n, err := r.eolRun()
	if err != nil {
		return err
	}
	switch {
	case n >= 2:
		if r.p.K >= 0 && r.p.EndOfBlock && n < r.p.rtcLength() {
			return protocolError(r.rows, errBadRTC)
		}
		log.Read.Printf("CCITT: end of block after row %d\n", r.rows)
		r.finish()
	case br.exhausted():
		r.finish()
	case n == 0 && r.p.rowEOLs():
		return protocolError(r.rows, errMissingEOL)
	case n == 0 && r.p.K > 0:
		if err := r.readTag(); err != nil {
			return err
		}
	}
	return nil
}

// finish marks the end of the data, giving back to the source the byte
// read ahead, if possible.
func (r *Reader) finish() {
	r.done = true
	log.Read.Printf("CCITT: %d rows decoded\n", r.rows)
	if s, ok := r.src.(io.ByteScanner); ok && r.dec.br.buffered() > 0 {
		if s.UnreadByte() == nil {
			r.dec.br.dropByte()
		}
	}
}

// ReadRow decodes the next row into `dst`, which must be at least
// RowBytes long. `last` is true for the final row. After the final row,
// io.EOF is returned.
func (r *Reader) ReadRow(dst []byte) (last bool, err error) {
	if r.err != nil {
		return false, r.err
	}
	if r.done {
		return false, io.EOF
	}
	if len(dst) < len(r.buf) {
		return false, io.ErrShortBuffer
	}

	dec := &r.dec
	if err := dec.decodeRow(r.twoD); err != nil {
		r.err = r.wrap(err)
		return false, r.err
	}
	if !dec.cur.edgesOK {
		log.Debug.Printf("CCITT: row %d has more than %d changing elements\n", r.rows, dec.cur.limit)
	}
	dec.cur.pack(dst, r.p.BlackIs1)
	dec.cur, dec.ref = dec.ref, dec.cur
	r.rows++

	if err := r.endOfRow(); err != nil {
		r.err = err
		return false, err
	}
	return r.done, nil
}

// wrap adds the current row to decoding errors. Errors from the source
// are returned unchanged.
func (r *Reader) wrap(err error) error {
	switch err {
	case errInvalidCode, errPrematureEnd, errColumns, errUnexpectedEOL, errUncompressed:
		return protocolError(r.rows, err)
	}
	return err
}

// Read implements io.Reader, returning the packed rows.
func (r *Reader) Read(p []byte) (int, error) {
	i := 0
	for ; i < len(p); i++ {
		b, err := r.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.off == len(r.buf) { // read the next row
		if _, err := r.ReadRow(r.buf); err != nil {
			return 0, err
		}
		r.off = 0
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

package ccitt

import (
	"io"
)

// bitReader is the decoding side of the bit accumulator. Bytes are pulled
// from the source one at a time, only when the pending bits are not enough
// to answer a request.
type bitReader struct {
	src io.ByteReader

	pending uint64 // right aligned, the next bit is at position nbits-1
	nbits   int
	eof     bool
	err     error // read error other than io.EOF
}

func (r *bitReader) fill(n int) {
	for r.nbits < n && !r.eof {
		b, err := r.src.ReadByte()
		if err != nil {
			r.eof = true
			if err != io.EOF {
				r.err = err
			}
			return
		}
		r.pending = r.pending<<8 | uint64(b)
		r.nbits += 8
	}
}

// peek returns the next n bits, n <= 32, and the number of them actually
// available. Missing bits at the end of the input are returned as zeros.
func (r *bitReader) peek(n int) (uint32, int) {
	r.fill(n)
	if r.nbits >= n {
		return uint32(r.pending>>(r.nbits-n)) & (1<<n - 1), n
	}
	return uint32(r.pending<<(n-r.nbits)) & (1<<n - 1), r.nbits
}

// skip drops n bits, which must have been peeked.
func (r *bitReader) skip(n int) {
	r.nbits -= n
	r.pending &= 1<<r.nbits - 1
}

// getBit returns the next bit, or io.EOF.
func (r *bitReader) getBit() (uint8, error) {
	b, n := r.peek(1)
	if n == 0 {
		return 0, r.endError()
	}
	r.skip(1)
	return uint8(b), nil
}

// dropByte forgets the last byte read from the source, after it has
// been given back to it.
func (r *bitReader) dropByte() {
	r.pending >>= 8
	r.nbits -= 8
}

// align drops the bits up to the next byte boundary of the input.
func (r *bitReader) align() {
	r.skip(r.nbits % 8)
}

// exhausted returns true when only zero padding bits, if any, are left
// in the input.
func (r *bitReader) exhausted() bool {
	r.fill(8)
	if r.err != nil {
		return false
	}
	return r.nbits == 0 || (r.eof && r.nbits < 8 && r.pending == 0)
}

// endError is returned when the input ends: the underlying read error if
// any, io.EOF otherwise.
func (r *bitReader) endError() error {
	if r.err != nil {
		return r.err
	}
	return io.EOF
}

// buffered returns the number of whole bytes read from the source but not
// consumed yet.
func (r *bitReader) buffered() int { return r.nbits / 8 }

// readCode decodes the next code word of set. An EOL is recognized in
// every set. It returns io.EOF if the input ends (possibly after zero
// padding bits) before a code starts, and errInvalidCode if no code
// matches.
func (r *bitReader) readCode(set *codeSet) (*code, error) {
	bits, n := r.peek(lookupBits)
	if n == 0 {
		return nil, r.endError()
	}
	if c := set.lookup[bits]; c.length <= n {
		r.skip(c.length)
		return c, nil
	}

	// bit by bit search, for long codes or near the end of the input
	for length := 1; length <= maxCodeLength; length++ {
		bits, n := r.peek(length)
		if n < length {
			if bits == 0 || r.err != nil {
				// trailing zero padding, or failing source
				r.skip(n)
				return nil, r.endError()
			}
			return nil, errPrematureEnd
		}
		if c := set.find(bits, length); c != nil {
			r.skip(length)
			return c, nil
		}
		if length == 11 && bits == 0 {
			// fill bits before an EOL: no code word starts with 11 zeros
			return r.skipToEOL()
		}
	}
	return nil, errInvalidCode
}

// skipToEOL consumes zero bits up to and including the next 1 bit,
// which terminates an EOL.
func (r *bitReader) skipToEOL() (*code, error) {
	for {
		b, n := r.peek(1)
		if n == 0 {
			return nil, r.endError()
		}
		r.skip(1)
		if b == 1 {
			return &eolCode, nil
		}
	}
}

// readEOL consumes an optional EOL, preceded by any number of fill bits.
// It returns false, and leaves the input unchanged apart from trailing zero
// bits, if no EOL is found.
func (r *bitReader) readEOL() bool {
	for {
		bits, n := r.peek(eolCode.length)
		switch {
		case n == eolCode.length && bits == uint32(eolCode.bits):
			r.skip(n)
			return true
		case bits == 0 && n == eolCode.length:
			r.skip(1) // fill bit
		case bits == 0:
			// zero padding at the end of the input
			r.skip(n)
			return false
		default:
			return false
		}
	}
}

// bitWriter is the encoding side of the bit accumulator: codes are
// appended MSB first and whole bytes are flushed to the sink.
type bitWriter struct {
	dst     io.ByteWriter
	current uint64 // right aligned pending bits
	nbits   int
	err     error
}

func (w *bitWriter) putBits(bits uint32, length int) {
	w.current = w.current<<length | uint64(bits)
	w.nbits += length
	for w.nbits >= 8 {
		w.nbits -= 8
		w.writeByte(byte(w.current >> w.nbits))
	}
	w.current &= 1<<w.nbits - 1
}

func (w *bitWriter) put(c *code) { w.putBits(uint32(c.bits), c.length) }

func (w *bitWriter) writeByte(b byte) {
	if w.err != nil {
		return
	}
	w.err = w.dst.WriteByte(b)
}

// pending returns the number of bits not yet flushed.
func (w *bitWriter) pending() int { return w.nbits }

// flush pads the last partial byte with zero bits and writes it.
func (w *bitWriter) flush() {
	if w.nbits > 0 {
		w.putBits(0, 8-w.nbits)
	}
}

package ccitt

// encoder codes single rows from cur, using ref as reference line.
// Stream level markers are written by Writer.
type encoder struct {
	bw      bitWriter
	columns int

	cur, ref *scanline
}

// encodeRow codes cur, whose changing elements must be up to date.
func (e *encoder) encodeRow(twoD bool) {
	if twoD {
		e.encode2D()
	} else {
		e.encode1D()
	}
}

func (e *encoder) encode1D() {
	a0, color := 0, white
	for a0 < e.columns {
		a1 := e.cur.find(a0, 1-color)
		e.putRun(a1-a0, color)
		a0 = a1
		color = 1 - color
	}
}

func (e *encoder) encode2D() {
	cur, ref := e.cur, e.ref
	a0, color := -1, white
	for a0 < e.columns {
		a1, a2 := cur.changes(a0, color)
		b1, b2 := ref.changes(a0, color)
		if b2 < a1 {
			e.bw.put(&passCode)
			a0 = b2
		} else if d := a1 - b1; -3 <= d && d <= 3 {
			e.bw.put(&verticalCodes[d+3])
			a0 = a1
			color = 1 - color
		} else {
			start := a0
			if start < 0 {
				start = 0
			}
			e.bw.put(&horizontalCode)
			e.putRun(a1-start, color)
			e.putRun(a2-a1, 1-color)
			a0 = a2
		}
	}
}

// putRun writes a run length, largest unit first: as many 2560 make up
// codes as needed, then at most one make up code and a terminating code.
func (e *encoder) putRun(run, color int) {
	terminating, makeup := &whiteTerminatingCodes, &whiteMakeupCodes
	if color == black {
		terminating, makeup = &blackTerminatingCodes, &blackMakeupCodes
	}
	last := &extendedMakeupCodes[len(extendedMakeupCodes)-1]
	for run >= last.value {
		e.bw.put(last)
		run -= last.value
	}
	if m := run / 64; m > len(makeup) {
		e.bw.put(&extendedMakeupCodes[m-len(makeup)-1])
	} else if m > 0 {
		e.bw.put(&makeup[m-1])
	}
	e.bw.put(&terminating[run%64])
}

// putFill writes zero bits so that a following EOL ends on a byte
// boundary.
func (e *encoder) putFill() {
	for n := fillBits(e.bw.pending()); n > 0; n-- {
		e.bw.put(&data0Code)
	}
}

// fillBits returns the number of fill bits needed before an EOL when
// pending bits are not yet flushed.
func fillBits(pending int) int {
	return (8 - (pending+eolCode.length)%8) % 8
}

// putEOL writes an EOL, followed by the tag bit when tagged.
func (e *encoder) putEOL(tagged, oneD bool) {
	e.bw.put(&eolCode)
	if tagged {
		e.putTag(oneD)
	}
}

// putTag writes 1 before a one-dimensional row and 0 before a
// two-dimensional one.
func (e *encoder) putTag(oneD bool) {
	if oneD {
		e.bw.put(&data1Code)
	} else {
		e.bw.put(&data0Code)
	}
}

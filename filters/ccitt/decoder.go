package ccitt

import (
	"errors"
	"io"
)

var errUncompressed = errors.New("uncompressed mode is not enabled")

// decoder decodes single rows into cur, using ref as reference line.
// Stream level markers (EOL, tag bits, RTC) are handled by Reader.
type decoder struct {
	br           bitReader
	tables       *codeTables
	columns      int
	uncompressed bool

	cur, ref *scanline
	last     int // colour of the last decoded pixel, used in uncompressed mode
}

// next reads one code of set, the end of the input being an error.
func (d *decoder) next(set *codeSet) (*code, error) {
	c, err := d.br.readCode(set)
	if err == io.EOF {
		err = errPrematureEnd
	}
	return c, err
}

// decodeRow decodes one row into cur.
func (d *decoder) decodeRow(twoD bool) error {
	d.cur.clear()
	var err error
	if twoD {
		err = d.decode2D()
	} else {
		err = d.decode1D()
	}
	d.cur.finishEdges()
	return err
}

// readRun reads a complete run length: make up codes followed by one
// terminating code. It returns a nil code, or the extension code when
// the run is replaced by uncompressed data.
func (d *decoder) readRun(color int) (int, *code, error) {
	set := d.tables.runSet(color == black)
	run := 0
	for {
		c, err := d.next(set)
		if err != nil {
			return 0, nil, err
		}
		switch c.kind {
		case kindTerminating:
			return run + c.value, nil, nil
		case kindMakeup:
			run += c.value
		case kindExtension:
			if run != 0 {
				return 0, nil, errInvalidCode
			}
			return 0, c, nil
		case kindEOL:
			return 0, nil, errUnexpectedEOL
		default:
			return 0, nil, errInvalidCode
		}
	}
}

func (d *decoder) decode1D() error {
	a0, color := 0, white
	for a0 < d.columns {
		run, ext, err := d.readRun(color)
		if err != nil {
			return err
		}
		if ext != nil {
			d.last = color
			a0, color, err = d.readUncompressed(a0)
			if err != nil {
				return err
			}
			continue
		}
		end := a0 + run
		if end > d.columns {
			return errColumns
		}
		if color == black {
			d.cur.setRun(a0, end)
		}
		a0 = end
		if a0 < d.columns {
			d.cur.addEdge(a0)
		}
		color = 1 - color
	}
	return nil
}

func (d *decoder) decode2D() error {
	cur, ref := d.cur, d.ref
	a0, color := -1, white
	for a0 < d.columns {
		c, err := d.next(&d.tables.modes)
		if err != nil {
			return err
		}
		start := a0
		if start < 0 {
			start = 0
		}
		switch c.kind {
		case kindPass:
			_, b2 := ref.changes(a0, color)
			if color == black {
				cur.setRun(start, b2)
			}
			a0 = b2
		case kindVertical:
			b1, _ := ref.changes(a0, color)
			a1 := b1 + c.value
			if a1 < 0 || a1 > d.columns || (a0 >= 0 && a1 <= a0) {
				return errColumns
			}
			if color == black {
				cur.setRun(start, a1)
			}
			if a1 < d.columns {
				cur.addEdge(a1)
			}
			a0 = a1
			color = 1 - color
		case kindHorizontal:
			run1, ext, err := d.readRun(color)
			if err == nil && ext != nil {
				err = errInvalidCode
			}
			if err != nil {
				return err
			}
			run2, ext, err := d.readRun(1 - color)
			if err == nil && ext != nil {
				err = errInvalidCode
			}
			if err != nil {
				return err
			}
			a1 := start + run1
			a2 := a1 + run2
			if a2 > d.columns {
				return errColumns
			}
			if color == black {
				cur.setRun(start, a1)
			} else {
				cur.setRun(a1, a2)
			}
			if a1 < d.columns {
				cur.addEdge(a1)
			}
			if a2 < d.columns {
				cur.addEdge(a2)
			}
			a0 = a2
		case kindExtension:
			d.last = color
			pos, next, err := d.readUncompressed(start)
			if err != nil {
				return err
			}
			a0, color = pos, next
			if pos == 0 {
				a0 = -1
			}
		case kindEOL:
			return errUnexpectedEOL
		default:
			return errInvalidCode
		}
	}
	return nil
}

// putPixels paints n pixels of the given colour from pos, and returns
// the next position.
func (d *decoder) putPixels(pos, n, color int) (int, error) {
	end := pos + n
	if end > d.columns {
		return pos, errColumns
	}
	if n == 0 {
		return pos, nil
	}
	if color != d.last {
		d.cur.addEdge(pos)
		d.last = color
	}
	if color == black {
		d.cur.setRun(pos, end)
	}
	return end, nil
}

// readUncompressed decodes uncompressed mode data from pixel pos, up to
// and including the exit code. It returns the position and the colour of
// the next run.
func (d *decoder) readUncompressed(pos int) (int, int, error) {
	if !d.uncompressed {
		return 0, 0, errUncompressed
	}
	for {
		c, err := d.next(&d.tables.uncompressed)
		if err != nil {
			return 0, 0, err
		}
		switch c.kind {
		case kindUncompressed:
			if pos, err = d.putPixels(pos, c.value, white); err != nil {
				return 0, 0, err
			}
			if c.black {
				if pos, err = d.putPixels(pos, 1, black); err != nil {
					return 0, 0, err
				}
			}
		case kindUncompressedExit:
			if pos, err = d.putPixels(pos, c.value, white); err != nil {
				return 0, 0, err
			}
			next := white
			if c.black {
				next = black
			}
			if next != d.last && pos < d.columns {
				d.cur.addEdge(pos)
			}
			return pos, next, nil
		case kindEOL:
			return 0, 0, errUnexpectedEOL
		default:
			return 0, 0, errInvalidCode
		}
	}
}

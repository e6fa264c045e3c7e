package ccitt

import "math/bits"

// pixel colours, as stored in the bitmaps
const (
	white = 0
	black = 1
)

// guardWord follows the last word of every bitmap. It holds both a black
// and a white pixel, so that a scan for either colour stops on it.
const guardWord = 0x80000000

// edgePadding is the number of copies of Columns written after the last
// changing element.
const edgePadding = 3

// scanline is one row of pixels, stored both as a bitmap and as the list
// of its changing elements.
//
// The bitmap packs 32 pixels per word, the leftmost pixel in the most
// significant bit, with 1 for black.
//
// edges[0] is -1, followed by the positions where the colour changes:
// odd indexes start a black run, even ones a white run. The list is
// terminated by edgePadding copies of columns. When a row has more
// changing elements than limit, edgesOK is false and only the bitmap
// is meaningful.
type scanline struct {
	columns int
	words   []uint32

	edges   []int
	limit   int
	edgesOK bool
	cursor  int // index in edges, kept between calls to changes
}

func newScanline(columns, limit int) *scanline {
	nw := (columns + 31) / 32
	s := &scanline{
		columns: columns,
		words:   make([]uint32, nw+1),
		edges:   make([]int, 0, 1+limit+edgePadding),
		limit:   limit,
	}
	s.words[nw] = guardWord
	s.clear()
	s.finishEdges()
	return s
}

// clear sets every pixel to white and empties the changing elements.
func (s *scanline) clear() {
	nw := len(s.words) - 1
	for i := range s.words[:nw] {
		s.words[i] = 0
	}
	s.edges = append(s.edges[:0], -1)
	s.edgesOK = true
	s.cursor = 1
}

func (s *scanline) pixel(x int) int {
	return int(s.words[x>>5]>>(31-uint(x&31))) & 1
}

// find returns the position of the first pixel of the given colour
// at or after start, or columns if there is none.
func (s *scanline) find(start, color int) int {
	if start >= s.columns {
		return s.columns
	}
	var mask uint32
	if color == white {
		mask = ^uint32(0)
	}
	w := start >> 5
	word := (s.words[w] ^ mask) & (^uint32(0) >> uint(start&31))
	for word == 0 {
		w++
		word = s.words[w] ^ mask
	}
	if p := w<<5 + bits.LeadingZeros32(word); p < s.columns {
		return p
	}
	return s.columns
}

// setRun paints the pixels in [from, to) black.
func (s *scanline) setRun(from, to int) {
	if from >= to {
		return
	}
	fw, tw := from>>5, (to-1)>>5
	fm := ^uint32(0) >> uint(from&31)
	tm := ^uint32(0) << uint(31-((to-1)&31))
	if fw == tw {
		s.words[fw] |= fm & tm
		return
	}
	s.words[fw] |= fm
	for w := fw + 1; w < tw; w++ {
		s.words[w] = ^uint32(0)
	}
	s.words[tw] |= tm
}

// addEdge records a colour change at p, which must not be before the
// last recorded change. A change at the same position as the last one
// cancels it.
func (s *scanline) addEdge(p int) {
	if !s.edgesOK {
		return
	}
	n := len(s.edges)
	if n > 1 && s.edges[n-1] == p {
		s.edges = s.edges[:n-1]
		return
	}
	if n-1 == s.limit {
		s.edgesOK = false
		return
	}
	s.edges = append(s.edges, p)
}

// finishEdges terminates the changing elements of a complete row.
func (s *scanline) finishEdges() {
	if s.edgesOK {
		for i := 0; i < edgePadding; i++ {
			s.edges = append(s.edges, s.columns)
		}
	}
	s.cursor = 1
}

// scanEdges rebuilds the changing elements from the bitmap.
func (s *scanline) scanEdges() {
	s.edges = append(s.edges[:0], -1)
	s.edgesOK = true
	color := black
	for p := s.find(0, color); p < s.columns && s.edgesOK; p = s.find(p, color) {
		s.addEdge(p)
		color = 1 - color
	}
	s.finishEdges()
}

// changes returns the first changing element after a0 whose colour is
// opposite to color, and the next changing element after it. Both are
// columns when there is none. The imaginary pixel before the row is white.
//
// Applied to the reference line it gives b1 and b2, applied to the coding
// line a1 and a2.
func (s *scanline) changes(a0, color int) (int, int) {
	if s.edgesOK {
		return s.changesFromEdges(a0, color)
	}
	return s.changesFromBitmap(a0, color)
}

// changesFromEdges requires a0 < columns.
func (s *scanline) changesFromEdges(a0, color int) (int, int) {
	e, i := s.edges, s.cursor
	for e[i-1] > a0 {
		i--
	}
	for e[i] <= a0 {
		i++
	}
	if (i&1 == 1) != (color == white) {
		i++
	}
	s.cursor = i
	return e[i], e[i+1]
}

func (s *scanline) changesFromBitmap(a0, color int) (int, int) {
	x := a0 + 1
	if x >= s.columns {
		return s.columns, s.columns
	}
	prev := white
	if x > 0 {
		prev = s.pixel(x - 1)
	}
	p := x
	if prev != color {
		// inside a run of the opposite colour: skip to its end first
		p = s.find(x, color)
	}
	b1 := s.find(p, 1-color)
	b2 := s.find(b1, color)
	return b1, b2
}

// pack writes the row to dst, MSB first. The padding bits of the last
// byte take the colour of the last pixel. The bits are inverted unless
// blackIs1.
func (s *scanline) pack(dst []byte, blackIs1 bool) {
	n := (s.columns + 7) / 8
	for i := range dst[:n] {
		dst[i] = byte(s.words[i>>2] >> uint(24-8*(i&3)))
	}
	if r := s.columns & 7; r != 0 {
		pad := byte(0xff) >> uint(r)
		if s.pixel(s.columns-1) == black {
			dst[n-1] |= pad
		} else {
			dst[n-1] &^= pad
		}
	}
	if !blackIs1 {
		for i := range dst[:n] {
			dst[i] = ^dst[i]
		}
	}
}

// unpack loads the row from src, the inverse of pack. Padding bits are
// ignored.
func (s *scanline) unpack(src []byte, blackIs1 bool) {
	nw := len(s.words) - 1
	for i := range s.words[:nw] {
		s.words[i] = 0
	}
	for i, b := range src[:(s.columns+7)/8] {
		if !blackIs1 {
			b = ^b
		}
		s.words[i>>2] |= uint32(b) << uint(24-8*(i&3))
	}
	if r := s.columns & 31; r != 0 {
		s.words[nw-1] &= ^uint32(0) << uint(32-r)
	}
}

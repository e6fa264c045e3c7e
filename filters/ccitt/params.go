package ccitt

import "fmt"

// MaxColumns is the largest supported row width.
const MaxColumns = 1 << 20

// Params holds the parameters of a CCITT encoded image, with the
// meaning of the CCITTFaxDecode filter parameters.
type Params struct {
	// K selects the coding scheme: K < 0 is pure two-dimensional (Group 4),
	// K == 0 pure one-dimensional (Group 3 MH), and K > 0 mixed (Group 3 MR)
	// where at most K-1 two-dimensional rows follow a one-dimensional row.
	K int

	Columns int // width of the rows, in pixels
	Rows    int // number of rows, or 0 if unknown

	EndOfLine        bool // rows are preceded by an EOL code
	EncodedByteAlign bool // rows start on a byte boundary
	EndOfBlock       bool // data is terminated by RTC or EOFB
	BlackIs1         bool // 1 bits are black pixels in the unpacked rows

	// Uncompressed allows the decoder to accept uncompressed mode.
	// It has no effect on encoding.
	Uncompressed bool

	// EdgeLimit bounds the number of changing elements recorded per row,
	// 0 meaning Columns. Rows with more changes are scanned from the
	// bitmap instead.
	EdgeLimit int
}

// DefaultParams returns the default values of the filter parameters.
func DefaultParams() Params {
	return Params{Columns: 1728, EndOfBlock: true}
}

func (p Params) validate() error {
	if p.Columns <= 0 || p.Columns > MaxColumns {
		return fmt.Errorf("%w: Columns %d", ErrConfig, p.Columns)
	}
	if p.Rows < 0 {
		return fmt.Errorf("%w: Rows %d", ErrConfig, p.Rows)
	}
	if p.EdgeLimit < 0 {
		return fmt.Errorf("%w: EdgeLimit %d", ErrConfig, p.EdgeLimit)
	}
	return nil
}

// rowBytes returns the size of a packed row.
func (p Params) rowBytes() int { return (p.Columns + 7) / 8 }

// rtcLength returns the number of consecutive EOLs ending the data.
func (p Params) rtcLength() int {
	if p.K < 0 {
		return 2
	}
	return 6
}

// rowEOLs returns true if every row is preceded by an EOL. Two-dimensional
// streams never use them.
func (p Params) rowEOLs() bool { return p.EndOfLine && p.K >= 0 }

// edgeLimit returns the capacity of the changing elements tables.
func (p Params) edgeLimit() int {
	if p.EdgeLimit == 0 || p.EdgeLimit > p.Columns {
		return p.Columns
	}
	return p.EdgeLimit
}

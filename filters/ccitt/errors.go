package ccitt

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by the errors returned for invalid Params.
var ErrConfig = errors.New("invalid CCITT parameters")

// ProtocolError is returned when the encoded data is malformed, or when
// more rows than announced are written. It is fatal to the stream.
type ProtocolError struct {
	Row int // zero based index of the row being processed
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("CCITT stream: row %d: %s", e.Row, e.Msg)
}

// low level failures, turned into a *ProtocolError with the current row
var (
	errInvalidCode   = errors.New("invalid code word")
	errPrematureEnd  = errors.New("premature end of data")
	errColumns       = errors.New("row exceeds the number of columns")
	errUnexpectedEOL = errors.New("unexpected EOL in row")
)

func protocolError(row int, err error) error {
	return &ProtocolError{Row: row, Msg: err.Error()}
}

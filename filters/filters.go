// Package filters detects the end of CCITT fax data embedded in a larger
// byte stream, such as inline images in a PDF content stream.
// Regular stream objects provide a Length information, but inline data images
// don't, which requires to detect the End of Data marker, which depends on the
// encoding parameters.
// See the ccitt sub-package to encode and decode the data itself.
package filters

import (
	"bufio"
	"io"
)

// CCITTFax is the PDF name of the filter (see 7.4.6 of ISO 32000-1).
const CCITTFax = "CCITTFaxDecode"

// Skipper is able to detect the end of a filtered content.
// Since some filters take additional parameters, skippers should
// be directly created by their concrete types, but this interface is exposed as a
// convenience.
type Skipper interface {
	// Skip reads the input data and look for an EOD marker.
	// It returns the number of bytes read to go right after EOD.
	// Note that, due to buffering, the given reader may actually have read a bit more.
	Skip(io.Reader) (int, error)
}

// countReader counts the bytes consumed from a buffered source.
// A byte given back with UnreadByte is not counted.
type countReader struct {
	src       *bufio.Reader
	totalRead int
}

func newCountReader(src io.Reader) *countReader {
	return &countReader{src: bufio.NewReader(src)}
}

func (c *countReader) Read(p []byte) (n int, err error) {
	n, err = c.src.Read(p)
	c.totalRead += n
	return n, err
}

func (c *countReader) ReadByte() (byte, error) {
	b, err := c.src.ReadByte()
	if err == nil {
		c.totalRead++
	}
	return b, err
}

func (c *countReader) UnreadByte() error {
	if err := c.src.UnreadByte(); err != nil {
		return err
	}
	c.totalRead--
	return nil
}

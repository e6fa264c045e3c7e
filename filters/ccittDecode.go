package filters

import (
	"io"

	"github.com/benoitkugler/ccittfax/filters/ccitt"
	"github.com/pdfcpu/pdfcpu/pkg/log"
)

// SkipperCCITT detects the end of CCITT data, which is the end of block
// marker (RTC or EOFB) when Params.EndOfBlock is set, the last row when
// Params.Rows is set, or the end of the input otherwise.
type SkipperCCITT struct {
	Params ccitt.Params
}

// Skip implements Skipper for a CCITT filter.
func (f SkipperCCITT) Skip(encoded io.Reader) (int, error) {
	cr := newCountReader(encoded)
	r, err := ccitt.NewReader(cr, f.Params)
	if err != nil {
		return 0, err
	}
	row := make([]byte, r.RowBytes())
	for {
		_, err = r.ReadRow(row)
		if err == io.EOF {
			break
		}
		if err != nil {
			return cr.totalRead, err
		}
	}
	// bytes pushed back are already uncounted; whole bytes still
	// buffered by the decoder were not part of the data
	n := cr.totalRead - r.Buffered()
	log.Parse.Printf("%s: end of data after %d rows, %d bytes\n", CCITTFax, r.Rows(), n)
	return n, nil
}

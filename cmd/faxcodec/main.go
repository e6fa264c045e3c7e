// This tool converts between CCITT fax data and images.
//
//	faxcodec [flags] decode in.fax out.png|out.bmp
//	faxcodec [flags] encode in.png|in.bmp out.fax
//	faxcodec [flags] pdf in.fax out.pdf
//
// The flags describe the fax data, see ccitt.Params.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	stdlog "log"
	"os"

	"github.com/benoitkugler/ccittfax/filters/ccitt"
	"github.com/pdfcpu/pdfcpu/pkg/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errUsage = errors.New("usage: faxcodec [flags] decode|encode|pdf input output")

func check(err error) {
	if err != nil {
		fmt.Println("fatal error", err)
		os.Exit(1)
	}
}

// parseFlags maps the command line flags onto ccitt.Params.
func parseFlags(args []string, output io.Writer) (ccitt.Params, bool, []string, error) {
	p := ccitt.DefaultParams()
	fs := flag.NewFlagSet("faxcodec", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&p.K, "k", p.K, "coding scheme: < 0 for Group 4, 0 for Group 3 1-D, > 0 for Group 3 2-D")
	fs.IntVar(&p.Columns, "columns", p.Columns, "width of the image, in pixels")
	fs.IntVar(&p.Rows, "rows", p.Rows, "height of the image, 0 if unknown")
	fs.BoolVar(&p.EndOfLine, "eol", p.EndOfLine, "rows are preceded by an EOL")
	fs.BoolVar(&p.EncodedByteAlign, "align", p.EncodedByteAlign, "rows are byte aligned")
	fs.BoolVar(&p.EndOfBlock, "eob", p.EndOfBlock, "data is terminated by RTC or EOFB")
	fs.BoolVar(&p.BlackIs1, "blackis1", p.BlackIs1, "1 bits are black pixels in raw rows")
	fs.BoolVar(&p.Uncompressed, "uncompressed", p.Uncompressed, "accept uncompressed mode")
	verbose := fs.Bool("v", false, "log the codec events on stderr")
	if err := fs.Parse(args); err != nil {
		return p, false, nil, err
	}
	return p, *verbose, fs.Args(), nil
}

func setupLogging() {
	log.SetReadLogger(stdlog.New(os.Stderr, "READ: ", 0))
	log.SetWriteLogger(stdlog.New(os.Stderr, "WRITE: ", 0))
	log.SetDebugLogger(stdlog.New(os.Stderr, "DEBUG: ", 0))
	log.SetCLILogger(stdlog.New(os.Stderr, "", 0))
}

// run executes the command line `args` (without the program name),
// and writes a summary to `stdout`.
func run(args []string, stdout io.Writer) error {
	p, verbose, args, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return errUsage
	}
	if verbose {
		setupLogging()
	}
	printer := message.NewPrinter(language.English)
	command, input, output := args[0], args[1], args[2]
	log.CLI.Printf("%s %s to %s\n", command, input, output)

	switch command {
	case "decode", "pdf":
		data, err := ioutil.ReadFile(input)
		if err != nil {
			return err
		}
		rows, err := ccitt.Decode(data, p)
		if err != nil {
			return err
		}
		img := toImage(rows, p.Columns, p.BlackIs1)
		if command == "pdf" {
			err = writePDF(output, input, img)
		} else {
			err = writeImage(output, img)
		}
		if err != nil {
			return err
		}
		printer.Fprintf(stdout, "%s: %d x %d pixels decoded from %d bytes\n", input, p.Columns, img.Bounds().Dy(), len(data))
	case "encode":
		img, err := readImage(input)
		if err != nil {
			return err
		}
		rows, columns, height := fromImage(img, p.BlackIs1)
		p.Columns = columns
		encoded, err := ccitt.Encode(rows, p)
		if err != nil {
			return err
		}
		if err = ioutil.WriteFile(output, encoded, 0o644); err != nil {
			return err
		}
		printer.Fprintf(stdout, "%s: %d x %d pixels encoded in %d bytes\n", input, columns, height, len(encoded))
	default:
		return errUsage
	}
	return nil
}

func main() {
	check(run(os.Args[1:], os.Stdout))
}

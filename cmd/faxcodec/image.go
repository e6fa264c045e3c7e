package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/image/bmp"
)

// toImage expands packed rows to a gray image.
func toImage(rows []byte, columns int, blackIs1 bool) *image.Gray {
	rowBytes := (columns + 7) / 8
	height := len(rows) / rowBytes
	img := image.NewGray(image.Rect(0, 0, columns, height))
	for y := 0; y < height; y++ {
		row := rows[y*rowBytes:]
		line := img.Pix[y*img.Stride:]
		for x := 0; x < columns; x++ {
			bit := row[x/8]&(0x80>>uint(x%8)) != 0
			if bit != blackIs1 {
				line[x] = 0xff
			}
		}
	}
	return img
}

// fromImage packs `img`, pixels darker than 50% gray being black.
func fromImage(img image.Image, blackIs1 bool) (rows []byte, columns, height int) {
	b := img.Bounds()
	columns, height = b.Dx(), b.Dy()
	rowBytes := (columns + 7) / 8
	rows = make([]byte, rowBytes*height)
	for y := 0; y < height; y++ {
		for x := 0; x < columns; x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			isBlack := g.Y < 0x80
			if isBlack == blackIs1 {
				rows[y*rowBytes+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return rows, columns, height
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f) // png and bmp are registered
	return img, err
}

// writeImage uses the BMP format for .bmp files, PNG otherwise.
func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePDF writes a one page document showing `img`, scaled to fit
// the page.
func writePDF(path, title string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(filepath.Base(title), true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("fax", opts, &buf)
	pageW, pageH := pdf.GetPageSize()
	b := img.Bounds()
	w, h := pageW, pageW*float64(b.Dy())/float64(b.Dx())
	if h > pageH {
		w, h = pageH*float64(b.Dx())/float64(b.Dy()), pageH
	}
	pdf.ImageOptions("fax", 0, 0, w, h, false, opts, 0, "")
	return pdf.OutputFileAndClose(path)
}

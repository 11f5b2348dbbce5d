// psf2png renders a message with a console font into a PNG image:
//
//	psf2png -f /usr/share/consolefonts/Lat2-Terminus16.psf.gz -m "Hello" -o hello.png
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/nschoellhorn/psf"
)

var (
	fontFile = flag.String("f", "", "PSF font file to load (optionally gzipped)")
	msg      = flag.String("m", "Hello, World!", "message text to draw")
	outFile  = flag.String("o", "message.png", "output PNG filename")
	margin   = flag.Int("p", 4, "padding in pixels around the text")
)

func main() {
	flag.Parse()

	if *fontFile == "" {
		logrus.Fatal("-f is required")
	}

	font, err := psf.Load(*fontFile)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load font")
	}

	pad := *margin
	w := font.MeasureString(*msg) + 2*pad
	h := font.Height() + 2*pad
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white background
	}

	font.DrawString(img, pad, pad, *msg, color.Black)

	f, err := os.OpenFile(*outFile, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create output file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logrus.WithError(err).Fatal("failed to encode png")
	}

	logrus.WithFields(logrus.Fields{
		"file": *outFile,
		"size": img.Bounds().Size(),
	}).Info("wrote image")
}

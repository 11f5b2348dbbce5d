// psfdump loads a console font and prints selected glyphs as ASCII art.
// Useful for checking what a font in /usr/share/consolefonts actually looks
// like without switching the terminal to it:
//
//	psfdump -f /usr/share/consolefonts/Lat2-Terminus16.psf.gz "Abc"
//
// With no characters given it prints the font geometry only.
package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nschoellhorn/psf"
)

var (
	fontFile = flag.String("f", "", "PSF font file to load (optionally gzipped)")
	byIndex  = flag.Bool("i", false, "treat arguments as decimal glyph indices instead of characters")
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

	fmt.Printf("%s: %dx%d, %d glyphs, unicode table: %v\n",
		*fontFile, font.Width(), font.Height(), font.Count(), font.HasUnicodeTable())

	for _, arg := range flag.Args() {
		if *byIndex {
			var i int
			if _, err := fmt.Sscanf(arg, "%d", &i); err != nil {
				logrus.WithField("arg", arg).Warn("not a glyph index")
				continue
			}
			g := font.Glyph(i)
			if g == nil {
				logrus.WithField("index", i).Warn("no such glyph")
				continue
			}
			fmt.Printf("%d:\n%s\n", i, g)
			continue
		}

		for _, c := range arg {
			g := font.Char(c)
			if g == nil {
				logrus.WithField("char", string(c)).Warn("character not in font")
				continue
			}
			fmt.Printf("%c:\n%s\n", c, g)
		}
	}
}

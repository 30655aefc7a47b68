// Command genart regenerates the sample game's artwork. Images are
// written in the exact subset the engine's decoder reads back: 8-bit
// RGBA, no interlacing, every scanline filter 0.
package main

import (
	"flag"
	"image"
	"path/filepath"

	"github.com/pixil98/go-log/log"
)

func main() {
	out := flag.String("out", "data/assets/images", "directory to write images into")
	flag.Parse()

	logger := log.NewLogger()

	scenes := map[string]*image.NRGBA{
		"pirate_deck.png":    pirateDeck(256, 144),
		"captains_cabin.png": captainsCabin(256, 144),
		"PirateMap.png":      pirateMap(256, 144),
	}

	for name, img := range scenes {
		path := filepath.Join(*out, name)
		if err := writePNG(path, img); err != nil {
			logger.WithError(err).Fatal("writing image")
		}
		logger.WithField("path", path).Info("wrote image")
	}
}

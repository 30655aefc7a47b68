package main

import (
	"image"
	"image/color"
	"math"
)

// lerp interpolates between two channel values, truncating like integer
// division so regenerated images stay byte-stable.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// gradientRow paints row y with a horizontal blend from start to end.
func gradientRow(img *image.NRGBA, y int, start, end color.NRGBA) {
	w := img.Rect.Dx()
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w-1)
		img.SetNRGBA(x, y, color.NRGBA{
			R: lerp(start.R, end.R, t),
			G: lerp(start.G, end.G, t),
			B: lerp(start.B, end.B, t),
			A: 255,
		})
	}
}

// fillRow paints row y a single color.
func fillRow(img *image.NRGBA, y int, c color.NRGBA) {
	w := img.Rect.Dx()
	for x := 0; x < w; x++ {
		img.SetNRGBA(x, y, c)
	}
}

// pirateDeck is the opening scene: sky over sea over planking, with a
// mast and sail amidships.
func pirateDeck(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	horizon := int(float64(h) * 0.45)
	deckLine := int(float64(h) * 0.7)

	skyTop := color.NRGBA{30, 80, 160, 255}
	skyBottom := color.NRGBA{90, 150, 210, 255}
	seaTop := color.NRGBA{15, 60, 120, 255}
	seaBottom := color.NRGBA{5, 25, 80, 255}
	deck := color.NRGBA{120, 85, 45, 255}

	for y := 0; y < h; y++ {
		switch {
		case y < horizon:
			gradientRow(img, y, skyTop, skyBottom)
		case y < deckLine:
			gradientRow(img, y, seaTop, seaBottom)
		default:
			fillRow(img, y, deck)
		}
	}

	// mast
	mastX := w / 2
	for y := int(float64(h) * 0.45); y < int(float64(h)*0.9); y++ {
		for dx := -2; dx <= 2; dx++ {
			img.SetNRGBA(mastX+dx, y, color.NRGBA{110, 70, 40, 255})
		}
	}

	// sail, shaded slightly darker toward the boom
	sailHeight := int(float64(h) * 0.18)
	sailWidth := int(float64(w) * 0.25)
	top := int(float64(h) * 0.38)
	left := mastX - sailWidth/2
	for y := top; y < top+sailHeight; y++ {
		blend := float64(y-top) / math.Max(1, float64(sailHeight-1))
		shade := uint8(240 - 40*blend)
		for x := left; x < left+sailWidth; x++ {
			img.SetNRGBA(x, y, color.NRGBA{shade, shade, shade + 10, 255})
		}
	}

	// deck rails
	rail := color.NRGBA{80, 50, 30, 255}
	for x := 0; x < w; x += 6 {
		for y := deckLine; y < min(h, deckLine+6); y++ {
			img.SetNRGBA(x, y, rail)
		}
	}

	return img
}

// captainsCabin is the interior scene: dark paneling, a chart table with
// the treasure map laid out, and a lantern glow in the corner.
func captainsCabin(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	wallTop := color.NRGBA{70, 40, 25, 255}
	wallBottom := color.NRGBA{40, 20, 12, 255}
	floor := color.NRGBA{60, 35, 20, 255}

	floorLine := int(float64(h) * 0.65)
	for y := 0; y < h; y++ {
		if y < floorLine {
			gradientRow(img, y, wallTop, wallBottom)
		} else {
			fillRow(img, y, floor)
		}
	}

	// chart table
	tableTop := int(float64(h) * 0.55)
	tableLeft := int(float64(w) * 0.3)
	tableRight := int(float64(w) * 0.7)
	for y := tableTop; y < tableTop+4; y++ {
		for x := tableLeft; x < tableRight; x++ {
			img.SetNRGBA(x, y, color.NRGBA{100, 65, 35, 255})
		}
	}

	// parchment on the table, fading with height
	mapTop := tableTop - int(float64(h)*0.18)
	mapLeft := tableLeft + int(float64(w)*0.06)
	mapRight := tableRight - int(float64(w)*0.06)
	mapBottom := tableTop - 2
	for y := mapTop; y < mapBottom; y++ {
		tone := uint8(220 - (y-mapTop)*2)
		for x := mapLeft; x < mapRight; x++ {
			img.SetNRGBA(x, y, color.NRGBA{tone, tone - 10, tone - 20, 255})
		}
	}

	// treasure X
	xCenter := (mapLeft + mapRight) / 2
	yCenter := (mapTop + mapBottom) / 2
	red := color.NRGBA{200, 40, 40, 255}
	for delta := -20; delta <= 20; delta++ {
		y := yCenter + delta
		if y < mapTop || y >= mapBottom {
			continue
		}
		if x := xCenter + delta; x >= mapLeft && x < mapRight {
			img.SetNRGBA(x, y, red)
		}
		if x := xCenter - delta; x >= mapLeft && x < mapRight {
			img.SetNRGBA(x, y, red)
		}
	}

	// lantern glow
	lanternX := int(float64(w) * 0.8)
	lanternY := int(float64(h) * 0.25)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x - lanternX)
			dy := float64(y - lanternY)
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= 40 {
				continue
			}
			strength := (40 - dist) / 40
			existing := img.NRGBAAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampAdd(existing.R, 80*strength),
				G: clampAdd(existing.G, 60*strength),
				B: clampAdd(existing.B, 20*strength),
				A: 255,
			})
		}
	}

	return img
}

// pirateMap is the treasure chart itself: weathered parchment, an island,
// a dashed route, and the X.
func pirateMap(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	// parchment, darkening toward the bottom edge
	for y := 0; y < h; y++ {
		fade := uint8(y / 6)
		gradientRow(img, y,
			color.NRGBA{228 - fade, 212 - fade, 170 - fade, 255},
			color.NRGBA{208 - fade, 188 - fade, 140 - fade, 255})
	}

	// island, squashed toward the horizontal
	islandX := int(float64(w) * 0.62)
	islandY := int(float64(h) * 0.55)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x - islandX)
			dy := float64(y-islandY) * 1.8
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < float64(h)/4 {
				img.SetNRGBA(x, y, color.NRGBA{150, 158, 110, 255})
			} else if dist < float64(h)/4+2 {
				img.SetNRGBA(x, y, color.NRGBA{110, 96, 64, 255})
			}
		}
	}

	// dashed route from the cove entrance to the X
	startX := int(float64(w) * 0.18)
	startY := int(float64(h) * 0.28)
	const steps = 40
	for i := 0; i <= steps; i += 2 {
		t := float64(i) / steps
		x := startX + int(t*float64(islandX-startX))
		y := startY + int(t*float64(islandY-startY))
		img.SetNRGBA(x, y, color.NRGBA{96, 64, 32, 255})
		img.SetNRGBA(x+1, y, color.NRGBA{96, 64, 32, 255})
	}

	// the X
	red := color.NRGBA{200, 40, 40, 255}
	for delta := -10; delta <= 10; delta++ {
		for thick := 0; thick < 2; thick++ {
			img.SetNRGBA(islandX+delta, islandY+delta+thick, red)
			img.SetNRGBA(islandX-delta, islandY+delta+thick, red)
		}
	}

	// frame
	border := color.NRGBA{90, 60, 30, 255}
	for t := 0; t < 3; t++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, t, border)
			img.SetNRGBA(x, h-1-t, border)
		}
		for y := 0; y < h; y++ {
			img.SetNRGBA(t, y, border)
			img.SetNRGBA(w-1-t, y, border)
		}
	}

	return img
}

func clampAdd(base uint8, amount float64) uint8 {
	v := float64(base) + amount
	if v > 255 {
		return 255
	}
	return uint8(v)
}

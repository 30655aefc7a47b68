package commands

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-adventure/internal/artwork"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func newMapWorld(details string) *game.World {
	return &game.World{
		Title:         "Map Cove",
		StartLocation: "beach",
		Locations: []*game.Location{
			{ID: "beach", Name: "Beach", Description: "White sand."},
			{
				ID:          "captains_cabin",
				Name:        "Captain's Cabin",
				Description: "A snug cabin.",
				Objects: []*game.Object{
					{ID: "treasure_map", Name: "treasure map", Description: "A chart.", Details: details},
				},
				Pathways: []*game.Pathway{
					{ID: "door", Name: "door", Target: "beach"},
				},
			},
		},
	}
}

// writeMapAsset drops a 1x1 white PNG where the map verb looks for its
// chart. The decoder never checks chunk CRCs, so zeroes suffice.
func writeMapAsset(t *testing.T, dir string) {
	t.Helper()

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write([]byte{0, 255, 255, 255, 255}); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing compressor: %v", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], 1)
	binary.BigEndian.PutUint32(ihdr[4:8], 1)
	ihdr[8] = 8
	ihdr[9] = 6

	var out bytes.Buffer
	out.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	for _, c := range []struct {
		name string
		data []byte
	}{
		{"IHDR", ihdr},
		{"IDAT", idat.Bytes()},
		{"IEND", nil},
	} {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(c.data)))
		out.Write(length[:])
		out.WriteString(c.name)
		out.Write(c.data)
		out.Write([]byte{0, 0, 0, 0})
	}

	err := os.MkdirAll(filepath.Join(dir, "images"), 0755)
	if err != nil {
		t.Fatalf("failed to create asset dir: %v", err)
	}
	err = os.WriteFile(filepath.Join(dir, "images", "PirateMap.png"), out.Bytes(), 0644)
	if err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
}

func TestHandleMapOutsideCabin(t *testing.T) {
	i := NewInterpreter(newMapWorld("X marks the cove."))

	resp := i.Handle(context.Background(), "map")
	testutil.AssertEqual(t, "output", resp.Output, "There is no map to study here.")
}

func TestHandleMapWithoutRenderer(t *testing.T) {
	i := NewInterpreter(newMapWorld("X marks the cove."))
	i.state.Player.LocationID = "captains_cabin"

	resp := i.Handle(context.Background(), "map")
	testutil.AssertEqual(t, "output", resp.Output,
		"X marks the cove.\nMap available at /assets/images/PirateMap.png")
}

func TestHandleMapFallbackText(t *testing.T) {
	i := NewInterpreter(newMapWorld(""))
	i.state.Player.LocationID = "captains_cabin"

	resp := i.Handle(context.Background(), "map")
	testutil.AssertEqual(t, "output", resp.Output,
		"The weathered parchment hints at a hidden cove marked with a bold red X.\n"+
			"Map available at /assets/images/PirateMap.png")
}

func TestHandleMapWithRenderer(t *testing.T) {
	tmpDir := t.TempDir()
	writeMapAsset(t, tmpDir)

	i := NewInterpreter(newMapWorld("X marks the cove."), WithRenderer(artwork.NewRenderer(tmpDir)))
	i.state.Player.LocationID = "captains_cabin"

	resp := i.Handle(context.Background(), "map")
	testutil.AssertEqual(t, "output", resp.Output, "@\nX marks the cove.")
}

func TestHandleMapAliases(t *testing.T) {
	i := NewInterpreter(newMapWorld("X marks the cove."))
	i.state.Player.LocationID = "captains_cabin"
	ctx := context.Background()

	exp := i.Handle(ctx, "map").Output
	for _, alias := range []string{"view map", "study map", "look at map", "go map", "go to the map"} {
		resp := i.Handle(ctx, alias)
		testutil.AssertEqual(t, alias, resp.Output, exp)
	}
}

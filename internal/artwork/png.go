package artwork

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// bitmap is a decoded image: row-major RGBA, 4 bytes per pixel.
type bitmap struct {
	width  int
	height int
	pix    []byte
}

func (b *bitmap) at(x, y int) (r, g, bl, a byte) {
	i := (y*b.width + x) * 4
	return b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]
}

// decodePNG parses the one PNG shape the engine supports: 8-bit depth,
// color type 6 (truecolor with alpha), every scanline filter type 0.
// Chunk CRCs are skipped without verification, and chunk types other than
// IHDR, IDAT, and IEND are ignored. Anything outside that subset is a
// decode failure, not a best-effort render.
func decodePNG(data []byte) (*bitmap, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, fmt.Errorf("not a png file")
	}

	var (
		width, height int
		haveHeader    bool
		idat          []byte
	)

	offset := len(pngSignature)
	for offset < len(data) {
		if offset+8 > len(data) {
			return nil, fmt.Errorf("truncated chunk header")
		}
		length := int(binary.BigEndian.Uint32(data[offset : offset+4]))
		chunkType := string(data[offset+4 : offset+8])
		start := offset + 8
		if start+length+4 > len(data) {
			return nil, fmt.Errorf("truncated %s chunk", chunkType)
		}
		chunk := data[start : start+length]
		offset = start + length + 4

		if chunkType == "IHDR" {
			if length < 10 {
				return nil, fmt.Errorf("short IHDR chunk")
			}
			width = int(binary.BigEndian.Uint32(chunk[0:4]))
			height = int(binary.BigEndian.Uint32(chunk[4:8]))
			bitDepth := chunk[8]
			colorType := chunk[9]
			if bitDepth != 8 || colorType != 6 {
				return nil, fmt.Errorf("unsupported png format: depth %d color type %d", bitDepth, colorType)
			}
			haveHeader = true
		} else if chunkType == "IDAT" {
			idat = append(idat, chunk...)
		} else if chunkType == "IEND" {
			break
		}
	}

	if !haveHeader {
		return nil, fmt.Errorf("png missing IHDR")
	}

	raw, err := inflate(idat)
	if err != nil {
		return nil, fmt.Errorf("inflating pixel data: %w", err)
	}

	stride := width * 4
	if len(raw) < height*(stride+1) {
		return nil, fmt.Errorf("truncated pixel data")
	}

	pix := make([]byte, 0, height*stride)
	idx := 0
	for y := 0; y < height; y++ {
		if raw[idx] != 0 {
			return nil, fmt.Errorf("unsupported png filter: %d", raw[idx])
		}
		idx++
		pix = append(pix, raw[idx:idx+stride]...)
		idx += stride
	}

	return &bitmap{width: width, height: height, pix: pix}, nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	// Ignoring close error - reader is over an in-memory buffer
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}

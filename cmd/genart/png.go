package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"os"
	"path/filepath"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// writePNG serializes img as an 8-bit RGBA PNG with unfiltered scanlines.
// The stdlib encoder is avoided on purpose: it picks predictive filters
// per row, and the game's decoder only accepts filter 0.
func writePNG(path string, img *image.NRGBA) error {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	raw := make([]byte, 0, h*(1+w*4))
	for y := 0; y < h; y++ {
		raw = append(raw, 0)
		raw = append(raw, img.Pix[y*img.Stride:y*img.Stride+w*4]...)
	}

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return fmt.Errorf("compressing pixels: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flushing compressor: %w", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(w))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(h))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: rgba
	// compression, filter method, interlace stay zero

	var buf bytes.Buffer
	buf.Write(pngSignature)
	writeChunk(&buf, "IHDR", ihdr)
	writeChunk(&buf, "IDAT", idat.Bytes())
	writeChunk(&buf, "IEND", nil)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeChunk(buf *bytes.Buffer, chunkType string, data []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf.Write(length[:])
	buf.WriteString(chunkType)
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])
}

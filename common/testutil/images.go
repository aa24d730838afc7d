// Package testutil writes small image files for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func NewTestImage(width int, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func WritePng(t testing.TB, dir string, name string, width int, height int) string {
	t.Helper()
	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, NewTestImage(width, height)); err != nil {
		t.Fatal(err)
	}
	return WriteFile(t, dir, name, buffer.Bytes())
}

func WriteGif(t testing.TB, dir string, name string, width int, height int) string {
	t.Helper()
	buffer := &bytes.Buffer{}
	if err := gif.Encode(buffer, NewTestImage(width, height), nil); err != nil {
		t.Fatal(err)
	}
	return WriteFile(t, dir, name, buffer.Bytes())
}

func WriteJpeg(t testing.TB, dir string, name string, width int, height int) string {
	t.Helper()
	return WriteFile(t, dir, name, EncodeJpeg(t, width, height))
}

// WriteJpegWithOrientation stores a JPEG with an EXIF block that holds
// only the Orientation tag.
func WriteJpegWithOrientation(t testing.TB, dir string, name string, width int, height int, orientation uint16) string {
	t.Helper()
	encoded := EncodeJpeg(t, width, height)

	withExif := &bytes.Buffer{}
	// SOI marker first, then the APP1 segment and the rest of the stream
	withExif.Write(encoded[:2])
	withExif.Write(exifSegment(orientation))
	withExif.Write(encoded[2:])

	return WriteFile(t, dir, name, withExif.Bytes())
}

func EncodeJpeg(t testing.TB, width int, height int) []byte {
	t.Helper()
	buffer := &bytes.Buffer{}
	if err := jpeg.Encode(buffer, NewTestImage(width, height), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

func WriteFile(t testing.TB, dir string, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exifSegment(orientation uint16) []byte {
	tiff := &bytes.Buffer{}
	// Intel byte order header, first IFD right after it
	tiff.Write([]byte{'I', 'I', 0x2A, 0x00})
	_ = binary.Write(tiff, binary.LittleEndian, uint32(8))
	// One entry: Orientation (0x0112), SHORT, count 1
	_ = binary.Write(tiff, binary.LittleEndian, uint16(1))
	_ = binary.Write(tiff, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(tiff, binary.LittleEndian, uint16(3))
	_ = binary.Write(tiff, binary.LittleEndian, uint32(1))
	_ = binary.Write(tiff, binary.LittleEndian, orientation)
	_ = binary.Write(tiff, binary.LittleEndian, uint16(0))
	// No next IFD
	_ = binary.Write(tiff, binary.LittleEndian, uint32(0))

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	segment := &bytes.Buffer{}
	segment.Write([]byte{0xFF, 0xE1})
	_ = binary.Write(segment, binary.BigEndian, uint16(len(payload)+2))
	segment.Write(payload)
	return segment.Bytes()
}

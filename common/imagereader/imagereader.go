package imagereader

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
)

const jpegFormat = "jpeg"

// DetectFormat reports the image format of the content, or an error when
// none of the registered decoders recognise it.
func DetectFormat(reader io.Reader) (string, error) {
	_, format, err := image.DecodeConfig(reader)
	return format, err
}

func DetectFileFormat(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return DetectFormat(file)
}

// LoadScaledImage decodes the file at a resolution close to the target
// size. JPEGs are scaled while decoding; other formats are decoded at full
// size. The result is not yet fitted to the size.
func LoadScaledImage(path string, size apitype.Size) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format, err := DetectFormat(file)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if format == jpegFormat {
		return decodeScaledJpeg(file, size.Width(), size.Height())
	}
	decoded, _, err := image.Decode(file)
	return decoded, err
}

// FitToSize scales the image down so that it fits the size while keeping
// its aspect ratio. Smaller images are returned as is.
func FitToSize(img image.Image, size apitype.Size) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= size.Width() && bounds.Dy() <= size.Height() {
		return img
	}
	return imaging.Fit(img, size.Width(), size.Height(), imaging.Linear)
}

func ConvertToRgba(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	start := time.Now()

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting to RGBA: %s", time.Since(start))
	}
	return rgba
}

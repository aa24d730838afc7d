//go:build !windows

package imagereader

import (
	"image"
	"io"

	"github.com/pixiv/go-libjpeg/jpeg"
)

// decodeScaledJpeg lets libjpeg scale in the DCT domain so that the full
// resolution bitmap is never allocated for thumbnails.
func decodeScaledJpeg(reader io.Reader, width int, height int) (image.Image, error) {
	return jpeg.Decode(reader, &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, width, height),
	})
}

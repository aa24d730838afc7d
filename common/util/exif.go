package util

import (
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/image-binder/common/logger"
)

const exifUnchangedOrientation = 1

// LoadExifOrientation returns the EXIF Orientation of the file. Files
// without EXIF data, or with an unreadable tag, are treated as upright.
func LoadExifOrientation(path string) int {
	fileForExif, err := os.Open(path)
	if err != nil {
		return exifUnchangedOrientation
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		logger.Trace.Printf("No Exif data in '%s': %s", path, err)
		return exifUnchangedOrientation
	}

	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return exifUnchangedOrientation
	}
	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return exifUnchangedOrientation
	}
	return orientation
}

package api

import (
	"image"

	"vincit.fi/image-binder/api/apitype"
)

type ImageLoader interface {
	// LoadThumbnail decodes the file and scales it to fit the size.
	LoadThumbnail(path string, size apitype.Size) (*image.RGBA, error)
}

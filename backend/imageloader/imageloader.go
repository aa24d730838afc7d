package imageloader

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/singleflight"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/imagereader"
	"vincit.fi/image-binder/common/logger"
	"vincit.fi/image-binder/common/util"
)

type ThumbnailLoader struct {
	group singleflight.Group

	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	loader := &ThumbnailLoader{}
	logger.Debug.Printf("Image loader initialized")
	return loader
}

// LoadThumbnail decodes the image at path and scales it to fit the size.
// Concurrent calls for the same file and size share one decode.
func (s *ThumbnailLoader) LoadThumbnail(path string, size apitype.Size) (*image.RGBA, error) {
	if size.Width() <= 0 || size.Height() <= 0 {
		return nil, apitype.NewDecodeError(path, fmt.Errorf("invalid thumbnail size %dx%d", size.Width(), size.Height()))
	}

	key := fmt.Sprintf("%s@%dx%d", path, size.Width(), size.Height())
	thumbnail, err, shared := s.group.Do(key, func() (interface{}, error) {
		return s.loadThumbnail(path, size)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Trace.Printf("Shared decode of '%s'", path)
	}
	return thumbnail.(*image.RGBA), nil
}

func (s *ThumbnailLoader) loadThumbnail(path string, size apitype.Size) (*image.RGBA, error) {
	startTime := time.Now()

	orientation := util.LoadExifOrientation(path)
	decodeSize := size
	if imagereader.SwapsAxes(orientation) {
		decodeSize = apitype.SizeOf(size.Height(), size.Width())
	}

	decoded, err := imagereader.LoadScaledImage(path, decodeSize)
	if err != nil {
		return nil, apitype.NewDecodeError(path, err)
	}
	decodeTime := time.Now()

	upright := imagereader.ApplyOrientation(decoded, orientation)
	thumbnail := imagereader.ConvertToRgba(imagereader.FitToSize(upright, size))
	endTime := time.Now()

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Thumbnail '%s' %dx%d: decode %s, scale %s",
			path, thumbnail.Rect.Dx(), thumbnail.Rect.Dy(),
			decodeTime.Sub(startTime), endTime.Sub(decodeTime))
	}
	return thumbnail, nil
}

package api

import "vincit.fi/image-binder/api/apitype"

type ThumbnailSizeListener func(size apitype.ThumbnailSize)

type PreferenceService interface {
	ThumbnailSize() apitype.ThumbnailSize
	SetThumbnailSize(size apitype.ThumbnailSize) apitype.ThumbnailSize
	Subscribe(listener ThumbnailSizeListener)
}

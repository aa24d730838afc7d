package api

import (
	"context"
	"image"

	"vincit.fi/image-binder/api/apitype"
)

// ImageBrowser is what the GUI reads of one browsing session.
type ImageBrowser interface {
	Thumbnail(imageId apitype.ImageId) (*image.RGBA, ThumbnailStatus)
	ThumbnailGeneration() uint64
	ThumbnailSize() apitype.ThumbnailSize
	Selected() (*apitype.ImageFileSequence, apitype.ImageId, bool)
}

// ActionDispatcher performs an action on an image of the given sequence.
type ActionDispatcher interface {
	Perform(ctx context.Context, action apitype.Action, images *apitype.ImageFileSequence, imageId apitype.ImageId) error
}

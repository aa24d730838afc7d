package api

import (
	"image"

	"vincit.fi/image-binder/api/apitype"
)

type ThumbnailStatus int

const (
	ThumbnailAbsent ThumbnailStatus = iota
	ThumbnailPending
	ThumbnailLoaded
	ThumbnailFailed
)

func (s ThumbnailStatus) String() string {
	switch s {
	case ThumbnailAbsent:
		return "Absent"
	case ThumbnailPending:
		return "Pending"
	case ThumbnailLoaded:
		return "Loaded"
	case ThumbnailFailed:
		return "Failed"
	}
	return "Unknown"
}

type ThumbnailStore interface {
	Reset(images *apitype.ImageFileSequence, decodeSize apitype.ThumbnailSize)
	Get(imageId apitype.ImageId) (*image.RGBA, ThumbnailStatus)
	Request(imageId apitype.ImageId) bool
	Status(imageId apitype.ImageId) ThumbnailStatus
	Failure(imageId apitype.ImageId) error
	SetDecodeSize(decodeSize apitype.ThumbnailSize) bool
	Generation() uint64
	Wait()
	Close()
}

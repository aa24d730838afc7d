package api

import (
	"vincit.fi/image-binder/api/apitype"
)

type ErrorCommand struct {
	Message string

	apitype.Command
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int

	apitype.Command
}

type DirectoryChangedCommand struct {
	Directory string

	apitype.Command
}

type ImagesUpdatedCommand struct {
	Images         *apitype.ImageFileSequence
	Subdirectories []string

	apitype.Command
}

type ThumbnailCommand struct {
	Generation uint64
	ImageId    apitype.ImageId

	apitype.Command
}

type ThumbnailSizeCommand struct {
	Size apitype.ThumbnailSize

	apitype.Command
}

// SelectImageCommand and PerformActionCommand carry the sequence the index
// was taken from. A command for a sequence that is no longer shown is stale.
type SelectImageCommand struct {
	Images  *apitype.ImageFileSequence
	ImageId apitype.ImageId

	apitype.Command
}

type PerformActionCommand struct {
	Images  *apitype.ImageFileSequence
	ImageId apitype.ImageId
	Action  apitype.Action

	apitype.Command
}

type Gui interface {
	Run()

	SetImages(*ImagesUpdatedCommand)
	SetThumbnailSize(*ThumbnailSizeCommand)
	ThumbnailReady(*ThumbnailCommand)
	UpdateProgress(*UpdateProgressCommand)
	ShowError(*ErrorCommand)
}

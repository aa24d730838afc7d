package browser

import (
	"image"
	"sync"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
)

// Session owns what is shown: the directory, its images, their thumbnails
// and the selection. Changing the directory replaces all of them.
type Session struct {
	sender      api.Sender
	library     api.ImageLibrary
	thumbnails  api.ThumbnailStore
	preferences api.PreferenceService
	selection   *Selection

	mux           sync.RWMutex
	images        *apitype.ImageFileSequence
	thumbnailSize apitype.ThumbnailSize

	api.ImageBrowser
}

func NewSession(sender api.Sender, library api.ImageLibrary, thumbnails api.ThumbnailStore, preferences api.PreferenceService) *Session {
	session := &Session{
		sender:        sender,
		library:       library,
		thumbnails:    thumbnails,
		preferences:   preferences,
		selection:     NewSelection(),
		images:        apitype.NewEmptyImageFileSequence(""),
		thumbnailSize: preferences.ThumbnailSize(),
	}
	preferences.Subscribe(session.thumbnailSizeChanged)
	return session
}

func (s *Session) ChangeDirectory(command *api.DirectoryChangedCommand) {
	directory := command.Directory
	logger.Info.Printf("Opening directory '%s'", directory)

	images := s.library.LoadImageFiles(directory)
	subdirectories := s.library.ListDirectories(directory)

	s.mux.Lock()
	s.images = images
	s.selection.Reset(images.Len())
	s.thumbnails.Reset(images, s.thumbnailSize)
	s.mux.Unlock()

	s.sender.SendCommandToTopic(api.ImagesUpdated, &api.ImagesUpdatedCommand{
		Images:         images,
		Subdirectories: subdirectories,
	})
}

func (s *Session) Images() *apitype.ImageFileSequence {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.images
}

// Thumbnail schedules a decode the first time an index is asked for.
func (s *Session) Thumbnail(imageId apitype.ImageId) (*image.RGBA, api.ThumbnailStatus) {
	return s.thumbnails.Get(imageId)
}

func (s *Session) ThumbnailGeneration() uint64 {
	return s.thumbnails.Generation()
}

// Select ignores commands for a sequence that has since been replaced.
func (s *Session) Select(command *api.SelectImageCommand) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if command.Images != s.images {
		logger.Debug.Printf("Ignoring selection of %d: %s", command.ImageId, apitype.ErrStaleIndex)
		return
	}
	if !s.selection.Select(command.ImageId) {
		logger.Trace.Printf("Ignoring selection of %d", command.ImageId)
	}
}

// Selected returns the selected index together with the sequence it
// belongs to.
func (s *Session) Selected() (*apitype.ImageFileSequence, apitype.ImageId, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	imageId, ok := s.selection.Selected()
	return s.images, imageId, ok
}

func (s *Session) ThumbnailSize() apitype.ThumbnailSize {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.thumbnailSize
}

// SetThumbnailSize stores the size as a preference. The session itself
// follows the preference through its subscription.
func (s *Session) SetThumbnailSize(command *api.ThumbnailSizeCommand) {
	s.preferences.SetThumbnailSize(command.Size)
}

func (s *Session) thumbnailSizeChanged(size apitype.ThumbnailSize) {
	s.mux.Lock()
	changed := s.thumbnailSize != size
	s.thumbnailSize = size
	s.mux.Unlock()

	if !changed {
		return
	}
	if s.thumbnails.SetDecodeSize(size) {
		logger.Debug.Printf("Thumbnails are decoded again at %s", size)
	}
	s.sender.SendCommandToTopic(api.ThumbnailSizeChanged, &api.ThumbnailSizeCommand{
		Size: size,
	})
}

package preferences

import (
	"sync"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/backend/database"
	"vincit.fi/image-binder/common/logger"
)

// Store persists preference values as strings.
type Store interface {
	Get(key database.PreferenceKey) (string, error)
	Set(key database.PreferenceKey, value string) error
}

type Service struct {
	store Store

	mux           sync.Mutex
	thumbnailSize apitype.ThumbnailSize
	listeners     []api.ThumbnailSizeListener

	api.PreferenceService
}

// NewService reads the stored thumbnail size. A missing or broken value
// falls back to the default.
func NewService(store Store) *Service {
	return &Service{
		store:         store,
		thumbnailSize: loadThumbnailSize(store),
	}
}

func loadThumbnailSize(store Store) apitype.ThumbnailSize {
	value, err := store.Get(database.ThumbnailSizeKey)
	if err != nil {
		logger.Debug.Printf("No stored thumbnail size, using %s: %s", apitype.DefaultThumbnailSize, err)
		return apitype.DefaultThumbnailSize
	}
	size, err := apitype.ParseThumbnailSize(value)
	if err != nil {
		logger.Warn.Printf("Invalid stored thumbnail size '%s', using %s", value, size)
	}
	return size
}

func (s *Service) ThumbnailSize() apitype.ThumbnailSize {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.thumbnailSize
}

// SetThumbnailSize snaps the size to a valid value, stores it and notifies
// the listeners if it changed. Returns the snapped size.
func (s *Service) SetThumbnailSize(size apitype.ThumbnailSize) apitype.ThumbnailSize {
	size = apitype.NewThumbnailSize(int(size))

	s.mux.Lock()
	if s.thumbnailSize == size {
		s.mux.Unlock()
		return size
	}
	s.thumbnailSize = size
	listeners := make([]api.ThumbnailSizeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mux.Unlock()

	if err := s.store.Set(database.ThumbnailSizeKey, size.String()); err != nil {
		logger.Error.Printf("Could not store thumbnail size: %s", err)
	}

	for _, listener := range listeners {
		listener(size)
	}
	return size
}

// Subscribe registers a listener called synchronously after each change.
func (s *Service) Subscribe(listener api.ThumbnailSizeListener) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.listeners = append(s.listeners, listener)
}

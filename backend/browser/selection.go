package browser

import (
	"sync"

	"vincit.fi/image-binder/api/apitype"
)

// Selection holds at most one selected index of the current sequence.
type Selection struct {
	mux      sync.RWMutex
	count    int
	imageId  apitype.ImageId
	selected bool
}

func NewSelection() *Selection {
	return &Selection{imageId: apitype.NoImage}
}

// Reset clears the selection for a new sequence of count images.
func (s *Selection) Reset(count int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.count = count
	s.clear()
}

// Select returns false and keeps the old selection if the index is out of
// range.
func (s *Selection) Select(imageId apitype.ImageId) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if imageId < 0 || int(imageId) >= s.count {
		return false
	}
	s.imageId = imageId
	s.selected = true
	return true
}

func (s *Selection) Selected() (apitype.ImageId, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.imageId, s.selected
}

func (s *Selection) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.clear()
}

func (s *Selection) clear() {
	s.imageId = apitype.NoImage
	s.selected = false
}

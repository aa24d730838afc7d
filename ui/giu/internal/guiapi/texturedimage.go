package guiapi

import (
	"sync"

	"github.com/AllenDang/giu"
)

// TexturedImage is a thumbnail uploaded to the GPU. The texture arrives
// asynchronously; until then IsLoading is true.
type TexturedImage struct {
	mux       sync.RWMutex
	texture   *giu.Texture
	width     float32
	height    float32
	isLoading bool
}

func NewEmptyTexturedImage() *TexturedImage {
	return &TexturedImage{
		isLoading: true,
	}
}

func (s *TexturedImage) Texture() *giu.Texture {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.texture
}

func (s *TexturedImage) Size() (float32, float32) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.width, s.height
}

func (s *TexturedImage) IsLoading() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.isLoading
}

func (s *TexturedImage) SetLoaded(texture *giu.Texture, width float32, height float32) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.texture = texture
	s.width = width
	s.height = height
	s.isLoading = false
}

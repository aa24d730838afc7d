package internal

import (
	"image"
	"sync"

	"github.com/AllenDang/giu"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
	"vincit.fi/image-binder/ui/giu/internal/guiapi"
)

// ThumbnailSource is the part of the browser the texture manager reads.
type ThumbnailSource interface {
	Thumbnail(imageId apitype.ImageId) (*image.RGBA, api.ThumbnailStatus)
	ThumbnailGeneration() uint64
}

// TextureManager uploads each decoded thumbnail once per cache generation.
type TextureManager struct {
	source ThumbnailSource

	mux        sync.Mutex
	generation uint64
	textures   map[apitype.ImageId]*guiapi.TexturedImage
}

func NewTextureManager(source ThumbnailSource) *TextureManager {
	return &TextureManager{
		source:   source,
		textures: map[apitype.ImageId]*guiapi.TexturedImage{},
	}
}

// GetThumbnailTexture returns the texture of a loaded thumbnail. Asking
// for a thumbnail that isn't decoded yet schedules the decode.
func (s *TextureManager) GetThumbnailTexture(imageId apitype.ImageId) (*guiapi.TexturedImage, api.ThumbnailStatus) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if generation := s.source.ThumbnailGeneration(); generation != s.generation {
		logger.Debug.Printf("Dropping %d textures of generation %d", len(s.textures), s.generation)
		s.generation = generation
		s.textures = map[apitype.ImageId]*guiapi.TexturedImage{}
	}

	if texture, ok := s.textures[imageId]; ok {
		return texture, api.ThumbnailLoaded
	}

	thumbnail, status := s.source.Thumbnail(imageId)
	if status != api.ThumbnailLoaded || thumbnail == nil {
		return nil, status
	}

	newEntry := guiapi.NewEmptyTexturedImage()
	s.textures[imageId] = newEntry
	width := float32(thumbnail.Rect.Dx())
	height := float32(thumbnail.Rect.Dy())
	giu.NewTextureFromRgba(thumbnail, func(loadedTexture *giu.Texture) {
		newEntry.SetLoaded(loadedTexture, width, height)
		giu.Update()
	})
	return newEntry, api.ThumbnailLoaded
}

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-binder/api/apitype"
)

func TestEllipsis(t *testing.T) {
	a := assert.New(t)

	a.Equal("photo.jpg", ellipsis("photo.jpg", 20))
	a.Equal("photo.jpg", ellipsis("photo.jpg", 9))
	a.Equal("phot…", ellipsis("photo.jpg", 5))
	a.Equal("päivä…", ellipsis("päiväkirja.png", 6))
	a.Equal("photo.jpg", ellipsis("photo.jpg", 1))
}

type hovered struct {
	images  *apitype.ImageFileSequence
	imageId apitype.ImageId
}

func newGrid(hovers *[]hovered) *ThumbnailGridWidget {
	return ThumbnailGrid(nil,
		func(images *apitype.ImageFileSequence, imageId apitype.ImageId) {
			*hovers = append(*hovers, hovered{images: images, imageId: imageId})
		},
		func(*apitype.ImageFileSequence, apitype.ImageId, apitype.Action) {})
}

func TestThumbnailGrid_HoverSendsShownSequence(t *testing.T) {
	a := assert.New(t)

	var hovers []hovered
	sut := newGrid(&hovers)
	images := apitype.NewImageFileSequence("/images", []string{"a.png", "b.png"})
	sut.SetImages(images)

	sut.hover(1)

	a.Equal(apitype.ImageId(1), sut.selected)
	if a.Len(hovers, 1) {
		a.Same(images, hovers[0].images)
		a.Equal(apitype.ImageId(1), hovers[0].imageId)
	}
}

func TestThumbnailGrid_SetImagesClearsSelection(t *testing.T) {
	a := assert.New(t)

	var hovers []hovered
	sut := newGrid(&hovers)
	sut.SetImages(apitype.NewImageFileSequence("/images", []string{"a.png", "b.png"}))
	sut.hover(1)
	sut.menuImageId = 1

	other := apitype.NewImageFileSequence("/other", []string{"c.png"})
	sut.SetImages(other)
	a.Equal(apitype.NoImage, sut.selected)
	a.Equal(apitype.NoImage, sut.menuImageId)
	a.Equal(1, sut.images.Len())

	sut.hover(0)
	if a.Len(hovers, 2) {
		a.Same(other, hovers[1].images)
	}
}

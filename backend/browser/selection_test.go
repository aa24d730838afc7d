package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-binder/api/apitype"
)

func TestSelection(t *testing.T) {
	a := assert.New(t)

	t.Run("Nothing is selected at first", func(t *testing.T) {
		sut := NewSelection()
		imageId, selected := sut.Selected()
		a.False(selected)
		a.Equal(apitype.NoImage, imageId)
		a.False(sut.Select(0))
	})
	t.Run("Select within range", func(t *testing.T) {
		sut := NewSelection()
		sut.Reset(3)

		a.True(sut.Select(2))
		imageId, selected := sut.Selected()
		a.True(selected)
		a.Equal(apitype.ImageId(2), imageId)

		a.True(sut.Select(0))
		imageId, _ = sut.Selected()
		a.Equal(apitype.ImageId(0), imageId)
	})
	t.Run("Out of range keeps the old selection", func(t *testing.T) {
		sut := NewSelection()
		sut.Reset(3)
		sut.Select(1)

		a.False(sut.Select(3))
		a.False(sut.Select(-1))
		imageId, selected := sut.Selected()
		a.True(selected)
		a.Equal(apitype.ImageId(1), imageId)
	})
	t.Run("Reset clears", func(t *testing.T) {
		sut := NewSelection()
		sut.Reset(3)
		sut.Select(1)
		sut.Reset(10)

		_, selected := sut.Selected()
		a.False(selected)
	})
	t.Run("Clear", func(t *testing.T) {
		sut := NewSelection()
		sut.Reset(3)
		sut.Select(1)
		sut.Clear()

		_, selected := sut.Selected()
		a.False(selected)
	})
}

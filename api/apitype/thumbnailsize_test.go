package apitype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThumbnailSize(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		name  string
		value int
		want  ThumbnailSize
	}{
		{name: "Exact step", value: 150, want: 150},
		{name: "Round down", value: 174, want: 150},
		{name: "Round up", value: 175, want: 200},
		{name: "Clamp low", value: 10, want: MinThumbnailSize},
		{name: "Clamp negative", value: -100, want: MinThumbnailSize},
		{name: "Clamp high", value: 9000, want: MaxThumbnailSize},
		{name: "Min", value: 50, want: 50},
		{name: "Max", value: 500, want: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a.Equal(tt.want, NewThumbnailSize(tt.value))
		})
	}
}

func TestThumbnailSize_Steps(t *testing.T) {
	a := assert.New(t)

	a.Equal(ThumbnailSize(200), DefaultThumbnailSize.Larger())
	a.Equal(ThumbnailSize(100), DefaultThumbnailSize.Smaller())
	a.Equal(MinThumbnailSize, MinThumbnailSize.Smaller())
	a.Equal(MaxThumbnailSize, MaxThumbnailSize.Larger())
	a.True(MinThumbnailSize.IsMin())
	a.True(MaxThumbnailSize.IsMax())
	a.False(DefaultThumbnailSize.IsMin())
}

func TestParseThumbnailSize(t *testing.T) {
	a := assert.New(t)

	size, err := ParseThumbnailSize("250")
	a.Nil(err)
	a.Equal(ThumbnailSize(250), size)

	size, err = ParseThumbnailSize("not a number")
	a.NotNil(err)
	a.Equal(DefaultThumbnailSize, size)

	a.Equal("250", ThumbnailSize(250).String())
	a.Equal(SquareSize(250), ThumbnailSize(250).Size())
}

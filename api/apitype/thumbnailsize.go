package apitype

import "strconv"

// ThumbnailSize is the edge length of a grid cell. Values are always
// within [MinThumbnailSize, MaxThumbnailSize] and a multiple of
// ThumbnailSizeStep; use NewThumbnailSize to build one.
type ThumbnailSize int

const (
	MinThumbnailSize     ThumbnailSize = 50
	MaxThumbnailSize     ThumbnailSize = 500
	ThumbnailSizeStep    ThumbnailSize = 50
	DefaultThumbnailSize ThumbnailSize = 150
)

func NewThumbnailSize(value int) ThumbnailSize {
	step := int(ThumbnailSizeStep)
	snapped := ((value + step/2) / step) * step
	if value < 0 {
		snapped = 0
	}

	size := ThumbnailSize(snapped)
	if size < MinThumbnailSize {
		return MinThumbnailSize
	}
	if size > MaxThumbnailSize {
		return MaxThumbnailSize
	}
	return size
}

func ParseThumbnailSize(value string) (ThumbnailSize, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return DefaultThumbnailSize, err
	}
	return NewThumbnailSize(parsed), nil
}

func (s ThumbnailSize) Larger() ThumbnailSize {
	return NewThumbnailSize(int(s + ThumbnailSizeStep))
}

func (s ThumbnailSize) Smaller() ThumbnailSize {
	return NewThumbnailSize(int(s - ThumbnailSizeStep))
}

func (s ThumbnailSize) IsMin() bool {
	return s <= MinThumbnailSize
}

func (s ThumbnailSize) IsMax() bool {
	return s >= MaxThumbnailSize
}

func (s ThumbnailSize) Size() Size {
	return SquareSize(int(s))
}

func (s ThumbnailSize) Float() float32 {
	return float32(s)
}

func (s ThumbnailSize) String() string {
	return strconv.Itoa(int(s))
}

package apitype

import "image"

// GridLayout places square cells row by row. Each cell has room for a
// label of LabelHeight below the thumbnail.
type GridLayout struct {
	Columns     int
	CellSize    float32
	Spacing     float32
	LabelHeight float32
}

func NewGridLayout(availableWidth float32, cellSize ThumbnailSize, spacing float32, labelHeight float32) GridLayout {
	return GridLayout{
		Columns:     GridColumns(availableWidth, cellSize, spacing),
		CellSize:    cellSize.Float(),
		Spacing:     spacing,
		LabelHeight: labelHeight,
	}
}

// GridColumns is the number of cells that fit into the width, never less
// than one.
func GridColumns(availableWidth float32, cellSize ThumbnailSize, spacing float32) int {
	cell := cellSize.Float() + spacing
	if cell <= 0 {
		return 1
	}
	columns := int((availableWidth - spacing) / cell)
	if columns < 1 {
		return 1
	}
	return columns
}

func (s GridLayout) rowHeight() float32 {
	return s.CellSize + s.LabelHeight + s.Spacing
}

func (s GridLayout) Rows(count int) int {
	if count <= 0 || s.Columns <= 0 {
		return 0
	}
	return (count + s.Columns - 1) / s.Columns
}

func (s GridLayout) ContentHeight(count int) float32 {
	return float32(s.Rows(count))*s.rowHeight() + s.Spacing
}

// CellOrigin is the top-left corner of the cell relative to the grid origin.
func (s GridLayout) CellOrigin(index int) image.Point {
	column := index % s.Columns
	row := index / s.Columns
	return image.Pt(
		int(s.Spacing+float32(column)*(s.CellSize+s.Spacing)),
		int(s.Spacing+float32(row)*s.rowHeight()),
	)
}

// CellRectangle covers the thumbnail area of the cell, without its label.
func (s GridLayout) CellRectangle(index int) image.Rectangle {
	origin := s.CellOrigin(index)
	return image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Pt(int(s.CellSize), int(s.CellSize))),
	}
}

// VisibleRange returns the half-open index range of cells whose rows
// intersect the vertical window [top, bottom) relative to the grid origin.
func (s GridLayout) VisibleRange(count int, top float32, bottom float32) (int, int) {
	if count <= 0 || s.Columns <= 0 || bottom <= top {
		return 0, 0
	}
	rowHeight := s.rowHeight()
	firstRow := int((top - s.Spacing) / rowHeight)
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := int((bottom-s.Spacing)/rowHeight) + 1

	start := firstRow * s.Columns
	end := lastRow * s.Columns
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}
	return start, end
}

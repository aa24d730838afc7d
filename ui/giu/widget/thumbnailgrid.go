package widget

import (
	"image"
	"image/color"
	"path/filepath"
	"sync"

	"github.com/AllenDang/giu"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/ui/giu/internal/guiapi"
)

const (
	gridSpacing       = 12
	gridLabelHeight   = 20
	gridScrollbarSize = 16
	gridMenuName      = "ThumbnailGridMenu"
	labelCharWidth    = 7
)

var (
	imageHoverOverlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 64}
	selectionColor         = color.RGBA{R: 64, G: 140, B: 255, A: 255}
	placeholderColor       = color.RGBA{R: 48, G: 48, B: 56, A: 255}
	failedColor            = color.RGBA{R: 96, G: 32, B: 32, A: 255}
	textColor              = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

type ThumbnailFunc func(imageId apitype.ImageId) (*guiapi.TexturedImage, api.ThumbnailStatus)

// HoverFunc and ActionFunc get the sequence the cell was drawn from so the
// receiver can tell whether the index still means the same file.
type (
	HoverFunc  func(images *apitype.ImageFileSequence, imageId apitype.ImageId)
	ActionFunc func(images *apitype.ImageFileSequence, imageId apitype.ImageId, action apitype.Action)
)

// ThumbnailGridWidget draws one cell per image. Only the visible cells ask
// for their thumbnail so decoding starts when a cell first comes into view.
type ThumbnailGridWidget struct {
	images        *apitype.ImageFileSequence
	thumbnailSize apitype.ThumbnailSize
	selected      apitype.ImageId
	thumbnail     ThumbnailFunc
	onHover       HoverFunc
	onAction      ActionFunc
	menuImageId   apitype.ImageId
	mux           sync.Mutex
}

func ThumbnailGrid(thumbnail ThumbnailFunc, onHover HoverFunc, onAction ActionFunc) *ThumbnailGridWidget {
	return &ThumbnailGridWidget{
		images:        apitype.NewEmptyImageFileSequence(""),
		thumbnailSize: apitype.DefaultThumbnailSize,
		selected:      apitype.NoImage,
		thumbnail:     thumbnail,
		onHover:       onHover,
		onAction:      onAction,
		menuImageId:   apitype.NoImage,
	}
}

func (s *ThumbnailGridWidget) SetImages(images *apitype.ImageFileSequence) *ThumbnailGridWidget {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.images = images
	s.selected = apitype.NoImage
	s.menuImageId = apitype.NoImage
	return s
}

func (s *ThumbnailGridWidget) SetThumbnailSize(size apitype.ThumbnailSize) *ThumbnailGridWidget {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.thumbnailSize = size
	return s
}

func (s *ThumbnailGridWidget) Build() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.images.IsEmpty() {
		giu.Label("No Images").Build()
		return
	}

	// The child's top left corner is needed to tell how far it has scrolled
	viewportPos := giu.GetCursorScreenPos()
	regionWidth, regionHeight := giu.GetAvailableRegion()
	viewport := image.Rect(viewportPos.X, viewportPos.Y, viewportPos.X+int(regionWidth), viewportPos.Y+int(regionHeight))
	layout := apitype.NewGridLayout(regionWidth-gridScrollbarSize, s.thumbnailSize, gridSpacing, gridLabelHeight)
	count := s.images.Len()

	giu.Child().
		Layout(
			giu.Custom(func() {
				s.drawCells(layout, viewport)
			}),
			giu.Dummy(regionWidth-gridScrollbarSize, layout.ContentHeight(count)),
			s.contextMenu(),
		).
		Border(false).
		Size(regionWidth, regionHeight).
		Build()
}

func (s *ThumbnailGridWidget) drawCells(layout apitype.GridLayout, viewport image.Rectangle) {
	origin := giu.GetCursorScreenPos()
	canvas := giu.GetCanvas()
	mousePos := giu.GetMousePos()

	scrolled := float32(viewport.Min.Y - origin.Y)
	start, end := layout.VisibleRange(s.images.Len(), scrolled, scrolled+float32(viewport.Dy()))

	for index := start; index < end; index++ {
		imageId := apitype.ImageId(index)
		imageFile, ok := s.images.At(index)
		if !ok {
			continue
		}

		cell := layout.CellRectangle(index).Add(origin)
		s.drawThumbnail(canvas, imageId, cell)

		labelPos := image.Pt(cell.Min.X, cell.Max.Y+4)
		canvas.AddText(labelPos, textColor, ellipsis(filepath.Base(imageFile.FileName()), int(layout.CellSize)/labelCharWidth))

		if imageId == s.selected {
			canvas.AddRect(cell.Min, cell.Max, selectionColor, 0, giu.DrawFlagsNone, 2)
		}

		if mousePos.In(cell) && mousePos.In(viewport) {
			s.handleMouse(imageId)
			canvas.AddRectFilled(cell.Min, cell.Max, imageHoverOverlayColor, 0, giu.DrawFlagsNone)
		}
	}
}

func (s *ThumbnailGridWidget) drawThumbnail(canvas *giu.Canvas, imageId apitype.ImageId, cell image.Rectangle) {
	texturedImage, status := s.thumbnail(imageId)

	switch {
	case status == api.ThumbnailLoaded && texturedImage != nil && !texturedImage.IsLoading():
		width, height := texturedImage.Size()
		fitted := apitype.RectangleOfScaledToFit(image.Rect(0, 0, int(width), int(height)), apitype.SizeFromRectangle(cell))
		offset := image.Pt((cell.Dx()-fitted.Width())/2, (cell.Dy()-fitted.Height())/2)
		min := cell.Min.Add(offset)
		max := min.Add(image.Pt(fitted.Width(), fitted.Height()))
		canvas.AddImage(texturedImage.Texture(), min, max)
	case status == api.ThumbnailFailed:
		canvas.AddRectFilled(cell.Min, cell.Max, failedColor, 0, giu.DrawFlagsNone)
		canvas.AddText(cell.Min.Add(image.Pt(8, cell.Dy()/2-6)), textColor, "Failed")
	default:
		canvas.AddRectFilled(cell.Min, cell.Max, placeholderColor, 0, giu.DrawFlagsNone)
		canvas.AddText(cell.Min.Add(image.Pt(8, cell.Dy()/2-6)), textColor, "Loading…")
	}
}

func (s *ThumbnailGridWidget) handleMouse(imageId apitype.ImageId) {
	giu.SetMouseCursor(giu.MouseCursorHand)
	if imageId != s.selected {
		s.hover(imageId)
	}

	if giu.IsMouseDoubleClicked(giu.MouseButtonLeft) {
		s.onAction(s.images, imageId, apitype.OpenAction())
	} else if giu.IsMouseClicked(giu.MouseButtonRight) {
		s.menuImageId = imageId
		giu.OpenPopup(gridMenuName)
	}
}

// hover marks the cell as selected. Must be called with the lock held.
func (s *ThumbnailGridWidget) hover(imageId apitype.ImageId) {
	s.selected = imageId
	s.onHover(s.images, imageId)
}

func (s *ThumbnailGridWidget) contextMenu() giu.Widget {
	perform := func(action apitype.Action) func() {
		return func() {
			if s.menuImageId != apitype.NoImage {
				s.onAction(s.images, s.menuImageId, action)
			}
			giu.CloseCurrentPopup()
		}
	}

	return giu.Popup(gridMenuName).
		Layout(
			giu.Selectable("Open").OnClick(perform(apitype.OpenAction())),
			giu.Selectable("Open with Preview").OnClick(perform(apitype.OpenWithPreviewAction())),
			giu.Separator(),
			giu.Selectable("Reveal in Finder").OnClick(perform(apitype.RevealAction())),
			giu.Separator(),
			giu.Selectable("Copy Image").OnClick(perform(apitype.CopyToClipboardAction())),
		)
}

// ellipsis shortens the text to at most maxLength runes.
func ellipsis(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength < 2 || len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-1]) + "…"
}

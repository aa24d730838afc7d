package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/AllenDang/giu"
	"github.com/OpenDiablo2/dialog"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common"
	"vincit.fi/image-binder/common/logger"
	"vincit.fi/image-binder/ui/giu/internal"
	"vincit.fi/image-binder/ui/giu/widget"
)

const (
	applicationTitle    = "Binder"
	defaultWindowWidth  = 1000
	defaultWindowHeight = 700
	sidebarWidth        = 200
	toolbarButtonHeight = 24
)

type Ui struct {
	// General
	win      *giu.MasterWindow
	sender   api.Sender
	browser  api.ImageBrowser
	rootPath string

	// Widgets
	textures    *internal.TextureManager
	grid        *widget.ThumbnailGridWidget
	directories *widget.DirectoryListWidget

	// State shared with the event callbacks
	mux           sync.Mutex
	directory     string
	thumbnailSize apitype.ThumbnailSize
	showSidebar   bool
	progress      string

	api.Gui
}

func NewUi(params *common.Params, sender api.Sender, browser api.ImageBrowser) api.Gui {
	gui := &Ui{
		win:           giu.NewMasterWindow(applicationTitle, defaultWindowWidth, defaultWindowHeight, 0),
		sender:        sender,
		browser:       browser,
		rootPath:      params.RootPath(),
		textures:      internal.NewTextureManager(browser),
		thumbnailSize: browser.ThumbnailSize(),
		showSidebar:   true,
	}

	gui.grid = widget.ThumbnailGrid(gui.textures.GetThumbnailTexture, gui.selectImage, gui.performAction).
		SetThumbnailSize(gui.thumbnailSize)
	gui.directories = widget.DirectoryList(sidebarWidth, gui.changeDirectory)

	return gui
}

func (s *Ui) Run() {
	s.changeDirectory(s.rootPath)
	s.win.Run(s.loop)
}

func (s *Ui) loop() {
	renderStart := time.Now()

	s.mux.Lock()
	title := s.title()
	showSidebar := s.showSidebar
	thumbnailSize := s.thumbnailSize
	progress := s.progress
	s.mux.Unlock()

	var content giu.Widget = s.grid
	if showSidebar {
		content = giu.Row(s.directories, s.grid)
	}

	giu.SingleWindow().
		Layout(
			s.toolbar(title, showSidebar, thumbnailSize, progress),
			giu.Separator(),
			content,
			giu.PrepareMsgbox(),
		)

	renderTime := time.Since(renderStart)
	if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Rendered UI in %s", renderTime)
	} else if renderTime >= 10*time.Millisecond {
		logger.Debug.Printf("Rendered UI in %s", renderTime)
	}
	s.handleKeyPress()
}

func (s *Ui) toolbar(title string, showSidebar bool, thumbnailSize apitype.ThumbnailSize, progress string) giu.Widget {
	sidebarLabel := "Show folders"
	if showSidebar {
		sidebarLabel = "Hide folders"
	}

	return giu.Row(
		giu.Button(sidebarLabel).OnClick(s.toggleSidebar).Size(100, toolbarButtonHeight),
		giu.Button("Open folder…").OnClick(s.openFolderChooser).Size(100, toolbarButtonHeight),
		giu.Button("-").OnClick(func() {
			if !thumbnailSize.IsMin() {
				s.requestThumbnailSize(thumbnailSize.Smaller())
			}
		}).Size(toolbarButtonHeight, toolbarButtonHeight),
		giu.Label(thumbnailSize.String()),
		giu.Button("+").OnClick(func() {
			if !thumbnailSize.IsMax() {
				s.requestThumbnailSize(thumbnailSize.Larger())
			}
		}).Size(toolbarButtonHeight, toolbarButtonHeight),
		giu.Label(title),
		giu.Label(progress),
	)
}

func (s *Ui) handleKeyPress() {
	controlDown := giu.IsKeyDown(giu.KeyLeftControl) || giu.IsKeyDown(giu.KeyRightControl)

	if giu.IsKeyPressed(giu.KeyF5) {
		logger.Debug.Printf("Reload directory")
		s.changeDirectory(s.currentDirectory())
	}
	if giu.IsKeyPressed(giu.KeyEnter) {
		if images, imageId, ok := s.browser.Selected(); ok {
			s.performAction(images, imageId, apitype.OpenAction())
		}
	}
	if controlDown && giu.IsKeyPressed(giu.KeyC) {
		if images, imageId, ok := s.browser.Selected(); ok {
			s.performAction(images, imageId, apitype.CopyToClipboardAction())
		}
	}
}

// title is the name of the current directory. Must be called with the
// lock held.
func (s *Ui) title() string {
	if s.directory == "" {
		return applicationTitle
	}
	if name := filepath.Base(s.directory); name != "." && name != string(filepath.Separator) {
		return name
	}
	return applicationTitle
}

func (s *Ui) currentDirectory() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.directory == "" {
		return s.rootPath
	}
	return s.directory
}

func (s *Ui) toggleSidebar() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.showSidebar = !s.showSidebar
}

func (s *Ui) openFolderChooser() {
	directory, err := dialog.Directory().Title("Open folder").Browse()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	} else if err != nil {
		s.sender.SendError("Could not open folder", err)
		return
	}
	s.changeDirectory(directory)
}

func (s *Ui) changeDirectory(directory string) {
	logger.Debug.Printf("Change directory to '%s'", directory)
	s.sender.SendCommandToTopic(api.DirectoryChanged, &api.DirectoryChangedCommand{Directory: directory})
}

func (s *Ui) requestThumbnailSize(size apitype.ThumbnailSize) {
	s.sender.SendCommandToTopic(api.ThumbnailSizeRequest, &api.ThumbnailSizeCommand{Size: size})
}

func (s *Ui) selectImage(images *apitype.ImageFileSequence, imageId apitype.ImageId) {
	s.sender.SendCommandToTopic(api.ImageSelected, &api.SelectImageCommand{Images: images, ImageId: imageId})
}

func (s *Ui) performAction(images *apitype.ImageFileSequence, imageId apitype.ImageId, action apitype.Action) {
	logger.Debug.Printf("Perform %s on image %d", action, imageId)
	s.sender.SendCommandToTopic(api.ActionRequested, &api.PerformActionCommand{
		Images:  images,
		ImageId: imageId,
		Action:  action,
	})
}

func (s *Ui) SetImages(command *api.ImagesUpdatedCommand) {
	s.mux.Lock()
	s.directory = command.Images.Directory()
	s.progress = ""
	directory := s.directory
	s.mux.Unlock()

	logger.Debug.Printf("Showing %d images of '%s'", command.Images.Len(), directory)
	s.grid.SetImages(command.Images)
	s.directories.SetDirectory(directory, command.Subdirectories)
}

func (s *Ui) SetThumbnailSize(command *api.ThumbnailSizeCommand) {
	s.mux.Lock()
	s.thumbnailSize = command.Size
	s.mux.Unlock()

	s.grid.SetThumbnailSize(command.Size)
}

// ThumbnailReady only needs a redraw; the texture is uploaded when the
// cell is drawn next time.
func (s *Ui) ThumbnailReady(command *api.ThumbnailCommand) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Thumbnail %d of generation %d ready", command.ImageId, command.Generation)
	}
	giu.Update()
}

func (s *Ui) UpdateProgress(command *api.UpdateProgressCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if command.Current >= command.Total {
		s.progress = ""
	} else {
		s.progress = fmt.Sprintf("Loading %s %d/%d", command.Name, command.Current, command.Total)
	}
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}

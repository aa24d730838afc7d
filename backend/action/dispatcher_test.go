package action

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/testutil"
)

type MockWorkspace struct {
	api.Workspace
	mock.Mock
}

func (s *MockWorkspace) Open(ctx context.Context, path string) error {
	return s.Called(path).Error(0)
}

func (s *MockWorkspace) OpenWith(ctx context.Context, path string, applicationId string) error {
	return s.Called(path, applicationId).Error(0)
}

func (s *MockWorkspace) Reveal(ctx context.Context, path string) error {
	return s.Called(path).Error(0)
}

func (s *MockWorkspace) CopyImage(ctx context.Context, data []byte) error {
	return s.Called(data).Error(0)
}

// ShownImages stands in for the session: it holds the sequence on screen.
type ShownImages struct {
	images *apitype.ImageFileSequence
}

func (s *ShownImages) Images() *apitype.ImageFileSequence {
	return s.images
}

func newDispatcher(t *testing.T) (*Dispatcher, *MockWorkspace, *apitype.ImageFileSequence) {
	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 4, 4)
	testutil.WriteJpeg(t, dir, "c.jpg", 4, 4)
	images := apitype.NewImageFileSequence(dir, []string{"a.png", "c.jpg"})

	workspace := new(MockWorkspace)
	return NewDispatcher(&ShownImages{images: images}, workspace), workspace, images
}

func pathOf(images *apitype.ImageFileSequence, imageId apitype.ImageId) string {
	imageFile, _ := images.At(int(imageId))
	return imageFile.Path()
}

func TestDispatcher_Perform(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	t.Run("Open", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		workspace.On("Open", pathOf(images, 1)).Return(nil)

		a.Nil(sut.Perform(ctx, apitype.OpenAction(), images, 1))
		workspace.AssertExpectations(t)
	})
	t.Run("Open with Preview", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		workspace.On("OpenWith", pathOf(images, 0), "com.apple.Preview").Return(nil)

		a.Nil(sut.Perform(ctx, apitype.OpenWithPreviewAction(), images, 0))
		workspace.AssertExpectations(t)
	})
	t.Run("Open with other application", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		workspace.On("OpenWith", pathOf(images, 0), "com.example.Viewer").Return(nil)

		a.Nil(sut.Perform(ctx, apitype.OpenWithAction("com.example.Viewer"), images, 0))
		workspace.AssertExpectations(t)
	})
	t.Run("Reveal", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		workspace.On("Reveal", pathOf(images, 1)).Return(nil)

		a.Nil(sut.Perform(ctx, apitype.RevealAction(), images, 1))
		workspace.AssertExpectations(t)
	})
	t.Run("Copy to clipboard sends the file content", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		content, err := os.ReadFile(pathOf(images, 0))
		require.Nil(t, err)
		workspace.On("CopyImage", content).Return(nil)

		a.Nil(sut.Perform(ctx, apitype.CopyToClipboardAction(), images, 0))
		workspace.AssertExpectations(t)
	})
}

func TestDispatcher_Perform_Errors(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	t.Run("Index out of range", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)

		for _, imageId := range []apitype.ImageId{-1, 2, 99} {
			err := sut.Perform(ctx, apitype.OpenAction(), images, imageId)
			a.ErrorIs(err, apitype.ErrAction)
			a.ErrorIs(err, apitype.ErrIndexOutOfRange)
		}
		workspace.AssertNotCalled(t, "Open", mock.Anything)
	})
	t.Run("Host failure", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		failure := errors.New("no application can open the file")
		workspace.On("Open", pathOf(images, 0)).Return(failure)

		err := sut.Perform(ctx, apitype.OpenAction(), images, 0)
		a.ErrorIs(err, apitype.ErrAction)
		a.ErrorIs(err, failure)
		a.Equal(apitype.ActionError, apitype.ErrorKindOf(err))
		a.Contains(err.Error(), pathOf(images, 0))
		workspace.AssertNumberOfCalls(t, "Open", 1)
	})
	t.Run("File removed before copying", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		require.Nil(t, os.Remove(pathOf(images, 1)))

		err := sut.Perform(ctx, apitype.CopyToClipboardAction(), images, 1)
		a.ErrorIs(err, apitype.ErrAction)
		a.ErrorIs(err, os.ErrNotExist)
		workspace.AssertNotCalled(t, "CopyImage", mock.Anything)
	})
	t.Run("Clipboard failure", func(t *testing.T) {
		sut, workspace, images := newDispatcher(t)
		workspace.On("CopyImage", mock.Anything).Return(errors.New("clipboard not available"))

		err := sut.Perform(ctx, apitype.CopyToClipboardAction(), images, 0)
		a.ErrorIs(err, apitype.ErrAction)
	})
}

func TestDispatcher_Perform_WithMissingDirectory(t *testing.T) {
	a := assert.New(t)

	images := apitype.NewImageFileSequence(filepath.Join(t.TempDir(), "gone"), []string{"a.png"})
	workspace := new(MockWorkspace)
	sut := NewDispatcher(&ShownImages{images: images}, workspace)

	err := sut.Perform(context.Background(), apitype.CopyToClipboardAction(), images, 0)
	a.ErrorIs(err, apitype.ErrAction)
}

func TestDispatcher_Perform_AfterSequenceReplaced(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 4, 4)
	testutil.WritePng(t, dir, "b.png", 4, 4)
	first := apitype.NewImageFileSequence(dir, []string{"a.png", "b.png"})
	second := apitype.NewImageFileSequence(dir, []string{"b.png", "a.png"})

	shown := &ShownImages{images: first}
	workspace := new(MockWorkspace)
	workspace.On("Open", mock.Anything).Return(nil)
	sut := NewDispatcher(shown, workspace)

	shown.images = second
	err := sut.Perform(ctx, apitype.OpenAction(), first, 0)

	a.ErrorIs(err, apitype.ErrAction)
	a.ErrorIs(err, apitype.ErrStaleIndex)
	workspace.AssertNotCalled(t, "Open", mock.Anything)

	a.Nil(sut.Perform(ctx, apitype.OpenAction(), second, 0))
	workspace.AssertCalled(t, "Open", pathOf(second, 0))
}

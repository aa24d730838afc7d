package browser

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/backend/library"
	"vincit.fi/image-binder/backend/thumbnail"
	"vincit.fi/image-binder/common/testutil"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.Called(topic)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

type BlankLoader struct {
	api.ImageLoader
}

func (s *BlankLoader) LoadThumbnail(path string, size apitype.Size) (*image.RGBA, error) {
	return image.NewRGBA(image.Rect(0, 0, size.Width(), size.Height())), nil
}

// StaticPreferences keeps the size in memory and notifies synchronously.
type StaticPreferences struct {
	size      apitype.ThumbnailSize
	listeners []api.ThumbnailSizeListener

	api.PreferenceService
}

func (s *StaticPreferences) ThumbnailSize() apitype.ThumbnailSize {
	return s.size
}

func (s *StaticPreferences) SetThumbnailSize(size apitype.ThumbnailSize) apitype.ThumbnailSize {
	s.size = apitype.NewThumbnailSize(int(size))
	for _, listener := range s.listeners {
		listener(s.size)
	}
	return s.size
}

func (s *StaticPreferences) Subscribe(listener api.ThumbnailSizeListener) {
	s.listeners = append(s.listeners, listener)
}

type sessionFixture struct {
	sut        *Session
	sender     *MockSender
	thumbnails *thumbnail.Cache
}

func newSessionFixture(t *testing.T) *sessionFixture {
	sender := new(MockSender)
	sender.On("SendCommandToTopic", mock.Anything, mock.Anything).Return()
	thumbnails := thumbnail.NewCache(&BlankLoader{}, sender, 2)
	t.Cleanup(thumbnails.Close)

	preferences := &StaticPreferences{size: apitype.ThumbnailSize(100)}
	return &sessionFixture{
		sut:        NewSession(sender, library.NewLibrary(), thumbnails, preferences),
		sender:     sender,
		thumbnails: thumbnails,
	}
}

func TestSession_ChangeDirectory(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 10, 10)
	testutil.WriteFile(t, dir, "b.txt", []byte("text"))
	testutil.WriteJpeg(t, dir, "c.jpg", 10, 10)
	require.Nil(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	fixture := newSessionFixture(t)
	sut := fixture.sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})

	images := sut.Images()
	a.Equal(dir, images.Directory())
	a.Equal(2, images.Len())
	fixture.sender.AssertCalled(t, "SendCommandToTopic", api.ImagesUpdated, &api.ImagesUpdatedCommand{
		Images:         images,
		Subdirectories: []string{"sub"},
	})

	imageFile, ok := images.At(1)
	a.True(ok)
	a.Equal(apitype.ImageId(1), imageFile.Id())
	_, ok = images.At(2)
	a.False(ok)
}

func TestSession_ChangeDirectory_ClearsSelection(t *testing.T) {
	a := assert.New(t)
	first := t.TempDir()
	second := t.TempDir()
	testutil.WritePng(t, first, "a.png", 10, 10)
	testutil.WritePng(t, first, "b.png", 10, 10)
	testutil.WritePng(t, second, "c.png", 10, 10)

	sut := newSessionFixture(t).sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: first})
	firstImages := sut.Images()
	sut.Select(&api.SelectImageCommand{Images: firstImages, ImageId: 1})
	images, imageId, selected := sut.Selected()
	a.True(selected)
	a.Equal(apitype.ImageId(1), imageId)
	a.Same(firstImages, images)

	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: second})
	images, _, selected = sut.Selected()
	a.False(selected)
	a.Same(sut.Images(), images)

	sut.Select(&api.SelectImageCommand{Images: sut.Images(), ImageId: 1})
	_, _, selected = sut.Selected()
	a.False(selected)
}

func TestSession_Select_AfterSequenceReplaced(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 10, 10)
	testutil.WritePng(t, dir, "b.png", 10, 10)

	sut := newSessionFixture(t).sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})
	firstImages := sut.Images()

	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})
	a.NotSame(firstImages, sut.Images())

	sut.Select(&api.SelectImageCommand{Images: firstImages, ImageId: 1})
	_, _, selected := sut.Selected()
	a.False(selected)

	sut.Select(&api.SelectImageCommand{Images: sut.Images(), ImageId: 1})
	_, imageId, selected := sut.Selected()
	a.True(selected)
	a.Equal(apitype.ImageId(1), imageId)
}

func TestSession_ChangeDirectory_StartsNewThumbnailGeneration(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 10, 10)

	fixture := newSessionFixture(t)
	sut := fixture.sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})
	generation := sut.ThumbnailGeneration()

	_, status := sut.Thumbnail(0)
	a.Equal(api.ThumbnailPending, status)
	fixture.thumbnails.Wait()
	loaded, status := sut.Thumbnail(0)
	a.Equal(api.ThumbnailLoaded, status)
	a.Equal(100, loaded.Rect.Dx())

	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})
	a.Equal(generation+1, sut.ThumbnailGeneration())
	a.Equal(api.ThumbnailAbsent, fixture.thumbnails.Status(0))
}

func TestSession_ChangeDirectory_Missing(t *testing.T) {
	a := assert.New(t)
	missing := filepath.Join(t.TempDir(), "missing")

	fixture := newSessionFixture(t)
	sut := fixture.sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: missing})

	a.Equal(missing, sut.Images().Directory())
	a.True(sut.Images().IsEmpty())
	fixture.sender.AssertCalled(t, "SendCommandToTopic", api.ImagesUpdated, &api.ImagesUpdatedCommand{
		Images:         sut.Images(),
		Subdirectories: []string{},
	})
}

func TestSession_SetThumbnailSize(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	testutil.WritePng(t, dir, "a.png", 10, 10)

	fixture := newSessionFixture(t)
	sut := fixture.sut
	sut.ChangeDirectory(&api.DirectoryChangedCommand{Directory: dir})
	a.Equal(apitype.ThumbnailSize(100), sut.ThumbnailSize())
	generation := sut.ThumbnailGeneration()

	t.Run("Smaller keeps thumbnails", func(t *testing.T) {
		sut.SetThumbnailSize(&api.ThumbnailSizeCommand{Size: 50})

		a.Equal(apitype.ThumbnailSize(50), sut.ThumbnailSize())
		a.Equal(generation, sut.ThumbnailGeneration())
		fixture.sender.AssertCalled(t, "SendCommandToTopic", api.ThumbnailSizeChanged, &api.ThumbnailSizeCommand{Size: 50})
	})
	t.Run("Larger than decoded starts over", func(t *testing.T) {
		sut.SetThumbnailSize(&api.ThumbnailSizeCommand{Size: 200})

		a.Equal(apitype.ThumbnailSize(200), sut.ThumbnailSize())
		a.Equal(generation+1, sut.ThumbnailGeneration())
	})
	t.Run("Values are snapped", func(t *testing.T) {
		sut.SetThumbnailSize(&api.ThumbnailSizeCommand{Size: 9999})

		a.Equal(apitype.MaxThumbnailSize, sut.ThumbnailSize())
	})
}

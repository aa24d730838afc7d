package thumbnail

import (
	"context"
	"image"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
)

const progressName = "thumbnails"

type entry struct {
	status    api.ThumbnailStatus
	thumbnail *image.RGBA
	err       error
}

// Cache keeps the decoded thumbnails of one image sequence. Each Reset
// starts a new generation; decodes that complete for an older generation
// are dropped.
type Cache struct {
	loader   api.ImageLoader
	sender   api.Sender
	progress api.ProgressReporter
	workers  *semaphore.Weighted
	inFlight sync.WaitGroup

	mux        sync.Mutex
	generation uint64
	images     *apitype.ImageFileSequence
	decodeSize apitype.ThumbnailSize
	entries    map[apitype.ImageId]*entry
	requested  int
	completed  int
	closed     bool

	api.ThumbnailStore
}

// NewCache creates an empty cache that runs at most workerCount decodes at
// a time. Zero or negative means one per CPU.
func NewCache(loader api.ImageLoader, sender api.Sender, workerCount int) *Cache {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	return &Cache{
		loader:     loader,
		sender:     sender,
		progress:   api.NewSenderProgressReporter(sender),
		workers:    semaphore.NewWeighted(int64(workerCount)),
		images:     apitype.NewEmptyImageFileSequence(""),
		decodeSize: apitype.DefaultThumbnailSize,
		entries:    map[apitype.ImageId]*entry{},
	}
}

func (s *Cache) Reset(images *apitype.ImageFileSequence, decodeSize apitype.ThumbnailSize) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if images == nil {
		images = apitype.NewEmptyImageFileSequence("")
	}
	s.images = images
	s.decodeSize = decodeSize
	s.startGeneration()
	logger.Debug.Printf("Thumbnail cache generation %d: %d images at %s",
		s.generation, images.Len(), decodeSize)
}

// SetDecodeSize only invalidates the cache when the new size is larger than
// what the thumbnails were decoded at. Smaller sizes reuse the existing
// thumbnails. Returns true if the cache was invalidated.
func (s *Cache) SetDecodeSize(decodeSize apitype.ThumbnailSize) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if decodeSize <= s.decodeSize {
		return false
	}
	s.decodeSize = decodeSize
	s.startGeneration()
	logger.Debug.Printf("Thumbnail cache generation %d: decode size grew to %s",
		s.generation, decodeSize)
	return true
}

func (s *Cache) startGeneration() {
	s.generation++
	s.entries = map[apitype.ImageId]*entry{}
	s.requested = 0
	s.completed = 0
}

func (s *Cache) Generation() uint64 {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.generation
}

// Get returns the thumbnail if it has been decoded. An index seen for the
// first time is scheduled for decoding and reported as pending.
func (s *Cache) Get(imageId apitype.ImageId) (*image.RGBA, api.ThumbnailStatus) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.images.Contains(int(imageId)) {
		return nil, api.ThumbnailAbsent
	}
	if found, ok := s.entries[imageId]; ok {
		return found.thumbnail, found.status
	}
	if s.schedule(imageId) {
		return nil, api.ThumbnailPending
	}
	return nil, api.ThumbnailAbsent
}

// Request schedules a decode unless the index is out of range or already
// pending, loaded or failed.
func (s *Cache) Request(imageId apitype.ImageId) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.images.Contains(int(imageId)) {
		return false
	}
	if _, ok := s.entries[imageId]; ok {
		return false
	}
	return s.schedule(imageId)
}

func (s *Cache) Status(imageId apitype.ImageId) api.ThumbnailStatus {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !s.images.Contains(int(imageId)) {
		return api.ThumbnailAbsent
	}
	if found, ok := s.entries[imageId]; ok {
		return found.status
	}
	return api.ThumbnailAbsent
}

func (s *Cache) Failure(imageId apitype.ImageId) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if found, ok := s.entries[imageId]; ok && s.images.Contains(int(imageId)) {
		return found.err
	}
	return nil
}

// Wait blocks until every decode started so far has finished.
func (s *Cache) Wait() {
	s.inFlight.Wait()
}

// Close stops accepting new decodes and waits for the running ones.
func (s *Cache) Close() {
	s.mux.Lock()
	s.closed = true
	s.mux.Unlock()

	s.Wait()
}

// schedule must be called with the lock held.
func (s *Cache) schedule(imageId apitype.ImageId) bool {
	if s.closed {
		return false
	}
	imageFile, ok := s.images.At(int(imageId))
	if !ok {
		return false
	}

	s.entries[imageId] = &entry{status: api.ThumbnailPending}
	s.requested++
	s.inFlight.Add(1)
	go s.decode(s.generation, imageFile, s.decodeSize)
	return true
}

func (s *Cache) decode(generation uint64, imageFile *apitype.ImageFile, decodeSize apitype.ThumbnailSize) {
	defer s.inFlight.Done()

	if err := s.workers.Acquire(context.Background(), 1); err != nil {
		logger.Error.Printf("Could not start decoding %s: %s", imageFile, err)
		return
	}
	defer s.workers.Release(1)

	// The cache may have moved on while this decode was queued
	if !s.isCurrent(generation, imageFile.Id()) {
		logger.Trace.Printf("Skipping stale decode of %s", imageFile)
		return
	}

	thumbnail, err := s.loader.LoadThumbnail(imageFile.Path(), decodeSize.Size())
	if err != nil && apitype.ErrorKindOf(err) != apitype.DecodeError {
		err = apitype.NewDecodeError(imageFile.Path(), err)
	}
	s.complete(generation, imageFile, thumbnail, err)
}

func (s *Cache) isCurrent(generation uint64, imageId apitype.ImageId) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.generation == generation && s.images.Contains(int(imageId))
}

func (s *Cache) complete(generation uint64, imageFile *apitype.ImageFile, thumbnail *image.RGBA, err error) {
	imageId := imageFile.Id()

	s.mux.Lock()
	if s.generation != generation || !s.images.Contains(int(imageId)) {
		s.mux.Unlock()
		logger.Trace.Printf("Discarding stale thumbnail of %s", imageFile)
		return
	}

	topic := api.ThumbnailDecoded
	if err != nil {
		s.entries[imageId] = &entry{status: api.ThumbnailFailed, err: err}
		topic = api.ThumbnailDecodeFailed
	} else {
		s.entries[imageId] = &entry{status: api.ThumbnailLoaded, thumbnail: thumbnail}
	}
	s.completed++
	current, total := s.completed, s.requested
	s.mux.Unlock()

	if err != nil {
		logger.Warn.Printf("Could not decode %s: %s", imageFile, err)
	}

	s.sender.SendCommandToTopic(topic, &api.ThumbnailCommand{
		Generation: generation,
		ImageId:    imageId,
	})
	if current >= total {
		// Zero total hides the progress bar
		s.progress.Update(progressName, 0, 0)
	} else {
		s.progress.Update(progressName, current, total)
	}
}

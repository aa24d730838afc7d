package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/imagereader"
	"vincit.fi/image-binder/common/logger"
)

type Library struct {
	api.ImageLibrary
}

func NewLibrary() api.ImageLibrary {
	return &Library{}
}

// Scan lists the image files of the directory in the order the file system
// returns them. Sub-directories are not visited.
func (s *Library) Scan(directory string) (*apitype.ImageFileSequence, error) {
	start := time.Now()
	logger.Debug.Printf("Scanning directory '%s'", directory)

	dir, err := os.Open(directory)
	if err != nil {
		return nil, apitype.NewEnumerationError(directory, err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, apitype.NewEnumerationError(directory, err)
	}

	var fileNames []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || entry.IsDir() {
			continue
		}
		filePath := filepath.Join(directory, entry.Name())
		if isImageFile(filePath) {
			fileNames = append(fileNames, entry.Name())
		}
	}

	logger.Debug.Printf("Found %d images in %s", len(fileNames), time.Since(start))
	return apitype.NewImageFileSequence(directory, fileNames), nil
}

// LoadImageFiles is Scan that never fails. An unreadable directory yields an
// empty sequence.
func (s *Library) LoadImageFiles(directory string) *apitype.ImageFileSequence {
	images, err := s.Scan(directory)
	if err != nil {
		logger.Warn.Printf("Could not list images: %s", err)
		return apitype.NewEmptyImageFileSequence(directory)
	}
	return images
}

// ListDirectories returns the names of the visible sub-directories sorted by
// name.
func (s *Library) ListDirectories(directory string) []string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn.Printf("Could not list directories of '%s': %s", directory, err)
		return []string{}
	}

	directories := []string{}
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		if isDirectory(filepath.Join(directory, entry.Name())) {
			directories = append(directories, entry.Name())
		}
	}
	sort.Strings(directories)
	return directories
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isImageFile follows symlinks and looks at the content, not the extension.
func isImageFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
		return false
	}

	format, err := imagereader.DetectFileFormat(path)
	if err != nil {
		logger.Trace.Printf("Skipping '%s': %s", path, err)
		return false
	}
	logger.Trace.Printf(" - %s (%s)", path, format)
	return true
}

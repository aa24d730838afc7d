package widget

import (
	"path/filepath"
	"sync"

	"github.com/AllenDang/giu"
)

const parentDirectoryLabel = ".."

// DirectoryListWidget is the sidebar listing the sub-directories of the
// current directory.
type DirectoryListWidget struct {
	directory      string
	subdirectories []string
	width          float32
	onSelect       func(directory string)
	mux            sync.Mutex
}

func DirectoryList(width float32, onSelect func(directory string)) *DirectoryListWidget {
	return &DirectoryListWidget{
		width:    width,
		onSelect: onSelect,
	}
}

func (s *DirectoryListWidget) SetDirectory(directory string, subdirectories []string) *DirectoryListWidget {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.directory = directory
	s.subdirectories = make([]string, len(subdirectories))
	copy(s.subdirectories, subdirectories)
	return s
}

func (s *DirectoryListWidget) Build() {
	s.mux.Lock()
	defer s.mux.Unlock()

	var rows []giu.Widget
	if parent := filepath.Dir(s.directory); s.directory != "" && parent != s.directory {
		rows = append(rows, s.entry(parentDirectoryLabel, parent))
	}
	for _, name := range s.subdirectories {
		rows = append(rows, s.entry(name, filepath.Join(s.directory, name)))
	}

	giu.Child().
		Layout(rows...).
		Border(true).
		Size(s.width, 0).
		Build()
}

func (s *DirectoryListWidget) entry(label string, directory string) giu.Widget {
	return giu.Selectable(label).
		OnClick(func() {
			s.onSelect(directory)
		})
}

package apitype

// ImageFileSequence is the immutable result of one directory enumeration.
// Indices are contiguous from 0 and follow the scan order.
type ImageFileSequence struct {
	directory  string
	imageFiles []*ImageFile
}

// NewImageFileSequence assigns each file its index in the given order.
func NewImageFileSequence(directory string, fileNames []string) *ImageFileSequence {
	imageFiles := make([]*ImageFile, len(fileNames))
	for i, fileName := range fileNames {
		imageFiles[i] = NewImageFileWithId(ImageId(i), directory, fileName)
	}
	return &ImageFileSequence{
		directory:  directory,
		imageFiles: imageFiles,
	}
}

func NewEmptyImageFileSequence(directory string) *ImageFileSequence {
	return NewImageFileSequence(directory, nil)
}

func (s *ImageFileSequence) Directory() string {
	if s != nil {
		return s.directory
	}
	return ""
}

func (s *ImageFileSequence) Len() int {
	if s != nil {
		return len(s.imageFiles)
	}
	return 0
}

func (s *ImageFileSequence) IsEmpty() bool {
	return s.Len() == 0
}

func (s *ImageFileSequence) Contains(index int) bool {
	return index >= 0 && index < s.Len()
}

func (s *ImageFileSequence) At(index int) (*ImageFile, bool) {
	if !s.Contains(index) {
		return nil, false
	}
	return s.imageFiles[index], true
}

// ImageFiles returns a copy so callers can't reorder the sequence.
func (s *ImageFileSequence) ImageFiles() []*ImageFile {
	if s == nil {
		return nil
	}
	imageFiles := make([]*ImageFile, len(s.imageFiles))
	copy(imageFiles, s.imageFiles)
	return imageFiles
}

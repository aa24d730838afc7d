package api

import "vincit.fi/image-binder/api/apitype"

type ImageLibrary interface {
	Scan(directory string) (*apitype.ImageFileSequence, error)
	LoadImageFiles(directory string) *apitype.ImageFileSequence
	ListDirectories(directory string) []string
}

package action

import (
	"context"
	"fmt"
	"os"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/api/apitype"
	"vincit.fi/image-binder/common/logger"
)

// ImageResolver tells which sequence is currently shown.
type ImageResolver interface {
	Images() *apitype.ImageFileSequence
}

type Dispatcher struct {
	images    ImageResolver
	workspace api.Workspace

	api.ActionDispatcher
}

func NewDispatcher(images ImageResolver, workspace api.Workspace) *Dispatcher {
	return &Dispatcher{
		images:    images,
		workspace: workspace,
	}
}

// Perform runs the action on an image of the given sequence. The sequence
// must still be the one shown. Every failure is returned as an action
// error; nothing is retried.
func (s *Dispatcher) Perform(ctx context.Context, action apitype.Action, images *apitype.ImageFileSequence, imageId apitype.ImageId) error {
	if images != s.images.Images() {
		return apitype.NewActionError("", fmt.Errorf("%s on image %d: %w", action, imageId, apitype.ErrStaleIndex))
	}

	imageFile, ok := images.At(int(imageId))
	if !ok {
		return apitype.NewActionError("", fmt.Errorf("%s on image %d: %w", action, imageId, apitype.ErrIndexOutOfRange))
	}

	logger.Debug.Printf("%s %s", action, imageFile)
	if err := s.perform(ctx, action, imageFile.Path()); err != nil {
		logger.Error.Printf("%s failed for %s: %s", action, imageFile, err)
		return apitype.NewActionError(imageFile.Path(), err)
	}
	return nil
}

func (s *Dispatcher) perform(ctx context.Context, action apitype.Action, path string) error {
	switch action.Kind() {
	case apitype.ActionOpen:
		return s.workspace.Open(ctx, path)
	case apitype.ActionOpenWith:
		return s.workspace.OpenWith(ctx, path, action.ApplicationId())
	case apitype.ActionReveal:
		return s.workspace.Reveal(ctx, path)
	case apitype.ActionCopyToClipboard:
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return s.workspace.CopyImage(ctx, data)
	default:
		return fmt.Errorf("unknown action %s", action)
	}
}

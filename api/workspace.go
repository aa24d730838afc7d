package api

import "context"

// Workspace is the host desktop: file manager, application launcher and
// clipboard.
type Workspace interface {
	Open(ctx context.Context, path string) error
	OpenWith(ctx context.Context, path string, applicationId string) error
	Reveal(ctx context.Context, path string) error
	CopyImage(ctx context.Context, data []byte) error
}

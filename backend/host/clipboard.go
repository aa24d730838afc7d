package host

import (
	"context"
	"sync"

	"golang.design/x/clipboard"
	"vincit.fi/image-binder/common/logger"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// WriteSystemClipboard writes the PNG data to the system clipboard. The
// clipboard is initialised on first use.
func WriteSystemClipboard(ctx context.Context, pngData []byte) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
		if clipboardErr != nil {
			logger.Error.Printf("Clipboard not available: %s", clipboardErr)
		}
	})
	if clipboardErr != nil {
		return clipboardErr
	}

	// The returned channel only closes when another program takes the
	// clipboard over, so it is not waited for.
	clipboard.Write(clipboard.FmtImage, pngData)
	logger.Debug.Printf("Copied %d bytes of PNG to clipboard", len(pngData))
	return ctx.Err()
}

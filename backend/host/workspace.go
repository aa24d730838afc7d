package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"vincit.fi/image-binder/api"
	"vincit.fi/image-binder/common/imagereader"
	"vincit.fi/image-binder/common/logger"
)

const darwin = "darwin"

var ErrUnsupported = errors.New("not supported on this platform")

// CommandRunner runs an external program and waits for it to exit.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// ClipboardWriter puts PNG encoded image data on the clipboard.
type ClipboardWriter func(ctx context.Context, pngData []byte) error

type Workspace struct {
	goos           string
	run            CommandRunner
	writeClipboard ClipboardWriter

	api.Workspace
}

func NewWorkspace() *Workspace {
	return NewWorkspaceWith(runtime.GOOS, RunCommand, WriteSystemClipboard)
}

func NewWorkspaceWith(goos string, run CommandRunner, writeClipboard ClipboardWriter) *Workspace {
	return &Workspace{
		goos:           goos,
		run:            run,
		writeClipboard: writeClipboard,
	}
}

// Open opens the file in its default application.
func (s *Workspace) Open(ctx context.Context, path string) error {
	if s.goos == darwin {
		return s.run(ctx, "open", path)
	}
	return s.run(ctx, "xdg-open", path)
}

// OpenWith opens the file in the application with the given bundle
// identifier. Only macOS knows about bundle identifiers.
func (s *Workspace) OpenWith(ctx context.Context, path string, applicationId string) error {
	if s.goos != darwin {
		return fmt.Errorf("open with %s: %w", applicationId, ErrUnsupported)
	}
	return s.run(ctx, "open", "-b", applicationId, path)
}

// Reveal shows the file in the file manager. Elsewhere than macOS the
// containing directory is opened instead.
func (s *Workspace) Reveal(ctx context.Context, path string) error {
	if s.goos == darwin {
		return s.run(ctx, "open", "-R", path)
	}
	return s.run(ctx, "xdg-open", filepath.Dir(path))
}

// CopyImage puts the image on the clipboard as PNG. Data in other formats
// is converted first.
func (s *Workspace) CopyImage(ctx context.Context, data []byte) error {
	pngData, err := toPng(data)
	if err != nil {
		return err
	}
	return s.writeClipboard(ctx, pngData)
}

func toPng(data []byte) ([]byte, error) {
	format, err := imagereader.DetectFormat(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not an image: %w", err)
	}
	if format == "png" {
		return data, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, decoded); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RunCommand runs the program and reports its output on failure.
func RunCommand(ctx context.Context, name string, args ...string) error {
	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	logger.Debug.Printf("Ran %s %s in %s", name, strings.Join(args, " "), time.Since(start))

	if err != nil {
		message := strings.TrimSpace(string(output))
		if message != "" {
			return fmt.Errorf("%s failed: %w: %s", name, err, message)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

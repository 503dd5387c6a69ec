package shared

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/zjrosen/twig/internal/log"
)

// Opener hands a file to the desktop's default application.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// SystemOpener runs open, xdg-open or start depending on the OS.
type SystemOpener struct{}

func (SystemOpener) Open(ctx context.Context, path string) error {
	name, args := openCommand(runtime.GOOS, path)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	log.Debug(log.CatUI, "Opened file", "path", path, "with", name)
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Package launcher hands a written worksheet to the desktop's default
// application, for printing from a viewer.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Launcher opens files with the platform opener
type Launcher struct {
	goos string
}

// New creates a launcher for the running platform
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// Open launches the default application for path and returns once the
// opener has exited. Viewers that outlive the opener keep running.
func (l *Launcher) Open(path string) error {
	cmd, err := l.Command(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// Command builds the opener invocation for path. The path must name an
// existing regular file; it is made absolute so the opener does not depend
// on its working directory.
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("not a file: %s", abs)
	}

	switch l.goos {
	case "darwin":
		return exec.Command("open", abs), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", abs), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", abs), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

// Package editor opens scratch files in the user's editor for bulk word entry.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"spellsheet/internal/ports"
)

// scratchHeader is written at the top of a new bulk-add file
const scratchHeader = "# One word per line. Lines starting with # are ignored.\n"

// Opener implements ports.EditorOpener
type Opener struct {
	// lookup resolves the editor command; tests replace it
	lookup func() []string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: findEditor}
}

// OpenFile opens a file in the user's preferred editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor, for use with
// tea.ExecProcess. $EDITOR may carry arguments, such as "code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.lookup()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor command line to use
func findEditor() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}

// NewScratch creates a temp file pre-filled with the bulk-add header.
// The caller removes it when done.
func NewScratch() (string, error) {
	f, err := os.CreateTemp("", "spellsheet-words-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(scratchHeader); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}
	return f.Name(), nil
}

// ReadScratch returns the scratch file contents without comment lines
func ReadScratch(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}

	var b strings.Builder
	for line := range strings.Lines(string(data)) {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

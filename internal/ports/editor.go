package ports

import "os/exec"

// EditorOpener opens scratch files (bulk word entry) in an external editor
type EditorOpener interface {
	// OpenFile blocks until the editor exits
	OpenFile(path string) error

	// Command returns an exec.Cmd for the editor, for use with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

package launcher

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommand_PerPlatform(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "worksheet.txt")
	if err := os.WriteFile(file, []byte("apple\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		goos     string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantArgs: []string{"open", file}},
		{goos: "linux", wantArgs: []string{"xdg-open", file}},
		{goos: "windows", wantArgs: []string{"cmd", "/c", "start", "", file}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l := &Launcher{goos: tt.goos}
			cmd, err := l.Command(file)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommand_RejectsMissingAndDirectories(t *testing.T) {
	dir := t.TempDir()
	l := &Launcher{goos: "linux"}

	if _, err := l.Command(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := l.Command(dir); err == nil {
		t.Error("expected error for a directory")
	}
}

func TestCommand_MakesPathAbsolute(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sheet.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cmd, err := (&Launcher{goos: "darwin"}).Command("sheet.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "sheet.txt")
	if got := cmd.Args[len(cmd.Args)-1]; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

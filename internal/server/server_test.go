package server

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestDefaultHostKeyPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path, err := DefaultHostKeyPath()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "albumdesk", "ssh_host_ed25519")
	if path != want {
		t.Errorf("DefaultHostKeyPath() = %q, want %q", path, want)
	}
}

func TestProgramOptions(t *testing.T) {
	if got := len(programOptions()); got != 1 {
		t.Errorf("expected one program option, got %d", got)
	}
}

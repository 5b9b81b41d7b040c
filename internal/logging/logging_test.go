package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"off", zerolog.Disabled, false},
		{"loud", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestInitWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "albumdesk.log")
	if err := Init(path, "info"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() {
		Close()
		Logger = zerolog.Nop()
	})

	Debug().Msg("hidden")
	Info().Str("title", "Moonrise").Msg("window spawned")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(out, `"title":"Moonrise"`) || !strings.Contains(out, `"ts":`) {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestInitOffDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.log")
	if err := Init(path, "off"); err != nil {
		t.Fatal(err)
	}
	Info().Msg("dropped")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("log file should not be created when logging is off")
	}
}

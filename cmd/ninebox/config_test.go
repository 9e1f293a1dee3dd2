package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/ninebox"
)

func TestConfigParse(t *testing.T) {
	c := defaultConfig("/home/u")
	c.parse(strings.NewReader(strings.Join([]string{
		"# ninebox",
		"state = ~/fonts/state",
		"export_dir=/tmp/out",
		"cellsize=64",
		"debounce_ms=100",
		"unknown=1",
		"no equals sign",
	}, "\n")), "/home/u")

	if c.StatePath != filepath.Join("/home/u", "fonts/state") {
		t.Errorf("StatePath = %q", c.StatePath)
	}
	if c.ExportDir != "/tmp/out" {
		t.Errorf("ExportDir = %q", c.ExportDir)
	}
	if c.ExportSize != 64 {
		t.Errorf("ExportSize = %d", c.ExportSize)
	}
	if c.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v", c.Debounce)
	}
}

func TestConfigParseKeepsDefaultsOnBadValues(t *testing.T) {
	c := defaultConfig("")
	c.parse(strings.NewReader("cellsize=-4\ndebounce=soon\n"), "")
	if c.ExportSize != 128 || c.Debounce != ninebox.DefaultDebounce {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c := loadConfig(filepath.Join(t.TempDir(), "absent"))
	if c.ExportSize != 128 {
		t.Errorf("ExportSize = %d", c.ExportSize)
	}
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		want    string
		wantErr bool
	}{
		{"no dir", "", "out.png", false},
		{"created", filepath.Join(dir, "a", "b"), filepath.Join(dir, "a", "b", "out.png"), false},
		{"under a file", filepath.Join(blocker, "sub"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig("")
			cfg.ExportDir = tt.dir
			got, err := cfg.exportPath("out.png")
			if (err != nil) != tt.wantErr {
				t.Fatalf("exportPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("exportPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenWorkspaceActivates(t *testing.T) {
	ws, err := openWorkspace(nil)
	if err != nil {
		t.Fatal(err)
	}
	if ws.Active() == nil {
		t.Error("no active document after openWorkspace")
	}
	if _, err := openWorkspace([]string{filepath.Join(t.TempDir(), "missing.ttf")}); err == nil {
		t.Error("openWorkspace accepted a missing font file")
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/ninebox"
)

// Config holds the settings read from ~/.nineboxrc.
type Config struct {
	StatePath  string
	ExportDir  string
	ExportSize int
	Debounce   time.Duration
}

func defaultConfig(homeDir string) *Config {
	c := &Config{
		ExportSize: 128,
		Debounce:   ninebox.DefaultDebounce,
	}
	if homeDir != "" {
		c.StatePath = filepath.Join(homeDir, ".ninebox", "state")
	}
	return c
}

// loadConfig reads path, or ~/.nineboxrc when path is empty. A missing
// file yields the defaults.
func loadConfig(path string) *Config {
	homeDir, _ := os.UserHomeDir()
	config := defaultConfig(homeDir)

	if path == "" {
		if homeDir == "" {
			return config
		}
		path = filepath.Join(homeDir, ".nineboxrc")
	}
	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "statefile", "state_file", "state":
			c.StatePath = expandPath(value, homeDir)
		case "exportdirectory", "export_directory", "exportdir":
			c.ExportDir = expandPath(value, homeDir)
		case "exportsize", "export_size", "cellsize":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				c.ExportSize = n
			}
		case "debounce", "debounce_ms":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				c.Debounce = time.Duration(n) * time.Millisecond
			}
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// exportPath returns where an export named filename is written, creating
// the export directory if needed.
func (c *Config) exportPath(filename string) (string, error) {
	if c.ExportDir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}
	return filepath.Join(c.ExportDir, filename), nil
}

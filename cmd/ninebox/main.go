// Command ninebox previews glyphs of a font in a 3×3 grid around a chosen
// glyph, in the terminal.
//
// Usage:
//
//	ninebox [-font path]... [-state file] [-log file] [font files...]
//
// Without fonts the Go Regular and Go Bold faces are loaded.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ninebox"
	"github.com/gogpu/ninebox/font"
	"github.com/gogpu/ninebox/prefs"
)

// fontList collects repeated -font flags.
type fontList []string

func (f *fontList) String() string { return strings.Join(*f, ",") }

func (f *fontList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var fonts fontList
	flag.Var(&fonts, "font", "font file to open (repeatable)")
	var (
		rcPath    = flag.String("config", "", "config file (default ~/.nineboxrc)")
		statePath = flag.String("state", "", "state file (overrides the config file)")
		logPath   = flag.String("log", "", "write a debug log to this file")
		noState   = flag.Bool("no-state", false, "do not load or save state")
	)
	flag.Parse()
	fonts = append(fonts, flag.Args()...)

	cfg := loadConfig(*rcPath)
	if *statePath != "" {
		cfg.StatePath = *statePath
	}
	if *noState {
		cfg.StatePath = ""
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		ninebox.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ws, err := openWorkspace(fonts)
	if err != nil {
		log.Fatal(err)
	}

	c := ninebox.New(ws, ninebox.WithDebounce(cfg.Debounce))

	var store *prefs.FileStore
	if cfg.StatePath != "" {
		store, err = prefs.OpenFile(cfg.StatePath)
		if err != nil {
			log.Printf("Ignoring saved state: %v", err)
			store = nil
		} else if err := c.Load(store); err != nil {
			log.Printf("Ignoring saved state: %v", err)
		}
	}

	p := tea.NewProgram(newModel(c, ws, store, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("ninebox: %v", err)
	}
}

// openWorkspace opens every path, or the Go fonts when paths is empty.
func openWorkspace(paths []string) (*font.Workspace, error) {
	ws := font.NewWorkspace()
	if len(paths) == 0 {
		if _, err := ws.OpenBytes("Go Regular", goregular.TTF); err != nil {
			return nil, err
		}
		if _, err := ws.OpenBytes("Go Bold", gobold.TTF); err != nil {
			return nil, err
		}
		if err := ws.Activate(0); err != nil {
			return nil, err
		}
		return ws, nil
	}
	for _, p := range paths {
		if _, err := ws.Open(p); err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
	}
	if err := ws.Activate(0); err != nil {
		return nil, fmt.Errorf("activate %s: %w", paths[0], err)
	}
	return ws, nil
}

package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	var m MemoryStore

	if _, ok := m.String("missing"); ok {
		t.Error("String(missing) reported ok")
	}
	m.SetString("s", "天")
	m.SetBool("b", true)
	m.SetStrings("l", []string{"A", "", "B"})

	if s, ok := m.String("s"); !ok || s != "天" {
		t.Errorf("String(s) = %q, %v", s, ok)
	}
	if b, ok := m.Bool("b"); !ok || !b {
		t.Errorf("Bool(b) = %v, %v", b, ok)
	}
	l, ok := m.Strings("l")
	if !ok || !slices.Equal(l, []string{"A", "", "B"}) {
		t.Errorf("Strings(l) = %q, %v", l, ok)
	}
	l[0] = "mutated"
	if again, _ := m.Strings("l"); again[0] != "A" {
		t.Error("Strings returned the stored slice")
	}

	if _, ok := m.Bool("s"); ok {
		t.Error("Bool on a string key reported ok")
	}
	if got := m.Keys(); !slices.Equal(got, []string{"b", "l", "s"}) {
		t.Errorf("Keys() = %q", got)
	}
	m.Delete("s")
	if _, ok := m.String("s"); ok {
		t.Error("Delete kept the key")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "ninebox.prefs")

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	fs.SetString("lastSearchText", "天 地 \"quoted\"\n")
	fs.SetString("looksBool", "true")
	fs.SetBool("lockModeActive", true)
	fs.SetStrings("lockInputs", []string{"A", "", "", "", "", "", "", "", "a.sc"})
	fs.SetStrings("empty", nil)
	if err := fs.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := loaded.String("lastSearchText"); s != "天 地 \"quoted\"\n" {
		t.Errorf("lastSearchText = %q", s)
	}
	if s, ok := loaded.String("looksBool"); !ok || s != "true" {
		t.Errorf("looksBool = %q, %v; want the string true", s, ok)
	}
	if b, ok := loaded.Bool("lockModeActive"); !ok || !b {
		t.Errorf("lockModeActive = %v, %v", b, ok)
	}
	l, _ := loaded.Strings("lockInputs")
	if len(l) != 9 || l[0] != "A" || l[8] != "a.sc" {
		t.Errorf("lockInputs = %q", l)
	}
	if l, ok := loaded.Strings("empty"); !ok || len(l) != 0 {
		t.Errorf("empty = %q, %v", l, ok)
	}
}

func TestFileStoreReadsHandEditedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")
	content := strings.Join([]string{
		"# ninebox state",
		"",
		"lastSearchText = abc",
		"garbage line",
		"baseArrangement[2]=\"C\"",
		"baseArrangement[0]=\"A\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := fs.String("lastSearchText"); s != "abc" {
		t.Errorf("lastSearchText = %q", s)
	}
	l, _ := fs.Strings("baseArrangement")
	if !slices.Equal(l, []string{"A", "", "C"}) {
		t.Errorf("baseArrangement = %q", l)
	}
}

func TestFileStoreBadListValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")
	if err := os.WriteFile(path, []byte("lockInputs[0]=\"unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Error("OpenFile accepted an unterminated quoted list element")
	}
}

func TestFileStoreListIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"max int", `lockInputs[9223372036854775807]="A"`},
		{"max int minus one", `lockInputs[9223372036854775806]="A"`},
		{"huge", `lockInputs[4000000000]="A"`},
		{"at limit", fmt.Sprintf(`lockInputs[%d]="A"`, MaxListLen)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs")
			data := "lastSearchText=\"A\"\n" + tt.line + "\n"
			if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := OpenFile(path)
			if err == nil {
				t.Fatal("OpenFile accepted an out of range list index")
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not name the line", err)
			}
		})
	}
}

func TestFileStoreListIndexBelowLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")
	line := fmt.Sprintf("lockInputs[%d]=\"A\"\n", MaxListLen-1)
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		t.Fatal(err)
	}
	fs, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	list, ok := fs.Strings("lockInputs")
	if !ok || len(list) != MaxListLen || list[MaxListLen-1] != "A" {
		t.Errorf("Strings() = %d elements, ok=%v", len(list), ok)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	fs, err := OpenFile(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatal(err)
	}
	if len(fs.Keys()) != 0 {
		t.Errorf("keys = %q", fs.Keys())
	}
}

func TestFileStoreNoPath(t *testing.T) {
	var fs FileStore
	if err := fs.Save(); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save() = %v, want ErrNoPath", err)
	}
}

func TestListKey(t *testing.T) {
	tests := []struct {
		in   string
		name string
		idx  int
		ok   bool
	}{
		{"a[0]", "a", 0, true},
		{"lockInputs[8]", "lockInputs", 8, true},
		{"a[]", "a", -1, true},
		{"a", "", 0, false},
		{"[0]", "", 0, false},
		{"a[x]", "", 0, false},
		{"a[-1]", "", 0, false},
	}
	for _, tt := range tests {
		name, idx, ok := listKey(tt.in)
		if name != tt.name || idx != tt.idx || ok != tt.ok {
			t.Errorf("listKey(%q) = %q, %d, %v", tt.in, name, idx, ok)
		}
	}
}

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore is a MemoryStore backed by a text file of key=value lines.
//
//	# comment
//	lastSearchText="天 地"
//	lockModeActive=true
//	lockInputs[0]="A"
//	lockInputs[1]=""
//
// Strings are Go-quoted, booleans are true or false and list elements
// carry their index in brackets. Nothing touches the disk until Save.
type FileStore struct {
	MemoryStore
	path string
}

// OpenFile reads path into a new FileStore. A missing file yields an empty
// store bound to path.
func OpenFile(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("prefs: open %s: %w", path, err)
	}
	defer f.Close()

	if err := fs.read(f); err != nil {
		return nil, fmt.Errorf("prefs: read %s: %w", path, err)
	}
	return fs, nil
}

// Path returns the backing file.
func (fs *FileStore) Path() string { return fs.path }

// Save writes every value to the backing file, creating its directory.
func (fs *FileStore) Save() error {
	if fs.path == "" {
		return ErrNoPath
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	tmp := fs.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	w := bufio.NewWriter(f)
	fs.write(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

func (fs *FileStore) write(w io.Writer) {
	for _, key := range fs.Keys() {
		v := fs.values[key]
		switch v.kind {
		case kindString:
			fmt.Fprintf(w, "%s=%s\n", key, strconv.Quote(v.s))
		case kindBool:
			fmt.Fprintf(w, "%s=%t\n", key, v.b)
		case kindStrings:
			if len(v.list) == 0 {
				fmt.Fprintf(w, "%s[]=\n", key)
			}
			for i, s := range v.list {
				fmt.Fprintf(w, "%s[%d]=%s\n", key, i, strconv.Quote(s))
			}
		}
	}
}

// MaxListLen bounds the index of a list element read from a file.
const MaxListLen = 1024

func (fs *FileStore) read(r io.Reader) error {
	lists := make(map[string]map[int]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		raw := strings.TrimSpace(parts[1])

		if name, idx, ok := listKey(key); ok {
			if lists[name] == nil {
				lists[name] = make(map[int]string)
			}
			if idx < 0 {
				continue
			}
			if idx >= MaxListLen {
				return fmt.Errorf("line %d: list index %d out of range", lineNo, idx)
			}
			s, err := strconv.Unquote(raw)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			lists[name][idx] = s
			continue
		}

		switch raw {
		case "true", "false":
			fs.SetBool(key, raw == "true")
		default:
			s, err := strconv.Unquote(raw)
			if err != nil {
				// Unquoted values are accepted as hand-edited strings.
				s = raw
			}
			fs.SetString(key, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	for name, elems := range lists {
		n := 0
		for i := range elems {
			n = max(n, i+1)
		}
		list := make([]string, n)
		for i, s := range elems {
			list[i] = s
		}
		fs.SetStrings(name, list)
	}
	return nil
}

// listKey splits "name[3]" into ("name", 3). "name[]" yields index -1.
func listKey(key string) (string, int, bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", 0, false
	}
	inner := key[open+1 : len(key)-1]
	if inner == "" {
		return key[:open], -1, true
	}
	idx, err := strconv.Atoi(inner)
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return key[:open], idx, true
}

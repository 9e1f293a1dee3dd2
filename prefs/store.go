// Package prefs is the flat key/value store that ninebox state is saved to.
//
// Values are strings, booleans and ordered string lists. MemoryStore keeps
// them in memory; FileStore persists them as a key=value text file.
package prefs

import (
	"errors"
	"slices"
	"sort"
)

// ErrNoPath is returned by FileStore.Save when the store has no file.
var ErrNoPath = errors.New("prefs: file store has no path")

// Store is a flat key/value preference store.
type Store interface {
	String(key string) (string, bool)
	Strings(key string) ([]string, bool)
	Bool(key string) (bool, bool)

	SetString(key, value string)
	SetStrings(key string, values []string)
	SetBool(key string, value bool)
}

type kind int

const (
	kindString kind = iota
	kindStrings
	kindBool
)

type value struct {
	kind kind
	s    string
	list []string
	b    bool
}

// MemoryStore is a Store held in memory. The zero value is ready to use.
type MemoryStore struct {
	values map[string]value
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// String implements Store.
func (m *MemoryStore) String(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok || v.kind != kindString {
		return "", false
	}
	return v.s, true
}

// Strings implements Store. The returned slice is a copy.
func (m *MemoryStore) Strings(key string) ([]string, bool) {
	v, ok := m.values[key]
	if !ok || v.kind != kindStrings {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Bool implements Store.
func (m *MemoryStore) Bool(key string) (bool, bool) {
	v, ok := m.values[key]
	if !ok || v.kind != kindBool {
		return false, false
	}
	return v.b, true
}

// SetString implements Store.
func (m *MemoryStore) SetString(key, s string) {
	m.set(key, value{kind: kindString, s: s})
}

// SetStrings implements Store.
func (m *MemoryStore) SetStrings(key string, list []string) {
	m.set(key, value{kind: kindStrings, list: slices.Clone(list)})
}

// SetBool implements Store.
func (m *MemoryStore) SetBool(key string, b bool) {
	m.set(key, value{kind: kindBool, b: b})
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) {
	delete(m.values, key)
}

// Keys returns the stored keys in sorted order.
func (m *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MemoryStore) set(key string, v value) {
	if m.values == nil {
		m.values = make(map[string]value)
	}
	m.values[key] = v
}

package billy

import (
	"io/fs"
	"strings"
	"sync"
	"time"
)

// memoryAttrs records the mode and modification time of memfs entries. memfs
// keeps the mode given at creation and reports the current time as ModTime,
// so both are tracked here, keyed by absolute path.
type memoryAttrs struct {
	mu      sync.RWMutex
	entries map[string]attrs
}

type attrs struct {
	mode    fs.FileMode
	hasMode bool
	mtime   time.Time
}

func newMemoryAttrs() *memoryAttrs {
	return &memoryAttrs{entries: make(map[string]attrs)}
}

// Chmod records mode for name. mode carries the type bits.
func (m *memoryAttrs) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.entries[name]
	a.mode, a.hasMode = mode, true
	m.entries[name] = a
	return nil
}

// Chtimes records mtime for name. memfs has no access time.
func (m *memoryAttrs) Chtimes(name string, _, mtime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.entries[name]
	a.mtime = mtime
	m.entries[name] = a
	return nil
}

// touch sets the modification time of name to now.
func (m *memoryAttrs) touch(name string) {
	_ = m.Chtimes(name, time.Time{}, time.Now())
}

// forget drops name and everything below it.
func (m *memoryAttrs) forget(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if within(key, name) {
			delete(m.entries, key)
		}
	}
}

// move relocates the attributes of from and its descendants to to, replacing
// whatever was recorded for to.
func (m *memoryAttrs) move(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	moved := make(map[string]attrs)
	for key, a := range m.entries {
		if within(key, from) {
			moved[to+strings.TrimPrefix(key, from)] = a
			delete(m.entries, key)
		}
	}
	for key := range m.entries {
		if within(key, to) {
			delete(m.entries, key)
		}
	}
	for key, a := range moved {
		m.entries[key] = a
	}
}

// apply overlays the recorded attributes of name on info.
func (m *memoryAttrs) apply(name string, info fs.FileInfo) fs.FileInfo {
	m.mu.RLock()
	a, ok := m.entries[name]
	m.mu.RUnlock()
	if !ok {
		return info
	}
	return &attrInfo{FileInfo: info, attrs: a}
}

func within(name, dir string) bool {
	return name == dir || strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/")
}

// attrInfo is a fs.FileInfo with recorded attributes applied.
type attrInfo struct {
	fs.FileInfo
	attrs attrs
}

func (i *attrInfo) Mode() fs.FileMode {
	if i.attrs.hasMode {
		return i.attrs.mode
	}
	return i.FileInfo.Mode()
}

func (i *attrInfo) ModTime() time.Time {
	if !i.attrs.mtime.IsZero() {
		return i.attrs.mtime
	}
	return i.FileInfo.ModTime()
}

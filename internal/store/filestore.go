package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is the secondary durable backend: one JSON document on
// disk holding every key. It is also where progress data from earlier
// releases lives, which the one-time migration reads from.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The file is created lazily
// on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	doc := f.load()
	raw, ok := doc[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func (f *FileStore) Set(key string, value []byte) error {
	doc := f.load()
	doc[key] = json.RawMessage(value)
	return f.save(doc)
}

func (f *FileStore) Delete(key string) error {
	doc := f.load()
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return f.save(doc)
}

// load reads the whole document. A missing or unreadable file yields
// an empty document: the caller sees keys as absent, never an error.
func (f *FileStore) load() map[string]json.RawMessage {
	doc := make(map[string]json.RawMessage)
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnf("read %s: %v", f.path, err)
		}
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		warnf("corrupt backup file %s, treating as empty: %v", f.path, err)
		return make(map[string]json.RawMessage)
	}
	return doc
}

// save writes the document atomically via a temp file and rename.
func (f *FileStore) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup document: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace backup file: %w", err)
	}
	return nil
}

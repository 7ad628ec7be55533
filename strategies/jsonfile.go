package strategies

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONRecord is one element of the array kept by the JSON strategy
type JSONRecord struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// JSON keeps all entries as an indented JSON array in a single file.
// Every write reads the array, appends and replaces the file through a temp file
// and rename, so a failed write leaves the previous array intact.
type JSON struct {
	path string
	mu   sync.Mutex
}

// NewJSON creates a JSON strategy backed by path
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Path returns the configured file path
func (j *JSON) Path() string {
	return j.path
}

// ReadJSONRecords loads the array stored at path. A missing file yields no records.
func ReadJSONRecords(path string) ([]JSONRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []JSONRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return records, nil
}

// Log implements the Strategy interface
func (j *JSON) Log(entry Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	records, err := ReadJSONRecords(j.path)
	if err != nil {
		return sinkError(KindJSON, err)
	}

	records = append(records, JSONRecord{
		Timestamp: entry.Time.Format(TimeFormat),
		Level:     entry.Level.String(),
		Message:   entry.Message,
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return sinkError(KindJSON, fmt.Errorf("failed to encode records: %w", err))
	}

	return sinkError(KindJSON, j.replace(data))
}

func (j *JSON) replace(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(j.path), filepath.Base(j.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, j.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", j.path, err)
	}
	return nil
}

// Sync implements the Strategy interface. Every Log already rewrites the file.
func (j *JSON) Sync() error {
	return nil
}

// Kind implements the Strategy interface
func (j *JSON) Kind() string {
	return KindJSON
}

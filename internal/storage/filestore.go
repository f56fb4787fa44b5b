package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/nebulastellary-afk/fash-rodah/internal/models"
)

// FileStore persists contact submissions as a JSON array in a single
// flat file, rewritten wholesale on every append and capped at
// maxEntries records (oldest evicted first). A single-writer mutex
// serializes the read-modify-write cycle.
type FileStore struct {
	mu         sync.Mutex
	path       string
	maxEntries int
}

func NewFileStore(path string, maxEntries int) *FileStore {
	return &FileStore{
		path:       path,
		maxEntries: maxEntries,
	}
}

// Append adds a submission to the store, truncating to the most recent
// maxEntries records when over capacity. A missing or corrupt file is
// treated as an empty store.
func (f *FileStore) Append(sub models.ContactSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing := f.read()
	existing = append(existing, sub)

	if len(existing) > f.maxEntries {
		existing = existing[len(existing)-f.maxEntries:]
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}

	return nil
}

// List returns all stored submissions, oldest first. A missing file
// yields an empty list.
func (f *FileStore) List() ([]models.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.ContactSubmission{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var subs []models.ContactSubmission
	if err := json.Unmarshal(file, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.path, err)
	}

	return subs, nil
}

// read loads the current contents for an append, tolerating a missing
// or corrupt file. Caller must hold mu.
func (f *FileStore) read() []models.ContactSubmission {
	file, err := os.ReadFile(f.path)
	if err != nil {
		return []models.ContactSubmission{}
	}

	var subs []models.ContactSubmission
	if err := json.Unmarshal(file, &subs); err != nil {
		return []models.ContactSubmission{}
	}

	return subs
}

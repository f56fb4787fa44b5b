package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nebulastellary-afk/fash-rodah/internal/models"
)

func testSubmission(name string) models.ContactSubmission {
	return models.ContactSubmission{
		ID:            uuid.New(),
		Name:          name,
		Email:         "test@example.com",
		Service:       "home-cleaning",
		Message:       "Please get in touch",
		ContactMethod: "phone",
		IP:            "10.0.0.1",
		Timestamp:     time.Now(),
	}
}

func TestFileStoreAppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	store := NewFileStore(path, 100)

	t.Run("missing file lists empty", func(t *testing.T) {
		subs, err := store.List()
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(subs) != 0 {
			t.Fatalf("got %d submissions, want 0", len(subs))
		}
	})

	t.Run("appends preserve order", func(t *testing.T) {
		for _, name := range []string{"Alice", "Brian", "Carol"} {
			if err := store.Append(testSubmission(name)); err != nil {
				t.Fatalf("Append(%s): %v", name, err)
			}
		}

		subs, err := store.List()
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(subs) != 3 {
			t.Fatalf("got %d submissions, want 3", len(subs))
		}
		if subs[0].Name != "Alice" || subs[2].Name != "Carol" {
			t.Fatalf("order wrong: first=%s last=%s", subs[0].Name, subs[2].Name)
		}
	})
}

func TestFileStoreCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	store := NewFileStore(path, 100)

	for i := 1; i <= 101; i++ {
		if err := store.Append(testSubmission(fmt.Sprintf("visitor-%d", i))); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	subs, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(subs) != 100 {
		t.Fatalf("got %d submissions, want 100", len(subs))
	}
	if subs[0].Name != "visitor-2" {
		t.Fatalf("oldest = %s, want visitor-2 (visitor-1 evicted)", subs[0].Name)
	}
	if subs[99].Name != "visitor-101" {
		t.Fatalf("newest = %s, want visitor-101", subs[99].Name)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	store := NewFileStore(path, 100)

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	t.Run("append treats it as empty", func(t *testing.T) {
		if err := store.Append(testSubmission("Dora")); err != nil {
			t.Fatalf("Append over corrupt file: %v", err)
		}

		subs, err := store.List()
		if err != nil {
			t.Fatalf("List after recovery: %v", err)
		}
		if len(subs) != 1 || subs[0].Name != "Dora" {
			t.Fatalf("got %+v, want single Dora record", subs)
		}
	})

	t.Run("list reports corruption", func(t *testing.T) {
		if err := os.WriteFile(path, []byte("[broken"), 0o644); err != nil {
			t.Fatalf("seed corrupt file: %v", err)
		}

		if _, err := store.List(); err == nil {
			t.Fatal("List on corrupt file succeeded, want error")
		}
	})
}

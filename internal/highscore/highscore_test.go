package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "high_score.txt"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	score, err := store.Load()
	if err != nil {
		t.Errorf("Load() on missing file returned error: %v", err)
	}
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "high_score.txt")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	if err := store.Save(120); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(340); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "340" {
		t.Errorf("file contents = %q, expected %q", data, "340")
	}

	score, err := store.Load()
	if err != nil || score != 340 {
		t.Errorf("Load() = %d, %v; expected 340, nil", score, err)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"garbage", "not a number"},
		{"empty", ""},
		{"negative", "-40"},
		{"float", "12.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			store, _ := NewFileStore(path)

			score, err := store.Load()
			if err == nil {
				t.Error("Load() should report malformed contents")
			}
			if score != 0 {
				t.Errorf("Load() = %d, expected 0", score)
			}
		})
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_score.txt")
	if err := os.WriteFile(path, []byte("  250\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	store, _ := NewFileStore(path)

	score, err := store.Load()
	if err != nil || score != 250 {
		t.Errorf("Load() = %d, %v; expected 250, nil", score, err)
	}
}

func TestFileStoreRejectsNegativeSave(t *testing.T) {
	store, _ := NewFileStore(filepath.Join(t.TempDir(), "high_score.txt"))
	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}

func TestFileStoreUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// Parent "directory" is a regular file.
	store, _ := NewFileStore(filepath.Join(blocker, "high_score.txt"))
	if err := store.Save(10); err == nil {
		t.Error("Save() should fail when the directory cannot be created")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.snake/high_score.txt")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake", "high_score.txt"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(7)
	if score, _ := m.Load(); score != 7 {
		t.Errorf("Load() = %d, expected 7", score)
	}
	if err := m.Save(9); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if score, _ := m.Load(); score != 9 {
		t.Errorf("Load() = %d, expected 9", score)
	}
}

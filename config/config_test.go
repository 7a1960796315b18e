package config

import (
	"os"
	"path/filepath"
	"testing"
)

// newTestService creates a Service rooted in a temp directory.
func newTestService(t *testing.T) *Service {
	t.Helper()
	s := NewService(func(msg string) { t.Log(msg) })
	s.SetStorageDir(t.TempDir())
	return s
}

func TestService_StorageDir_Default(t *testing.T) {
	s := NewService(nil)
	dir, err := s.StorageDir()
	if err != nil {
		t.Fatalf("StorageDir failed: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".devopsdocs")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestService_StorageDir_Custom(t *testing.T) {
	s := NewService(nil)
	s.SetStorageDir("/tmp/devopsdocs-test")
	dir, err := s.StorageDir()
	if err != nil {
		t.Fatalf("StorageDir failed: %v", err)
	}
	if dir != "/tmp/devopsdocs-test" {
		t.Errorf("expected /tmp/devopsdocs-test, got %q", dir)
	}
}

func TestService_Load_DefaultWhenNoFile(t *testing.T) {
	s := newTestService(t)

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Primary == nil || *cfg.Primary != (RGB{R: 31, G: 73, B: 125}) {
		t.Errorf("expected default primary color, got %+v", cfg.Primary)
	}
	if cfg.Accent == nil || *cfg.Accent != (RGB{R: 79, G: 129, B: 189}) {
		t.Errorf("expected default accent color, got %+v", cfg.Accent)
	}
	if cfg.OutputDir == "" {
		t.Error("expected a default output dir")
	}
	if cfg.LogDir == "" {
		t.Error("expected a default log dir")
	}
}

func TestService_SaveAndLoad(t *testing.T) {
	s := newTestService(t)

	original := Config{
		Author:      "Release Team",
		OutputDir:   "/tmp/decks",
		Primary:     &RGB{R: 10, G: 20, B: 30},
		Accent:      &RGB{R: 40, G: 50, B: 60},
		DetailedLog: true,
	}
	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if loaded.Author != original.Author {
		t.Errorf("Author: expected %q, got %q", original.Author, loaded.Author)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("OutputDir: expected %q, got %q", original.OutputDir, loaded.OutputDir)
	}
	if loaded.Primary == nil || *loaded.Primary != *original.Primary {
		t.Errorf("Primary: expected %+v, got %+v", original.Primary, loaded.Primary)
	}
	if !loaded.DetailedLog {
		t.Error("DetailedLog not persisted")
	}
}

func TestService_Save_RejectsInvalidColor(t *testing.T) {
	s := newTestService(t)

	cfg := Config{Primary: &RGB{R: 300, G: 0, B: 0}}
	if err := s.Save(cfg); err == nil {
		t.Fatal("expected an error for an out-of-range channel")
	}
}

func TestService_Load_FallsBackOnInvalidColor(t *testing.T) {
	s := newTestService(t)
	dir, _ := s.StorageDir()

	raw := `{"author":"Ops","primary":{"r":-1,"g":0,"b":0}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Author != "Ops" {
		t.Errorf("Author: expected Ops, got %q", cfg.Author)
	}
	if cfg.Primary == nil || *cfg.Primary != (RGB{R: 31, G: 73, B: 125}) {
		t.Errorf("expected invalid primary replaced by default, got %+v", cfg.Primary)
	}
}

func TestService_Load_MalformedJSON(t *testing.T) {
	s := newTestService(t)
	dir, _ := s.StorageDir()

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := s.Load(); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestRGB_Valid(t *testing.T) {
	cases := []struct {
		c    RGB
		want bool
	}{
		{RGB{0, 0, 0}, true},
		{RGB{255, 255, 255}, true},
		{RGB{256, 0, 0}, false},
		{RGB{0, -1, 0}, false},
	}
	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("Valid(%+v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitCreatesNumberedRunFiles(t *testing.T) {
	dir := t.TempDir()

	first := NewLogger()
	if err := first.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	first.Close()

	second := NewLogger()
	if err := second.Init(dir); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	second.Close()

	date := time.Now().Format("2006-01-02")
	for i, l := range []*Logger{first, second} {
		want := filepath.Join(dir, fmt.Sprintf("devopsdocs_%s_%d.log", date, i+1))
		if l.Path() != want {
			// Close clears the handle but the path should survive for reporting.
			t.Errorf("run %d path = %q, want %q", i+1, l.Path(), want)
		}
	}
}

func TestLogLinesCarryTimestamps(t *testing.T) {
	dir := t.TempDir()

	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Log("building deck")
	l.Logf("saved %d slides", 4)
	path := l.Path()
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	for _, want := range []string{"Run started", "building deck", "saved 4 slides", "Run finished"} {
		if !strings.Contains(content, want) {
			t.Errorf("log is missing %q:\n%s", want, content)
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if !strings.HasPrefix(line, "[") || !strings.Contains(line, "] ") {
			t.Errorf("line lacks timestamp prefix: %q", line)
		}
	}
}

func TestLogBeforeInitIsNoOp(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Close()
	if l.Path() != "" {
		t.Errorf("path = %q before Init", l.Path())
	}
}

func TestInitCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
}

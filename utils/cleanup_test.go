package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCleanupScratchDirs(t *testing.T) {
	velho, err := os.MkdirTemp("", "pdf-merge-*")
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(velho) })

	antigo := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(velho, antigo, antigo); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	recente, err := os.MkdirTemp("", "pdf-merge-*")
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(recente) })

	outro := filepath.Join(os.TempDir(), "nao-e-rascunho")
	if err := os.MkdirAll(outro, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	antigoOutro := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(outro, antigoOutro, antigoOutro); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(outro) })

	CleanupScratchDirs()

	if _, err := os.Stat(velho); !os.IsNotExist(err) {
		t.Fatal("expected stale scratch dir removed")
	}
	if _, err := os.Stat(recente); err != nil {
		t.Fatalf("expected recent scratch dir kept: %v", err)
	}
	if _, err := os.Stat(outro); err != nil {
		t.Fatalf("expected unrelated dir kept: %v", err)
	}
}

package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsurePlaceholderIconCreates(t *testing.T) {
	manifestDir := t.TempDir()

	if err := EnsurePlaceholderIcon(manifestDir); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(manifestDir, "icons", "icon.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(got, []byte("\x89PNG")) {
		t.Errorf("written placeholder does not start with the PNG magic")
	}
}

func TestEnsurePlaceholderIconLeavesExistingIcon(t *testing.T) {
	manifestDir := t.TempDir()
	iconPath := filepath.Join(manifestDir, "icons", "icon.png")
	if err := os.MkdirAll(filepath.Dir(iconPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(iconPath, []byte("the real icon"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsurePlaceholderIcon(manifestDir); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(iconPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "the real icon" {
		t.Errorf("existing icon was overwritten, content = %q", got)
	}
}

func TestEnsureIconCorruptPayload(t *testing.T) {
	iconPath := filepath.Join(t.TempDir(), "icons", "icon.png")

	if err := ensureIcon(iconPath, "!!! not base64 !!!"); err == nil {
		t.Fatal("corrupt embedded payload did not produce an error")
	}

	if _, err := os.Stat(iconPath); err == nil {
		t.Error("icon file was written despite the corrupt payload")
	}
}

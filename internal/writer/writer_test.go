package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashcompose/reqforge/internal/config"
	"github.com/hashcompose/reqforge/internal/generator"
)

func artifact(path, content string) generator.Artifact {
	return generator.Artifact{FilePath: path, Content: content, Language: "typescript"}
}

func TestWriteAllCreatesFiles(t *testing.T) {
	root := t.TempDir()
	w := New(root, config.ConflictBackup, nil)

	outcomes, err := w.WriteAll([]generator.Artifact{
		artifact("src/services/a.ts", "export const a = 1;"),
		artifact("src/integration/bridge.ts", "export const b = 2;"),
	})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "services", "a.ts"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "export const a = 1;" {
		t.Errorf("content = %q", data)
	}
}

func TestConflictSkip(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.ts")
	if err := os.WriteFile(target, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(root, config.ConflictSkip, nil)
	outcomes, err := w.WriteAll([]generator.Artifact{artifact("a.ts", "replacement")})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if outcomes[0].Action != "skipped" {
		t.Errorf("action = %q, want skipped", outcomes[0].Action)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "original" {
		t.Errorf("existing file was modified under skip policy: %q", data)
	}
}

func TestConflictOverwrite(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.ts")
	if err := os.WriteFile(target, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(root, config.ConflictOverwrite, nil)
	if _, err := w.WriteAll([]generator.Artifact{artifact("a.ts", "replacement")}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "replacement" {
		t.Errorf("content = %q, want replacement", data)
	}
	if _, err := os.Stat(target + ".bak"); err == nil {
		t.Error("overwrite policy should not create backups")
	}
}

func TestConflictBackup(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.ts")
	if err := os.WriteFile(target, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(root, config.ConflictBackup, nil)
	outcomes, err := w.WriteAll([]generator.Artifact{artifact("a.ts", "replacement")})
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if outcomes[0].Action != "backed-up" {
		t.Errorf("action = %q, want backed-up", outcomes[0].Action)
	}

	backup, err := os.ReadFile(target + ".bak")
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backup) != "original" {
		t.Errorf("backup content = %q, want original", backup)
	}
	current, _ := os.ReadFile(target)
	if string(current) != "replacement" {
		t.Errorf("content = %q, want replacement", current)
	}
}

func TestRejectsEscapingPaths(t *testing.T) {
	w := New(t.TempDir(), config.ConflictOverwrite, nil)

	for _, path := range []string{"../evil.ts", "/etc/passwd", ""} {
		if _, err := w.WriteAll([]generator.Artifact{artifact(path, "x")}); err == nil {
			t.Errorf("path %q accepted, want rejection", path)
		}
	}
}

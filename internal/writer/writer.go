// Package writer materializes generated artifacts on disk under an
// output directory, applying a configurable policy when a target file
// already exists.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hashcompose/reqforge/internal/config"
	"github.com/hashcompose/reqforge/internal/generator"
	"github.com/hashcompose/reqforge/internal/progress"
)

// Writer writes artifacts under a root directory.
type Writer struct {
	Root     string
	Policy   config.ConflictPolicy
	Log      *zap.Logger
	Reporter progress.Reporter
}

// New creates a Writer. Nil logger and reporter are replaced with no-ops.
func New(root string, policy config.ConflictPolicy, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	if policy == "" {
		policy = config.ConflictBackup
	}
	return &Writer{Root: root, Policy: policy, Log: log, Reporter: progress.Quiet{}}
}

// Outcome describes what happened to one artifact.
type Outcome struct {
	Path   string `json:"path"`
	Action string `json:"action"` // written, skipped, backed-up
	Backup string `json:"backup,omitempty"`
}

// WriteAll writes every artifact, returning one outcome per artifact.
// A single failed write aborts the batch: partially-written runs are
// easier to reason about than silently incomplete ones.
func (w *Writer) WriteAll(artifacts []generator.Artifact) ([]Outcome, error) {
	w.Reporter.Start(len(artifacts))
	defer w.Reporter.Finish()

	outcomes := make([]Outcome, 0, len(artifacts))
	for i, a := range artifacts {
		w.Reporter.Update(i+1, a.FilePath)

		outcome, err := w.write(a)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (w *Writer) write(a generator.Artifact) (Outcome, error) {
	rel, err := safeRelPath(a.FilePath)
	if err != nil {
		return Outcome{}, fmt.Errorf("artifact %q: %w", a.FilePath, err)
	}
	target := filepath.Join(w.Root, rel)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Outcome{}, fmt.Errorf("creating directory for %s: %w", target, err)
	}

	outcome := Outcome{Path: target, Action: "written"}

	if _, err := os.Stat(target); err == nil {
		switch w.Policy {
		case config.ConflictSkip:
			w.Log.Info("skipping existing file", zap.String("path", target))
			outcome.Action = "skipped"
			return outcome, nil
		case config.ConflictBackup:
			backup := target + ".bak"
			if err := os.Rename(target, backup); err != nil {
				return Outcome{}, fmt.Errorf("backing up %s: %w", target, err)
			}
			w.Log.Info("backed up existing file",
				zap.String("path", target),
				zap.String("backup", backup))
			outcome.Action = "backed-up"
			outcome.Backup = backup
		case config.ConflictOverwrite:
			w.Log.Info("overwriting existing file", zap.String("path", target))
		}
	} else if !os.IsNotExist(err) {
		return Outcome{}, fmt.Errorf("checking %s: %w", target, err)
	}

	if err := os.WriteFile(target, []byte(a.Content), 0o644); err != nil {
		return Outcome{}, fmt.Errorf("writing %s: %w", target, err)
	}
	return outcome, nil
}

// safeRelPath rejects artifact paths that would escape the output root.
func safeRelPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("empty file path")
	}
	cleaned := filepath.Clean(filepath.FromSlash(p))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("path escapes output directory")
	}
	return cleaned, nil
}

package gitlog

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// initTestRepo builds a small repo with three commits:
// 1. add 3 lines, 2. add 2 more lines, 3. delete the second file.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_DATE=2024-03-01T12:00:00+01:00",
			"GIT_COMMITTER_DATE=2024-03-01T12:00:00+01:00",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %s: %v: %s", strings.Join(args, " "), err, out)
		}
	}

	if err := exec.Command("git", "version").Run(); err != nil {
		t.Skip("git not available")
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	write("a.txt", "one\ntwo\nthree\n")
	run("add", "a.txt")
	run("commit", "-m", "initial")

	write("b.txt", "four\nfive\n")
	run("add", "b.txt")
	run("commit", "-m", "add b")

	run("rm", "-q", "b.txt")
	run("commit", "-m", "remove b")

	return dir
}

func TestExtract(t *testing.T) {
	dir := initTestRepo(t)

	extractor := NewExtractor(dir, "git", 4, nil)
	records, err := extractor.Extract(context.Background(), "HEAD")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 commits, got %d", len(records))
	}

	// Oldest first
	if records[0].LinesAdded != 3 || records[0].LinesRemoved != 0 {
		t.Errorf("commit 0: got +%d/-%d, want +3/-0", records[0].LinesAdded, records[0].LinesRemoved)
	}
	if records[1].LinesAdded != 2 || records[1].LinesRemoved != 0 {
		t.Errorf("commit 1: got +%d/-%d, want +2/-0", records[1].LinesAdded, records[1].LinesRemoved)
	}
	if records[2].LinesAdded != 0 || records[2].LinesRemoved != 2 {
		t.Errorf("commit 2: got +%d/-%d, want +0/-2", records[2].LinesAdded, records[2].LinesRemoved)
	}

	for i, rec := range records {
		if rec.Hash == "" {
			t.Errorf("commit %d: empty hash", i)
		}
		if rec.Timestamp.IsZero() {
			t.Errorf("commit %d: zero timestamp", i)
		}
	}

	// Timestamps keep their offset
	_, offset := records[0].Timestamp.Zone()
	if offset != 3600 {
		t.Errorf("expected +01:00 offset, got %d seconds", offset)
	}
}

func TestExtractCanceledContext(t *testing.T) {
	dir := initTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	extractor := NewExtractor(dir, "git", 4, nil)
	if _, err := extractor.Extract(ctx, "HEAD"); err == nil {
		t.Error("expected error when the context is already canceled")
	}
}

func TestListCommitsEmptyRef(t *testing.T) {
	dir := initTestRepo(t)

	extractor := NewExtractor(dir, "git", 4, nil)
	if _, err := extractor.ListCommits(context.Background(), "does-not-exist"); err == nil {
		t.Error("expected error for unknown ref")
	}
}

func TestDetectRepo(t *testing.T) {
	dir := initTestRepo(t)

	if err := DetectRepo(context.Background(), "git", dir); err != nil {
		t.Errorf("DetectRepo() on a repo: %v", err)
	}
	if err := DetectRepo(context.Background(), "git", t.TempDir()); err == nil {
		t.Error("expected error for a non-repo directory")
	}
}

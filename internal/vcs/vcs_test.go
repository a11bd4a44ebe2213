package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func gitOrSkip(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not on PATH")
	}
}

// initRepo creates a git repo with one committed Markdown file.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v: %s", args, err, out)
		}
	}
	run("init")
	if err := os.WriteFile(filepath.Join(dir, "ideas.md"), []byte("# Ideas\nfirst\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "journals/2024/1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "journals/2024/1/17.md"), []byte("# day\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run("add", "--all")
	run("commit", "-m", "initial")
	return dir
}

func TestDiffsExcludesJournals(t *testing.T) {
	gitOrSkip(t)
	repo := NewRepo(initRepo(t))

	out, err := repo.Diffs(context.Background(), "1 year ago", false)
	if err != nil {
		t.Fatalf("Diffs: %v", err)
	}
	if !strings.Contains(out, "ideas.md") {
		t.Errorf("diff missing ideas.md:\n%s", out)
	}
	if strings.Contains(out, "journals/2024/1/17.md") {
		t.Errorf("diff should exclude journals:\n%s", out)
	}
}

func TestDiffsIncludesJournalsWhenAsked(t *testing.T) {
	gitOrSkip(t)
	repo := NewRepo(initRepo(t))

	out, err := repo.Diffs(context.Background(), "1 year ago", true)
	if err != nil {
		t.Fatalf("Diffs: %v", err)
	}
	if !strings.Contains(out, "journals/2024/1/17.md") {
		t.Errorf("diff missing journal entry:\n%s", out)
	}
}

func TestDiffsDefaultsSince(t *testing.T) {
	gitOrSkip(t)
	repo := NewRepo(initRepo(t))
	if _, err := repo.Diffs(context.Background(), "", false); err != nil {
		t.Fatalf("Diffs with default since: %v", err)
	}
}

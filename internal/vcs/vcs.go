// Package vcs wraps the git operations daybook uses to sync the root
// directory with its remote and inspect recent note changes.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repo runs git commands against a daybook root checkout.
type Repo struct {
	dir string
}

// NewRepo creates a Repo for the given directory. The directory is not
// verified to be a git checkout until a command runs.
func NewRepo(dir string) *Repo {
	return &Repo{dir: dir}
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.dir}, args...)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

// Sync stages all changes, commits them, rebases on the remote, and
// pushes. A clean working tree is not an error; the pull and push still
// run so local and remote converge.
func (r *Repo) Sync(ctx context.Context) error {
	if _, err := r.git(ctx, "add", "--all"); err != nil {
		return err
	}
	if out, err := r.git(ctx, "commit", "-m", "sync"); err != nil {
		if !strings.Contains(out, "nothing to commit") {
			return err
		}
	}
	if _, err := r.git(ctx, "pull", "--rebase"); err != nil {
		return err
	}
	if _, err := r.git(ctx, "push"); err != nil {
		return err
	}
	return nil
}

// Diffs returns the patch log of Markdown changes since the given time
// expression (anything git's --since accepts, e.g. "2 days ago").
// Journal entries are excluded unless includeJournals is set.
func (r *Repo) Diffs(ctx context.Context, since string, includeJournals bool) (string, error) {
	if since == "" {
		since = "1 week ago"
	}
	args := []string{"log", "-p", "--since=" + since, "--", "**/*.md"}
	if !includeJournals {
		args = append(args, ":(exclude)journals/**/*.md")
	}
	return r.git(ctx, args...)
}

// Package editor resolves and launches the user's text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// ErrNoEditorFound is returned when no usable editor is on PATH.
var ErrNoEditorFound = fmt.Errorf("no editor found: set $VISUAL or $EDITOR")

// Resolve picks an editor binary using the env map.
// Priority: $VISUAL -> $EDITOR -> vi -> nano -> error.
func Resolve(env map[string]string) (string, error) {
	if visual := env["VISUAL"]; visual != "" {
		if _, err := exec.LookPath(visual); err == nil {
			return visual, nil
		}
	}

	if ed := env["EDITOR"]; ed != "" {
		if _, err := exec.LookPath(ed); err == nil {
			return ed, nil
		}
	}

	if _, err := exec.LookPath("vi"); err == nil {
		return "vi", nil
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano", nil
	}

	return "", ErrNoEditorFound
}

// Open launches the resolved editor on path with the terminal attached,
// blocking until the editor exits.
func Open(path string) error {
	env := map[string]string{
		"VISUAL": os.Getenv("VISUAL"),
		"EDITOR": os.Getenv("EDITOR"),
	}
	ed, err := Resolve(env)
	if err != nil {
		return err
	}

	cmd := exec.Command(ed, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", ed, err)
	}
	return nil
}

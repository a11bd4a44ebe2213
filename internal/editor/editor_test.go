package editor

import (
	"os/exec"
	"testing"
)

func TestResolvePrefersVisual(t *testing.T) {
	// "sh" exists everywhere this test runs.
	env := map[string]string{"VISUAL": "sh", "EDITOR": "sh"}
	ed, err := Resolve(env)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ed != "sh" {
		t.Errorf("editor = %q, want sh", ed)
	}
}

func TestResolveFallsBackToEditor(t *testing.T) {
	env := map[string]string{"VISUAL": "definitely-not-a-binary", "EDITOR": "sh"}
	ed, err := Resolve(env)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ed != "sh" {
		t.Errorf("editor = %q, want sh", ed)
	}
}

func TestResolveSystemFallback(t *testing.T) {
	if _, err := exec.LookPath("vi"); err != nil {
		if _, err := exec.LookPath("nano"); err != nil {
			t.Skip("neither vi nor nano on PATH")
		}
	}
	if _, err := Resolve(map[string]string{}); err != nil {
		t.Errorf("Resolve: %v", err)
	}
}

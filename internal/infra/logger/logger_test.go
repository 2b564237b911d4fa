package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time")
	}

	want := filepath.Join(root, ".petspeak", "logs", "petspeak.log")
	if Path() != want {
		t.Fatalf("expected path=%s, got=%s", want, Path())
	}

	L().Debug("selection.select", "name", "Buddy")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) {
		t.Fatalf("expected init line, got:\n%s", out)
	}
	if !strings.Contains(out, `"msg":"selection.select"`) {
		t.Fatalf("expected debug line, got:\n%s", out)
	}
}

func TestSetup_CustomDir(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Dir: "logs"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if Path() != filepath.Join(root, "logs", "petspeak.log") {
		t.Fatalf("unexpected path %s", Path())
	}
}

func TestL_DiscardsBeforeSetup(t *testing.T) {
	if L() == nil {
		t.Fatalf("expected non-nil logger")
	}
	L().Info("ignored")
}

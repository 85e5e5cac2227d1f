package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReleaseModeWritesRotatedFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "pos-test.log"})
	log.Info("order_created")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "pos-test.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(content), "order_created") {
		t.Fatalf("log file missing message: %s", string(content))
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "pos-test.log"})
	log.Info("counter_debug")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "pos-test.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must log to stdout only")
	}
}

func TestResolveLogFilePath(t *testing.T) {
	tmpDir := t.TempDir()

	got, err := resolveLogFilePath(Options{Dir: tmpDir, Filename: "custom.log"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != filepath.Join(tmpDir, "custom.log") {
		t.Fatalf("unexpected path: %s", got)
	}

	nested := filepath.Join(tmpDir, "a", "b")
	if _, err := resolveLogFilePath(Options{Dir: nested}); err != nil {
		t.Fatalf("resolve with missing dir failed: %v", err)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Fatalf("expected nested log dir created: %v", err)
	}

	got, err = resolveLogFilePath(Options{Dir: tmpDir})
	if err != nil {
		t.Fatalf("resolve default filename failed: %v", err)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected default filename: %s", filepath.Base(got))
	}
}

func TestGlobalFallback(t *testing.T) {
	old := L
	L = nil
	t.Cleanup(func() { L = old })

	if Z() == nil {
		t.Fatalf("expected fallback logger")
	}
	if S() == nil {
		t.Fatalf("expected fallback sugared logger")
	}
	// must not panic without Init
	Infow("fallback_probe", "key", "value")
}

package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/yaklabco/snipsync/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		err := fsutil.WriteAtomic(context.Background(), path, []byte("content\n"), 0)
		if err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "content\n" {
			t.Errorf("content = %q, want %q", got, "content\n")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if runtime.GOOS != "windows" && info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %v, want %v", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new\n"), 0o644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new\n" {
			t.Errorf("content = %q, want %q", got, "new\n")
		}
	})

	t.Run("preserves custom mode", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}

		path := filepath.Join(t.TempDir(), "out.md")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x\n"), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		info, _ := os.Stat(path)
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.md")
		err := fsutil.WriteAtomic(ctx, path, []byte("x\n"), 0)
		if err == nil {
			t.Fatal("WriteAtomic() error = nil, want context error")
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("file was created despite cancelled context")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x\n"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.Contains(e.Name(), ".tmp.") {
				t.Errorf("stray temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		wrote, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("x\n"), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !wrote {
			t.Error("wrote = false, want true for a missing file")
		}
	})

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		if err := os.WriteFile(path, []byte("same\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		wrote, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("same\n"), 0o644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if wrote {
			t.Error("wrote = true, want false for identical content")
		}
	})

	t.Run("writes differing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		wrote, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("new\n"), 0o644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !wrote {
			t.Error("wrote = false, want true for differing content")
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new\n" {
			t.Errorf("content = %q, want %q", got, "new\n")
		}
	})
}

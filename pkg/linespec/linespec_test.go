package linespec_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/snipsync/pkg/linespec"
)

func TestParseKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want linespec.Kind
	}{
		{"line number", "5", linespec.KindLine},
		{"glob", "/target/", linespec.KindGlob},
		{"regex", "r/^def /", linespec.KindRegex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := linespec.Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.raw, err)
			}
			if spec.Kind() != tt.want {
				t.Errorf("Kind() = %v, want %v", spec.Kind(), tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	t.Run("neither number nor pattern", func(t *testing.T) {
		t.Parallel()

		_, err := linespec.Parse("notanumber")
		if !errors.Is(err, linespec.ErrInvalidSpec) {
			t.Errorf("Parse error = %v, want ErrInvalidSpec", err)
		}
	})

	t.Run("invalid regex", func(t *testing.T) {
		t.Parallel()

		_, err := linespec.Parse("r/[invalid/")
		if !errors.Is(err, linespec.ErrInvalidPattern) {
			t.Errorf("Parse error = %v, want ErrInvalidPattern", err)
		}
	})

	t.Run("invalid glob", func(t *testing.T) {
		t.Parallel()

		_, err := linespec.Parse("/[invalid/")
		if !errors.Is(err, linespec.ErrInvalidPattern) {
			t.Errorf("Parse error = %v, want ErrInvalidPattern", err)
		}
	})
}

func TestParseEndInclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		inclusive bool
	}{
		{"number exclusive", "4", false},
		{"number inclusive", "4+", true},
		{"glob exclusive", "/return/", false},
		{"glob inclusive", "/return/+", true},
		{"regex inclusive", "r/^}$/+", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec, err := linespec.ParseEnd(tt.raw)
			if err != nil {
				t.Fatalf("ParseEnd(%q) error = %v", tt.raw, err)
			}
			if spec.Inclusive() != tt.inclusive {
				t.Errorf("Inclusive() = %v, want %v", spec.Inclusive(), tt.inclusive)
			}
		})
	}
}

func TestResolveLineNumber(t *testing.T) {
	t.Parallel()

	spec, err := linespec.Parse("5")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Line numbers resolve as-is, even against an empty file; bounds
	// surface later as slicing edge cases.
	got, err := spec.Resolve(nil, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != 5 {
		t.Errorf("Resolve() = %d, want 5", got)
	}
}

func TestResolveGlob(t *testing.T) {
	t.Parallel()

	t.Run("containment match", func(t *testing.T) {
		t.Parallel()

		lines := []string{"line one\n", "line two\n", "target line\n", "line four\n"}
		got := mustResolve(t, "/target/", lines, 0)
		if got != 3 {
			t.Errorf("Resolve() = %d, want 3", got)
		}
	})

	t.Run("wildcard", func(t *testing.T) {
		t.Parallel()

		lines := []string{"int foo(void) {\n", "    return 0;\n", "}\n"}
		got := mustResolve(t, "/int foo*/", lines, 0)
		if got != 1 {
			t.Errorf("Resolve() = %d, want 1", got)
		}
	})

	t.Run("escaped colon", func(t *testing.T) {
		t.Parallel()

		lines := []string{"key: value\n", "other: stuff\n"}
		got := mustResolve(t, `/key\: value/`, lines, 0)
		if got != 1 {
			t.Errorf("Resolve() = %d, want 1", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		spec, err := linespec.Parse("/missing/")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		_, err = spec.Resolve([]string{"line one\n", "line two\n"}, 0)
		if !errors.Is(err, linespec.ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})
}

func TestResolveRegex(t *testing.T) {
	t.Parallel()

	t.Run("search match", func(t *testing.T) {
		t.Parallel()

		lines := []string{"int foo(void) {\n", "    return 0;\n", "}\n"}
		got := mustResolve(t, `r/^int\s+foo/`, lines, 0)
		if got != 1 {
			t.Errorf("Resolve() = %d, want 1", got)
		}
	})

	t.Run("start anchor", func(t *testing.T) {
		t.Parallel()

		lines := []string{"  indented line\n", "start of line\n", "another line\n"}
		got := mustResolve(t, "r/^start/", lines, 0)
		if got != 2 {
			t.Errorf("Resolve() = %d, want 2", got)
		}
	})

	t.Run("end anchor ignores trailing newline", func(t *testing.T) {
		t.Parallel()

		lines := []string{"foo bar\n", "bar baz\n", "hello world\n"}
		got := mustResolve(t, "r/world$/", lines, 0)
		if got != 3 {
			t.Errorf("Resolve() = %d, want 3", got)
		}
	})

	t.Run("escaped colon", func(t *testing.T) {
		t.Parallel()

		lines := []string{"key: value\n", "other: stuff\n"}
		got := mustResolve(t, `r/key\: value/`, lines, 0)
		if got != 1 {
			t.Errorf("Resolve() = %d, want 1", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		spec, err := linespec.Parse("r/missing/")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		_, err = spec.Resolve([]string{"line one\n"}, 0)
		if !errors.Is(err, linespec.ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})
}

func TestResolveAnchor(t *testing.T) {
	t.Parallel()

	lines := []string{"def foo():\n", "    pass\n", "def bar():\n", "    pass\n"}

	t.Run("glob search starts after anchor", func(t *testing.T) {
		t.Parallel()

		if got := mustResolve(t, "/def /", lines, 0); got != 1 {
			t.Errorf("Resolve(anchor=0) = %d, want 1", got)
		}
		if got := mustResolve(t, "/def /", lines, 1); got != 3 {
			t.Errorf("Resolve(anchor=1) = %d, want 3", got)
		}
	})

	t.Run("regex search starts after anchor", func(t *testing.T) {
		t.Parallel()

		if got := mustResolve(t, "r/^def /", lines, 0); got != 1 {
			t.Errorf("Resolve(anchor=0) = %d, want 1", got)
		}
		if got := mustResolve(t, "r/^def /", lines, 1); got != 3 {
			t.Errorf("Resolve(anchor=1) = %d, want 3", got)
		}
	})

	t.Run("no match after anchor", func(t *testing.T) {
		t.Parallel()

		spec, err := linespec.Parse("/def /")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		_, err = spec.Resolve([]string{"def foo():\n", "    pass\n"}, 1)
		if !errors.Is(err, linespec.ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})
}

func mustResolve(t *testing.T, raw string, lines []string, startAfter int) int {
	t.Helper()

	spec, err := linespec.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", raw, err)
	}
	got, err := spec.Resolve(lines, startAfter)
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v", raw, err)
	}
	return got
}

package pretty_test

import (
	"bytes"
	"testing"

	"github.com/yaklabco/snipsync/internal/ui/pretty"
)

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		if !pretty.IsColorEnabled("always", &bytes.Buffer{}) {
			t.Error("IsColorEnabled(always) = false, want true")
		}
	})

	t.Run("never", func(t *testing.T) {
		if pretty.IsColorEnabled("never", &bytes.Buffer{}) {
			t.Error("IsColorEnabled(never) = true, want false")
		}
	})

	t.Run("auto with non-tty writer", func(t *testing.T) {
		if pretty.IsColorEnabled("auto", &bytes.Buffer{}) {
			t.Error("IsColorEnabled(auto, buffer) = true, want false")
		}
	})

	t.Run("auto respects NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if pretty.IsColorEnabled("auto", &bytes.Buffer{}) {
			t.Error("IsColorEnabled(auto) with NO_COLOR = true, want false")
		}
	})
}

func TestNewStylesPlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	if got := styles.Error.Render("error:"); got != "error:" {
		t.Errorf("plain Error.Render() = %q, want unstyled text", got)
	}
	if got := styles.DiffAdd.Render("+line"); got != "+line" {
		t.Errorf("plain DiffAdd.Render() = %q, want unstyled text", got)
	}
}

package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out := Render(80, "# Heading\n\nsome body text\n")
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "some body text") {
		t.Errorf("rendered output lost content:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("rendered output has a trailing newline")
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(80, "   \n\n"); got != "" {
		t.Errorf("Render(blank) = %q, want empty", got)
	}
}

func TestRender_NarrowWidth(t *testing.T) {
	// Degenerate widths are clamped rather than erroring.
	out := Render(0, "hello")
	if !strings.Contains(out, "hello") {
		t.Errorf("narrow render lost content: %q", out)
	}
}

func TestRender_ReuseRenderer(t *testing.T) {
	first := Render(40, "same input")
	second := Render(40, "same input")
	if first != second {
		t.Error("repeated renders at one width differ")
	}
}

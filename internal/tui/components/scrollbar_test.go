package components

import (
	"strings"
	"testing"
)

func TestRenderScrollbar_HiddenWhenEverythingFits(t *testing.T) {
	bar := RenderScrollbar(4, 3, 5, 0)

	if strings.TrimSpace(bar) != "" {
		t.Errorf("expected blank gutter, got %q", bar)
	}
	if lines := strings.Count(bar, "\n") + 1; lines != 4 {
		t.Errorf("expected 4 lines, got %d", lines)
	}
}

func TestRenderScrollbar_ThumbFollowsOffset(t *testing.T) {
	top := strings.Split(RenderScrollbar(10, 20, 5, 0), "\n")
	bottom := strings.Split(RenderScrollbar(10, 20, 5, 15), "\n")

	if len(top) != 10 || len(bottom) != 10 {
		t.Fatalf("expected 10 lines, got %d and %d", len(top), len(bottom))
	}
	if top[0] != "█" {
		t.Errorf("expected thumb at top, got %q", top[0])
	}
	if bottom[9] != "█" || bottom[0] != "│" {
		t.Errorf("expected thumb at bottom, got %q", strings.Join(bottom, ""))
	}
}

func TestRenderScrollbar_ZeroHeight(t *testing.T) {
	if got := RenderScrollbar(0, 10, 2, 0); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

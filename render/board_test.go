package render

import (
	"strings"
	"testing"
)

func TestBoardRender(t *testing.T) {
	board := NewBoard()
	out := board.Render(sampleResult(t))

	for _, want := range []string{
		"MULTI-PROFILE TRIAGE BOARD",
		"Headline Layer",
		"One Screen Layer",
		"LAPTOP",
		"PHONE",
		"1920x1080",
		"375x667",
		"Pipeline failed.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q", want)
		}
	}

	// One comparison table per layer, each listing every profile.
	if strings.Count(out, "LAPTOP") < 2 {
		t.Error("laptop row missing from a layer table")
	}
}

func TestBoardRender_MissingLayer(t *testing.T) {
	res := sampleResult(t)
	// Drop phone's one_screen entry; the board shows N/A instead of
	// skipping the row.
	res.Profiles[1].Layers = res.Profiles[1].Layers[:1]

	out := NewBoard().Render(res)
	if !strings.Contains(out, "N/A") {
		t.Error("missing layer not rendered as N/A")
	}
}

func TestBoardRender_LongSummaryExcerpted(t *testing.T) {
	res := sampleResult(t)
	res.Profiles[0].Layers[1].Text = strings.Repeat("long summary text ", 40)

	board := NewBoard()
	board.Width = 80
	out := board.Render(res)

	for _, line := range strings.Split(out, "\n") {
		if len([]rune(stripANSI(line))) > 80 {
			t.Errorf("line wider than board: %q", line)
		}
	}
}

func TestBoardProfileInfo(t *testing.T) {
	out := NewBoard().ProfileInfo(sampleResult(t))

	for _, want := range []string{
		"Device Profiles",
		"LAPTOP",
		"PHONE",
		"14px",
		"12px",
		"4392 chars",
		"1495 chars",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("profile info missing %q", want)
		}
	}
}

// stripANSI removes escape sequences so width checks measure visible
// characters.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

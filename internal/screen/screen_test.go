package screen

import (
	"strings"
	"testing"
)

func TestNewIsBlank(t *testing.T) {
	s := New(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 20x5", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got.Rune != ' ' || got.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, want blank default", x, y, got)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	s := New(10, 10)

	s.SetCell(3, 4, 'X', ColorBrightGreen)
	if got := s.GetCell(3, 4); got.Rune != 'X' || got.Color != ColorBrightGreen {
		t.Errorf("cell = %+v, want X in bright green", got)
	}

	s.Set(0, 0, 'a')
	if s.Get(0, 0) != 'a' {
		t.Errorf("Get(0,0) = %q, want 'a'", s.Get(0, 0))
	}

	// Out-of-bounds writes are ignored, reads return blank.
	s.Set(-1, 0, 'z')
	s.Set(10, 0, 'z')
	s.Set(0, 10, 'z')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 10) != ' ' {
		t.Error("out-of-bounds read should return a space")
	}
}

func TestDrawTextClips(t *testing.T) {
	s := New(5, 1)
	s.DrawText(3, 0, "hello", ColorDefault)

	if got := s.String(); got != "   he" {
		t.Errorf("String() = %q, want %q", got, "   he")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := New(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' || s.Get(6, 0) != 'c' {
		t.Errorf("centered text misplaced: %q", s.String())
	}
}

func TestDrawBox(t *testing.T) {
	s := New(6, 4)
	s.DrawBox(0, 0, 6, 4, ColorGray)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box render:\n%s\nwant:\n%s", got, want)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box corner lost its color")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := New(10, 10)
	s.SetCell(2, 2, 'K', ColorRed)

	s.Resize(5, 5)
	if got := s.GetCell(2, 2); got.Rune != 'K' || got.Color != ColorRed {
		t.Errorf("cell lost on shrink: %+v", got)
	}

	s.Resize(20, 20)
	if s.Get(2, 2) != 'K' {
		t.Error("cell lost on grow")
	}
	if s.Get(15, 15) != ' ' {
		t.Error("new area not blank after grow")
	}
}

func TestStringShape(t *testing.T) {
	s := New(4, 3)
	got := s.String()

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("String() has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 4 {
			t.Errorf("line %d has %d runes, want 4", i, len([]rune(line)))
		}
	}
}

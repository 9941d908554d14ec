package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.GetCell(3, 2).Rune; got != 'X' {
		t.Errorf("GetCell(3, 2).Rune = %q, expected 'X'", got)
	}

	s.SetColored(4, 2, 'O', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected {'O', ColorGreen}", cell)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	s.Set(0, 5, 'Z')
	if got := s.GetCell(-1, 0).Rune; got != ' ' {
		t.Errorf("out-of-bounds GetCell = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 1, '#')
	s.Clear()

	if got := s.GetCell(1, 1).Rune; got != ' ' {
		t.Errorf("after Clear, GetCell(1, 1).Rune = %q, expected space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Error("DrawText did not place text at expected cells")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if s.GetCell(9, 0).Rune != 'o' {
		t.Errorf("clipped text: GetCell(9, 0).Rune = %q, expected 'o'", s.GetCell(9, 0).Rune)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'K')

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d, expected 8x3", s.Width(), s.Height())
	}
	// Content inside the new bounds survives
	if got := s.GetCell(1, 1).Rune; got != 'K' {
		t.Errorf("after Resize, GetCell(1, 1).Rune = %q, expected 'K'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.GetCell(1, 1).Rune != '┌' {
		t.Error("expected top-left corner at (1, 1)")
	}
	if s.GetCell(5, 4).Rune != '┘' {
		t.Error("expected bottom-right corner at (5, 4)")
	}
	if s.GetCell(3, 1).Rune != '─' {
		t.Error("expected horizontal edge at (3, 1)")
	}
	if s.GetCell(1, 2).Rune != '│' {
		t.Error("expected vertical edge at (1, 2)")
	}
}

package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, 'X', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(3, 2).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 2).Color = %d, expected ColorGreen", cell.Color)
	}

	// Out-of-bounds writes are ignored
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')

	// Out-of-bounds reads return a blank cell
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out-of-bounds GetCell should return blank")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text extending past the right edge is clipped
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '@')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("Resize() dimensions = %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(2, 2).Rune != '@' {
		t.Error("Resize() should preserve existing content")
	}

	s.Resize(3, 3)
	if s.GetCell(2, 2).Rune != '@' {
		t.Error("shrinking Resize() should keep content inside new bounds")
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

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.GetCell(0, 0).Rune != '┌' || s.GetCell(5, 0).Rune != '┐' {
		t.Error("DrawBox() top corners wrong")
	}
	if s.GetCell(0, 3).Rune != '└' || s.GetCell(5, 3).Rune != '┘' {
		t.Error("DrawBox() bottom corners wrong")
	}
	if s.GetCell(2, 0).Rune != '─' || s.GetCell(0, 2).Rune != '│' {
		t.Error("DrawBox() edges wrong")
	}
}

package timetable

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGrid_AllFree(t *testing.T) {
	g := NewGrid(DefaultLayout())

	g.ForEachValidCoordinate(func(c Coordinate, cell Cell) {
		if cell.Occupied {
			t.Errorf("%s occupied on new grid", c)
		}
	})
	if got := len(g.Occupied()); got != 0 {
		t.Errorf("occupied = %d, want 0", got)
	}
}

func TestGrid_OccupyAndFree(t *testing.T) {
	g := NewGrid(DefaultLayout())
	sec := makeSection(1, "MAT001 - Calculus", at("Monday", "07:00"))
	c := at("Monday", "07:00")

	if err := g.Occupy(c, sec, "#fff"); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	if !g.IsOccupied(c) {
		t.Fatal("expected occupied")
	}
	cell, ok := g.At(c)
	if !ok || cell.Section != sec || cell.Color != "#fff" {
		t.Errorf("cell = %+v", cell)
	}

	if err := g.Occupy(c, sec, "#000"); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("second Occupy err = %v, want ErrInvariantViolation", err)
	}
	if cell, _ := g.At(c); cell.Color != "#fff" {
		t.Errorf("failed Occupy changed color to %s", cell.Color)
	}

	if err := g.Free(c); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if g.IsOccupied(c) {
		t.Error("expected free after Free")
	}
}

func TestGrid_RejectsInvalidCoordinates(t *testing.T) {
	g := NewGrid(DefaultLayout())
	sec := makeSection(1, "X", at("Monday", "12:25"))

	if err := g.Occupy(at("Monday", "12:25"), sec, "#fff"); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("Occupy interval err = %v, want ErrInvalidCoordinate", err)
	}
	if err := g.Free(at("Sunday", "07:00")); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("Free unknown day err = %v, want ErrInvalidCoordinate", err)
	}
	if g.IsOccupied(at("Monday", "12:25")) {
		t.Error("interval reported occupied")
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(DefaultLayout())
	c := g.clone()
	if err := c.Occupy(at("Friday", "20:20"), makeSection(1, "X"), "#fff"); err != nil {
		t.Fatal(err)
	}
	if g.IsOccupied(at("Friday", "20:20")) {
		t.Error("clone shares cells with original")
	}
}

func TestGrid_String(t *testing.T) {
	g := NewGrid(DefaultLayout())
	_ = g.Occupy(at("Tuesday", "07:00"), makeSection(1, "Physics"), "#fff")

	first := strings.SplitN(g.String(), "\n", 2)[0]
	if first != "07:00 .P...." {
		t.Errorf("first line = %q", first)
	}
}

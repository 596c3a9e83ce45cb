package sgf

import (
	"fmt"

	"gonotation/internal/domain/goban"
	"gonotation/internal/errors"
)

// passValue is the legacy pass marker, read as a pass on boards up to 19.
const passValue = "tt"

// Point is an SGF point, zero-based from the top-left corner.
type Point struct {
	X uint8
	Y uint8
}

func PointFromCoord(c goban.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

func (p Point) Coord() goban.Coord {
	return goban.Coord{X: p.X, Y: p.Y}
}

// String expects X and Y below MaxPointBoardSize.
func (p Point) String() string {
	return string([]byte{pointLetter(p.X), pointLetter(p.Y)})
}

// Move is the value of a B or W property: a point or a pass.
type Move struct {
	Point Point
	pass  bool
}

var PassMove = Move{pass: true}

func (m Move) IsPass() bool {
	return m.pass
}

func (m Move) String() string {
	if m.pass {
		return ""
	}
	return m.Point.String()
}

func (m Move) Vertex() goban.Vertex {
	if m.pass {
		return goban.Pass
	}
	return goban.At(m.Point.Coord())
}

func MoveFromVertex(v goban.Vertex) Move {
	c, ok := v.Coord()
	if !ok {
		return PassMove
	}
	return Move{Point: PointFromCoord(c)}
}

// MaxPointBoardSize is the widest board SGF points can address: letters
// a-z then A-Z.
const MaxPointBoardSize = 52

// ParseMove reads a move value. Only boards up to MaxPointBoardSize lines
// are addressable, and Point.String is defined only for coordinates below
// it.
func ParseMove(value string, boardSize int) (Move, error) {
	if value == "" || (value == passValue && boardSize <= 19) {
		return PassMove, nil
	}
	if len(value) != 2 {
		return Move{}, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, value)
	}
	x, okX := pointIndex(value[0])
	y, okY := pointIndex(value[1])
	if !okX || !okY {
		return Move{}, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, value)
	}
	return Move{Point: Point{X: x, Y: y}}, nil
}

// pointLetter expects i < MaxPointBoardSize.
func pointLetter(i uint8) byte {
	if i < 26 {
		return 'a' + i
	}
	return 'A' + i - 26
}

func pointIndex(b byte) (uint8, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a', true
	case b >= 'A' && b <= 'Z':
		return b - 'A' + 26, true
	}
	return 0, false
}

// PropertyOf returns the move property identifier of a color.
func PropertyOf(c goban.Color) string {
	return c.String()
}

func ColorOf(ident string) (goban.Color, bool) {
	c, err := goban.ParseColor(ident)
	return c, err == nil
}

package goban

import (
	"fmt"

	"gonotation/internal/domain/gtp"
	"gonotation/internal/errors"
)

const (
	charLowerA    = 'a'
	pointPassText = "pass"
)

// Point is the engine-native move: a pass or a zero-based (x, y) counted
// from the top-left corner. Its text form is two lowercase letters.
type Point struct {
	X    uint8
	Y    uint8
	pass bool
}

var PassPoint = Point{pass: true}

func NewPoint(x, y uint8) Point {
	return Point{X: x, Y: y}
}

// PointFromIndex maps a row-major board index back to a point.
func PointFromIndex(index, boardSize int) Point {
	return Point{X: uint8(index % boardSize), Y: uint8(index / boardSize)}
}

// Index returns the row-major board index, or -1 for a pass.
func (p Point) Index(boardSize int) int {
	if p.pass {
		return -1
	}
	return int(p.Y)*boardSize + int(p.X)
}

func (p Point) IsPass() bool {
	return p.pass
}

func (p Point) Vertex() Vertex {
	if p.pass {
		return Pass
	}
	return At(Coord{X: p.X, Y: p.Y})
}

func PointFromVertex(v Vertex) Point {
	c, ok := v.Coord()
	if !ok {
		return PassPoint
	}
	return NewPoint(c.X, c.Y)
}

func (p Point) String() string {
	if p.pass {
		return pointPassText
	}
	return string([]byte{p.X + charLowerA, p.Y + charLowerA})
}

func ParsePoint(s string) (Point, error) {
	if s == "" {
		return Point{}, errors.ErrEmptyString
	}
	if s == pointPassText {
		return PassPoint, nil
	}
	if len(s) != 2 || !isLower(s[0]) || !isLower(s[1]) {
		return Point{}, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, s)
	}
	return NewPoint(s[0]-charLowerA, s[1]-charLowerA), nil
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(text []byte) error {
	parsed, err := ParsePoint(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ToGTP converts the point for a board of the given size. The point must
// lie on the board; nothing is validated here.
func (p Point) ToGTP(boardSize uint8) gtp.Move {
	if p.pass {
		return gtp.Pass
	}
	letter := 'A' + p.X
	if letter >= gtp.SkippedLetter {
		letter++
	}
	return gtp.Coordinate(letter, boardSize-p.Y)
}

// PointFromGTP is the inverse of ToGTP under the same precondition.
func PointFromGTP(m gtp.Move, boardSize uint8) Point {
	if m.IsPass() {
		return PassPoint
	}
	x := m.Letter - 'A'
	if m.Letter > gtp.SkippedLetter {
		x--
	}
	return NewPoint(x, boardSize-m.Row)
}

package goban

import (
	"fmt"

	"gonotation/internal/errors"
)

const charA = 'A'

// Coord is an intersection counted from the top-left corner, zero-based.
// The type does not know the board size; bounds are checked by callers.
type Coord struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

func (c Coord) String() string {
	return string([]byte{c.X + charA, c.Y + charA})
}

// ParseCoord reads two uppercase ASCII letters, x first.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 || !isUpper(s[0]) || !isUpper(s[1]) {
		return Coord{}, fmt.Errorf("%w: %q", errors.ErrInvalidCoordinate, s)
	}
	return Coord{X: s[0] - charA, Y: s[1] - charA}, nil
}

func (c Coord) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coord) UnmarshalText(text []byte) error {
	parsed, err := ParseCoord(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

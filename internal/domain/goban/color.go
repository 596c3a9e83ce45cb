package goban

import (
	"fmt"

	"gonotation/internal/errors"
)

// Color is the color of a stone or of the player to move.
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == White {
		return "W"
	}
	return "B"
}

// ParseColor accepts exactly "B" or "W".
func ParseColor(s string) (Color, error) {
	switch s {
	case "B":
		return Black, nil
	case "W":
		return White, nil
	}
	return Black, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

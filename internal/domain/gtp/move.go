// Package gtp holds the move notation of the Go Text Protocol: a column
// letter that skips I and a row number counted from the bottom edge.
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"gonotation/internal/errors"
)

// SkippedLetter never names a column.
const SkippedLetter = 'I'

type Move struct {
	Letter byte
	Row    uint8
	pass   bool
}

var Pass = Move{pass: true}

func Coordinate(letter byte, row uint8) Move {
	return Move{Letter: letter, Row: row}
}

func (m Move) IsPass() bool {
	return m.pass
}

func (m Move) String() string {
	if m.pass {
		return "pass"
	}
	return string(m.Letter) + strconv.Itoa(int(m.Row))
}

// Parse reads "pass" in any case or a vertex such as "D16" or "j10".
func Parse(s string) (Move, error) {
	if s == "" {
		return Move{}, errors.ErrEmptyString
	}
	upper := strings.ToUpper(s)
	if upper == "PASS" {
		return Pass, nil
	}
	letter := upper[0]
	if letter < 'A' || letter > 'Z' || letter == SkippedLetter {
		return Move{}, fmt.Errorf("%w: bad column in %q", errors.ErrInvalidCoordinate, s)
	}
	row, err := strconv.ParseUint(upper[1:], 10, 8)
	if err != nil || row == 0 {
		return Move{}, fmt.Errorf("%w: bad row in %q", errors.ErrInvalidCoordinate, s)
	}
	return Coordinate(letter, uint8(row)), nil
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

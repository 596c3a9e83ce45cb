package goban

import (
	"encoding/json"
	"fmt"
)

// Move records who played and where.
type Move struct {
	Color  Color
	Vertex Vertex
}

func Play(c Color, at Coord) Move {
	return Move{Color: c, Vertex: At(at)}
}

func PassBy(c Color) Move {
	return Move{Color: c, Vertex: Pass}
}

// String renders the move as B[DD] or W[PASS].
func (m Move) String() string {
	return fmt.Sprintf("%s[%s]", m.Color, m.Vertex)
}

// MarshalJSON encodes the move as a two element array, ["B","DD"].
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Color.String(), m.Vertex.String()})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c, err := ParseColor(pair[0])
	if err != nil {
		return err
	}
	v, err := ParseVertex(pair[1])
	if err != nil {
		return err
	}
	*m = Move{Color: c, Vertex: v}
	return nil
}

package goban

const passText = "PASS"

// Vertex is either a pass or a concrete intersection.
type Vertex struct {
	coord Coord
	pass  bool
}

var Pass = Vertex{pass: true}

func At(c Coord) Vertex {
	return Vertex{coord: c}
}

func (v Vertex) IsPass() bool {
	return v.pass
}

// Coord returns the intersection, ok is false for a pass.
func (v Vertex) Coord() (c Coord, ok bool) {
	if v.pass {
		return Coord{}, false
	}
	return v.coord, true
}

func (v Vertex) String() string {
	if v.pass {
		return passText
	}
	return v.coord.String()
}

func ParseVertex(s string) (Vertex, error) {
	if s == passText {
		return Pass, nil
	}
	c, err := ParseCoord(s)
	if err != nil {
		return Vertex{}, err
	}
	return At(c), nil
}

func (v Vertex) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vertex) UnmarshalText(text []byte) error {
	parsed, err := ParseVertex(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

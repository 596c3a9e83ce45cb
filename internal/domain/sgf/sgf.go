// Package sgf reads and writes Smart Game Format records of Go games and
// exposes the move properties of their nodes in goban terms.
package sgf

import "gonotation/internal/domain/goban"

const DefaultBoardSize = 19

// Node is one SGF node with its variations. Children keep file order, the
// first child continues the main line.
type Node struct {
	Properties map[string][]string // values may repeat, e.g. AB[aa][bb]

	children  []*Node
	boardSize int
}

func NewNode() *Node {
	return &Node{Properties: make(map[string][]string)}
}

// AddChild appends a variation and returns it.
func (n *Node) AddChild(child *Node) *Node {
	if child.boardSize == 0 {
		child.boardSize = n.boardSize
	}
	n.children = append(n.children, child)
	return child
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) Property(ident string) (string, bool) {
	values := n.Properties[ident]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (n *Node) SetProperty(ident string, values ...string) {
	if n.Properties == nil {
		n.Properties = make(map[string][]string)
	}
	n.Properties[ident] = values
}

// BoardSize returns the size of the game the node belongs to. Parsed trees
// carry the root's SZ value, other nodes read their own SZ. Only the column
// count of a rectangular board is used.
func (n *Node) BoardSize() int {
	if n.boardSize > 0 {
		return n.boardSize
	}
	return rootBoardSize(n)
}

// Move returns the B or W property of the node. Parse rejects unreadable
// values, so on parsed trees false means the node has no move. Nodes built
// with SetProperty and a bad value also report false.
func (n *Node) Move() (goban.Move, bool) {
	for _, color := range []goban.Color{goban.Black, goban.White} {
		value, ok := n.Property(PropertyOf(color))
		if !ok {
			continue
		}
		m, err := ParseMove(value, n.BoardSize())
		if err != nil {
			return goban.Move{}, false
		}
		return goban.Move{Color: color, Vertex: m.Vertex()}, true
	}
	return goban.Move{}, false
}

func (n *Node) SetMove(m goban.Move) {
	delete(n.Properties, PropertyOf(m.Color.Opposite()))
	n.SetProperty(PropertyOf(m.Color), MoveFromVertex(m.Vertex).String())
}

// MainVariation follows the first child from n down to a leaf, n included.
func (n *Node) MainVariation() []*Node {
	line := []*Node{n}
	for cur := n; len(cur.children) > 0; {
		cur = cur.children[0]
		line = append(line, cur)
	}
	return line
}

func (n *Node) setBoardSize(size int) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.boardSize = size
		stack = append(stack, cur.children...)
	}
}

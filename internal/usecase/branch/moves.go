package branch

import "gonotation/internal/domain/goban"

// MoveNode is a node that may carry a move property.
type MoveNode interface {
	Move() (goban.Move, bool)
}

// Moves keeps the moves of the given nodes in order. Nodes without a move,
// such as the root or setup nodes, are skipped.
func Moves[N MoveNode](nodes []N) []goban.Move {
	moves := make([]goban.Move, 0, len(nodes))
	for _, n := range nodes {
		if m, ok := n.Move(); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

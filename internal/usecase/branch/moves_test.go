package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotation/internal/domain/goban"
	"gonotation/internal/domain/sgf"
)

func TestMovesSkipsNodesWithoutMove(t *testing.T) {
	b := goban.Play(goban.Black, goban.Coord{X: 3, Y: 4})
	w := goban.PassBy(goban.White)
	nodes := []*testNode{
		{id: 1},
		{id: 2, move: &b},
		{id: 3},
		{id: 4, move: &w},
	}

	assert.Equal(t, []goban.Move{b, w}, Moves(nodes))
	assert.Empty(t, Moves([]*testNode{{id: 1}}))
	assert.Empty(t, Moves[*testNode](nil))
}

func TestMovesOfBranch(t *testing.T) {
	root, err := sgf.ParseFirst("(;SZ[9]C[Some comment];B[de];W[fe])")
	require.NoError(t, err)

	path, ok := New(root).Next()
	require.True(t, ok)

	moves := Moves(path)
	require.Len(t, moves, 2)
	assert.Equal(t, goban.Play(goban.Black, goban.Coord{X: 3, Y: 4}), moves[0])
	assert.Equal(t, goban.Play(goban.White, goban.Coord{X: 5, Y: 4}), moves[1])
}

func TestMovesOfMainVariation(t *testing.T) {
	root, err := sgf.ParseFirst("(;SZ[9];B[ee](;W[ce];B[dd])(;W[cf]))")
	require.NoError(t, err)

	moves := Moves(root.MainVariation())
	require.Len(t, moves, 3)
	assert.Equal(t, "B[EE]", moves[0].String())
	assert.Equal(t, "W[CE]", moves[1].String())
	assert.Equal(t, "B[DD]", moves[2].String())
}

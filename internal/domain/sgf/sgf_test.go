package sgf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotation/internal/domain/goban"
	"gonotation/internal/errors"
)

func TestParseLinear(t *testing.T) {
	root, err := ParseFirst("(;SZ[9]C[Some comment];B[de];W[fe])")
	require.NoError(t, err)

	line := root.MainVariation()
	require.Len(t, line, 3)
	assert.Equal(t, 9, line[2].BoardSize())

	c, ok := root.Property("C")
	require.True(t, ok)
	assert.Equal(t, "Some comment", c)

	_, ok = root.Move()
	assert.False(t, ok)

	m, ok := line[1].Move()
	require.True(t, ok)
	assert.Equal(t, goban.Play(goban.Black, goban.Coord{X: 3, Y: 4}), m)

	m, ok = line[2].Move()
	require.True(t, ok)
	assert.Equal(t, goban.Play(goban.White, goban.Coord{X: 5, Y: 4}), m)
}

func TestParseVariations(t *testing.T) {
	root, err := ParseFirst("(;SZ[9];B[ee];W[ce](;B[ge](;W[gd])(;W[gf]))(;B[cf]))")
	require.NoError(t, err)

	wce := root.Children()[0].Children()[0]
	require.Len(t, wce.Children(), 2)
	assert.Len(t, wce.Children()[0].Children(), 2)
	assert.Empty(t, wce.Children()[1].Children())

	m, ok := wce.Children()[1].Move()
	require.True(t, ok)
	assert.Equal(t, "B[CF]", m.String())
}

func TestParseCollectionAndEscapes(t *testing.T) {
	roots, err := Parse("(;C[a \\] b\\\\ c\\\nd]) \n (;GM[1]AB[aa][bb])")
	require.NoError(t, err)
	require.Len(t, roots, 2)

	c, _ := roots[0].Property("C")
	assert.Equal(t, `a ] b\ cd`, c)
	assert.Equal(t, []string{"aa", "bb"}, roots[1].Properties["AB"])
}

func TestParsePasses(t *testing.T) {
	root, err := ParseFirst("(;SZ[19];B[];W[tt])")
	require.NoError(t, err)
	for _, n := range root.Children()[0].MainVariation() {
		m, ok := n.Move()
		require.True(t, ok)
		assert.True(t, m.Vertex.IsPass())
	}

	big, err := ParseFirst("(;SZ[21];B[tt])")
	require.NoError(t, err)
	m, ok := big.Children()[0].Move()
	require.True(t, ok)
	assert.Equal(t, goban.Play(goban.Black, goban.Coord{X: 19, Y: 19}), m)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{name: "empty", in: "", err: errors.ErrEmptyRecord},
		{name: "blank", in: "  \n", err: errors.ErrEmptyRecord},
		{name: "garbage", in: "hello", err: errors.ErrInvalidSGF},
		{name: "unclosed tree", in: "(;B[aa]", err: errors.ErrInvalidSGF},
		{name: "unclosed value", in: "(;C[abc)", err: errors.ErrInvalidSGF},
		{name: "no nodes", in: "()", err: errors.ErrInvalidSGF},
		{name: "no value", in: "(;B)", err: errors.ErrInvalidSGF},
		{name: "long move", in: "(;B[zzz])", err: errors.ErrInvalidSGF},
		{name: "digit in move", in: "(;SZ[9];B[de];W[1x])", err: errors.ErrInvalidSGF},
		{name: "two move values", in: "(;B[aa][bb])", err: errors.ErrInvalidSGF},
		{name: "bad move in variation", in: "(;B[aa](;W[bb])(;W[b]))", err: errors.ErrInvalidSGF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	in := "(;GM[1]SZ[9]C[x\\]y];B[ee];W[ce](;B[ge](;W[gd])(;W[gf]))(;B[cf]))"
	root, err := ParseFirst(in)
	require.NoError(t, err)

	out := Serialize(root)
	assert.Equal(t, in, out)

	again, err := ParseFirst(out)
	require.NoError(t, err)
	assert.Equal(t, out, Serialize(again))
}

func TestSerializeCollection(t *testing.T) {
	in := "(;GM[1]SZ[9];B[ee])(;GM[1]SZ[13];W[])"
	roots, err := Parse(in)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, in, SerializeCollection(roots))
	assert.Empty(t, SerializeCollection(nil))
}

func TestSetMove(t *testing.T) {
	root := NewNode()
	root.SetProperty("SZ", "9")
	child := root.AddChild(NewNode())
	child.SetMove(goban.Play(goban.White, goban.Coord{X: 2, Y: 6}))
	pass := child.AddChild(NewNode())
	pass.SetMove(goban.PassBy(goban.Black))

	assert.Equal(t, "(;SZ[9];W[cg];B[])", Serialize(root))

	child.SetMove(goban.Play(goban.Black, goban.Coord{X: 1, Y: 1}))
	_, hasWhite := child.Property("W")
	assert.False(t, hasWhite)
}

func TestAdapterConversions(t *testing.T) {
	c := goban.Coord{X: 15, Y: 3}
	assert.Equal(t, Point{X: 15, Y: 3}, PointFromCoord(c))
	assert.Equal(t, c, PointFromCoord(c).Coord())

	assert.True(t, MoveFromVertex(goban.Pass).IsPass())
	assert.Equal(t, goban.Pass, PassMove.Vertex())
	assert.Equal(t, goban.At(c), MoveFromVertex(goban.At(c)).Vertex())
	assert.Equal(t, "pd", MoveFromVertex(goban.At(c)).String())

	col, ok := ColorOf("W")
	require.True(t, ok)
	assert.Equal(t, goban.White, col)
	_, ok = ColorOf("AB")
	assert.False(t, ok)
	assert.Equal(t, "B", PropertyOf(goban.Black))
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("zA", 52)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 25, Y: 26}, m.Point)
	assert.Equal(t, "zA", m.String())

	_, err = ParseMove("a1", 19)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)
	_, err = ParseMove("abc", 19)
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)

	last := Point{X: MaxPointBoardSize - 1, Y: 0}
	m, err = ParseMove(last.String(), MaxPointBoardSize)
	require.NoError(t, err)
	assert.Equal(t, last, m.Point)
}

func TestMoveValueErrorNamesProperty(t *testing.T) {
	_, err := Parse("(;W[zzz])")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidSGF)
	assert.Contains(t, err.Error(), "property W")
}

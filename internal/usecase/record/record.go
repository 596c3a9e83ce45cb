package record

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"gonotation/internal/domain/game"
	"gonotation/internal/domain/goban"
	"gonotation/internal/domain/gtp"
	"gonotation/internal/domain/sgf"
	"gonotation/internal/errors"
	"gonotation/internal/metrics"
	"gonotation/internal/usecase/branch"
)

// MaxGTPBoardSize is the widest board GTP letters can address: A to Z
// without I.
const MaxGTPBoardSize = 25

var _ branch.Node[*sgf.Node] = (*sgf.Node)(nil)

type BranchStore interface {
	GetBranches(ctx context.Context, key string) (game.BranchesResponse, bool, error)
	PutBranches(ctx context.Context, key string, resp game.BranchesResponse) error
}

type RecordUseCase struct {
	store   BranchStore
	log     *zap.SugaredLogger
	metrics *metrics.Metrics
}

// NewRecordUseCase builds the use case; store may be nil to run without a
// cache.
func NewRecordUseCase(store BranchStore, log *zap.SugaredLogger, m *metrics.Metrics) *RecordUseCase {
	return &RecordUseCase{store: store, log: log, metrics: m}
}

// Branches lists every variation of the first game tree in sgfText.
func (u *RecordUseCase) Branches(ctx context.Context, sgfText string) (game.BranchesResponse, error) {
	key := cacheKey(sgfText)
	if resp, ok := u.lookup(ctx, key); ok {
		return resp, nil
	}

	root, err := sgf.ParseFirst(sgfText)
	if err != nil {
		return game.BranchesResponse{}, err
	}

	resp := game.BranchesResponse{
		BoardSize: root.BoardSize(),
		Branches:  []game.Variation{},
	}
	for path := range branch.New(root).All() {
		resp.Branches = append(resp.Branches, toVariation(len(resp.Branches), branch.Moves(path), resp.BoardSize))
	}
	u.countBranches(len(resp.Branches))

	if u.store != nil {
		if err := u.store.PutBranches(ctx, key, resp); err != nil {
			u.log.Warnw("failed to cache branches", "key", key, "error", err)
		}
	}
	return resp, nil
}

// StreamBranches hands each variation to fn as soon as it is enumerated.
// It stops at the first error from fn or when ctx is done.
func (u *RecordUseCase) StreamBranches(ctx context.Context, sgfText string, fn func(game.Variation) error) error {
	root, err := sgf.ParseFirst(sgfText)
	if err != nil {
		return err
	}

	size := root.BoardSize()
	index := 0
	defer func() { u.countBranches(index) }()

	for path := range branch.New(root).All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(toVariation(index, branch.Moves(path), size)); err != nil {
			return err
		}
		index++
	}
	return nil
}

// MainLine follows the first variation at every branch point.
func (u *RecordUseCase) MainLine(ctx context.Context, sgfText string) (game.MainLineResponse, error) {
	root, err := sgf.ParseFirst(sgfText)
	if err != nil {
		return game.MainLineResponse{}, err
	}
	size := root.BoardSize()
	return game.MainLineResponse{
		BoardSize: size,
		MainLine:  toVariation(0, branch.Moves(root.MainVariation()), size),
	}, nil
}

// Normalize rewrites every game tree of the collection with properties in
// a fixed order and values escaped the same way.
func (u *RecordUseCase) Normalize(ctx context.Context, sgfText string) (game.NormalizeResponse, error) {
	roots, err := sgf.Parse(sgfText)
	if err != nil {
		return game.NormalizeResponse{}, err
	}
	return game.NormalizeResponse{
		Games: len(roots),
		SGF:   sgf.SerializeCollection(roots),
	}, nil
}

// ToGTP converts engine-native point text such as "dp" to GTP notation.
func (u *RecordUseCase) ToGTP(pointText string, boardSize int) (game.ConversionResponse, error) {
	if err := checkBoardSize(boardSize); err != nil {
		return game.ConversionResponse{}, err
	}
	p, err := goban.ParsePoint(pointText)
	if err != nil {
		return game.ConversionResponse{}, err
	}
	if !onBoard(p, boardSize) {
		return game.ConversionResponse{}, fmt.Errorf("%w: %s on %dx%d", errors.ErrOutOfBoard, p, boardSize, boardSize)
	}
	return game.ConversionResponse{
		Point:     p.String(),
		GTP:       p.ToGTP(uint8(boardSize)).String(),
		BoardSize: boardSize,
	}, nil
}

// FromGTP converts GTP text such as "Q16" to engine-native point text.
func (u *RecordUseCase) FromGTP(moveText string, boardSize int) (game.ConversionResponse, error) {
	if err := checkBoardSize(boardSize); err != nil {
		return game.ConversionResponse{}, err
	}
	m, err := gtp.Parse(moveText)
	if err != nil {
		return game.ConversionResponse{}, err
	}
	if !m.IsPass() && (columnOf(m.Letter) >= boardSize || int(m.Row) > boardSize) {
		return game.ConversionResponse{}, fmt.Errorf("%w: %s on %dx%d", errors.ErrOutOfBoard, m, boardSize, boardSize)
	}
	return game.ConversionResponse{
		Point:     goban.PointFromGTP(m, uint8(boardSize)).String(),
		GTP:       m.String(),
		BoardSize: boardSize,
	}, nil
}

func (u *RecordUseCase) lookup(ctx context.Context, key string) (game.BranchesResponse, bool) {
	if u.store == nil {
		return game.BranchesResponse{}, false
	}
	resp, found, err := u.store.GetBranches(ctx, key)
	switch {
	case err != nil:
		u.log.Warnw("branch cache lookup failed", "key", key, "error", err)
		u.countLookup("error")
	case found:
		u.countLookup("hit")
	default:
		u.countLookup("miss")
	}
	return resp, err == nil && found
}

func (u *RecordUseCase) countBranches(n int) {
	if u.metrics != nil {
		u.metrics.BranchesEnumerated.Add(float64(n))
	}
}

func (u *RecordUseCase) countLookup(result string) {
	if u.metrics != nil {
		u.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}

func toVariation(index int, moves []goban.Move, boardSize int) game.Variation {
	v := game.Variation{Index: index, Moves: make([]game.Move, 0, len(moves))}
	for _, m := range moves {
		p := goban.PointFromVertex(m.Vertex)
		out := game.Move{
			Color:       m.Color.String(),
			Coordinates: p.String(),
		}
		// points off a GTP-addressable board keep only the native form
		if checkBoardSize(boardSize) == nil && onBoard(p, boardSize) {
			out.GTP = p.ToGTP(uint8(boardSize)).String()
		}
		v.Moves = append(v.Moves, out)
	}
	v.SGF = branchRecord(moves, boardSize)
	return v
}

// branchRecord writes moves as a game record without variations.
func branchRecord(moves []goban.Move, boardSize int) string {
	root := sgf.NewNode()
	root.SetProperty("FF", "4")
	root.SetProperty("GM", "1")
	root.SetProperty("SZ", strconv.Itoa(boardSize))

	cur := root
	for _, m := range moves {
		next := sgf.NewNode()
		next.SetMove(m)
		cur = cur.AddChild(next)
	}
	return sgf.Serialize(root)
}

func checkBoardSize(size int) error {
	if size < 1 || size > MaxGTPBoardSize {
		return fmt.Errorf("%w: board size %d", errors.ErrOutOfBoard, size)
	}
	return nil
}

func onBoard(p goban.Point, size int) bool {
	return p.IsPass() || (int(p.X) < size && int(p.Y) < size)
}

func columnOf(letter byte) int {
	col := int(letter - 'A')
	if letter > gtp.SkippedLetter {
		col--
	}
	return col
}

func cacheKey(sgfText string) string {
	sum := sha256.Sum256([]byte(sgfText))
	return hex.EncodeToString(sum[:])
}

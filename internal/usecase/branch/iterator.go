// Package branch enumerates the variations of a game tree: every path from
// the root down to a leaf, leftmost first.
package branch

import "iter"

// Node is what the traversal needs from a tree: ordered children, where
// the first child continues the main line.
type Node[N any] interface {
	Children() []N
}

type frame[N any] struct {
	node N
	next int // index of the next child to descend into
}

// Iterator yields the branches of a tree one at a time. It keeps its own
// stack instead of recursing, so tree depth does not grow the call stack.
// An Iterator is single-use and must not outlive the tree it walks.
type Iterator[N Node[N]] struct {
	stack []frame[N]
}

func New[N Node[N]](root N) *Iterator[N] {
	return &Iterator[N]{stack: []frame[N]{{node: root}}}
}

// Next returns the next root-to-leaf path. ok is false once every leaf has
// been returned.
func (it *Iterator[N]) Next() (path []N, ok bool) {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		children := top.node.Children()
		if len(children) == 0 {
			path = make([]N, 0, len(it.stack)+1)
			for _, f := range it.stack {
				path = append(path, f.node)
			}
			path = append(path, top.node)
			it.backtrack()
			return path, true
		}

		it.stack = append(it.stack,
			frame[N]{node: top.node, next: top.next + 1},
			frame[N]{node: children[top.next]},
		)
	}
	return nil, false
}

// backtrack drops exhausted ancestors so the stack top is the nearest one
// that still has a child to visit.
func (it *Iterator[N]) backtrack() {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if top.next < len(top.node.Children()) {
			return
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
}

// All adapts the iterator to range-over-func. Breaking out of the loop
// leaves the remaining branches unvisited.
func (it *Iterator[N]) All() iter.Seq[[]N] {
	return func(yield func([]N) bool) {
		for {
			path, ok := it.Next()
			if !ok || !yield(path) {
				return
			}
		}
	}
}

// Collect drains the iterator.
func (it *Iterator[N]) Collect() [][]N {
	var branches [][]N
	for path := range it.All() {
		branches = append(branches, path)
	}
	return branches
}

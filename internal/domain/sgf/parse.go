package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"gonotation/internal/errors"
)

type parser struct {
	src string
	pos int
}

// Parse reads an SGF collection and returns the root node of every game
// tree in it, in file order.
func Parse(text string) ([]*Node, error) {
	p := &parser{src: text}
	var roots []*Node
	for {
		p.skipSpace()
		if p.eof() {
			break
		}
		if p.peek() != '(' {
			return nil, p.errorf("expected '(' but found %q", p.peek())
		}
		p.pos++
		root, err := p.gameTree()
		if err != nil {
			return nil, err
		}
		root.setBoardSize(rootBoardSize(root))
		roots = append(roots, root)
	}
	if len(roots) == 0 {
		return nil, errors.ErrEmptyRecord
	}
	return roots, nil
}

// ParseFirst returns the first game tree of the collection.
func ParseFirst(text string) (*Node, error) {
	roots, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return roots[0], nil
}

// gameTree is entered just after '(' and consumes the matching ')'.
func (p *parser) gameTree() (*Node, error) {
	var first, last *Node
	for p.skipSpace(); !p.eof() && p.peek() == ';'; p.skipSpace() {
		p.pos++
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = n
		} else {
			last.children = append(last.children, n)
		}
		last = n
	}
	if first == nil {
		return nil, p.errorf("game tree has no nodes")
	}

	for !p.eof() && p.peek() == '(' {
		p.pos++
		sub, err := p.gameTree()
		if err != nil {
			return nil, err
		}
		last.children = append(last.children, sub)
		p.skipSpace()
	}

	if p.eof() || p.peek() != ')' {
		return nil, p.errorf("expected ')'")
	}
	p.pos++
	return first, nil
}

func (p *parser) node() (*Node, error) {
	n := NewNode()
	for {
		p.skipSpace()
		if p.eof() || !isIdentByte(p.peek()) {
			return n, nil
		}
		ident := p.ident()

		p.skipSpace()
		if p.eof() || p.peek() != '[' {
			return nil, p.errorf("property %s has no value", ident)
		}
		for !p.eof() && p.peek() == '[' {
			value, err := p.value()
			if err != nil {
				return nil, err
			}
			n.Properties[ident] = append(n.Properties[ident], value)
			p.skipSpace()
		}
		if _, isMove := ColorOf(ident); isMove {
			if err := checkMoveValues(n.Properties[ident]); err != nil {
				return nil, p.errorf("property %s: %v", ident, err)
			}
		}
	}
}

// checkMoveValues accepts a single value readable on any board size, so
// "tt" passes whatever SZ turns out to be.
func checkMoveValues(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("want one value, got %d", len(values))
	}
	_, err := ParseMove(values[0], MaxPointBoardSize)
	return err
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// value is entered at '[' and consumes the closing ']'.
func (p *parser) value() (string, error) {
	start := p.pos
	p.pos++
	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		p.pos++
		switch c {
		case ']':
			return b.String(), nil
		case '\\':
			if p.eof() {
				return "", p.errorf("unterminated escape")
			}
			escaped := p.peek()
			p.pos++
			// escaped line break is a soft break and is dropped
			if escaped != '\n' {
				b.WriteByte(escaped)
			}
		default:
			b.WriteByte(c)
		}
	}
	p.pos = start
	return "", p.errorf("unterminated property value")
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", errors.ErrInvalidSGF, p.pos, fmt.Sprintf(format, args...))
}

func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func rootBoardSize(root *Node) int {
	sz, ok := root.Property("SZ")
	if !ok {
		return DefaultBoardSize
	}
	// rectangular boards are written as "cols:rows"
	cols, _, _ := strings.Cut(sz, ":")
	size, err := strconv.Atoi(cols)
	if err != nil || size <= 0 {
		return DefaultBoardSize
	}
	return size
}

package sgf

import (
	"sort"
	"strings"
)

// root properties first, in the order most readers expect
var orderedKeys = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "C", "B", "W"}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `]`, `\]`)

// Serialize writes the tree rooted at root as a single game tree.
func Serialize(root *Node) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, root)
	builder.WriteString(")")
	return builder.String()
}

// SerializeCollection writes several game trees one after another.
func SerializeCollection(roots []*Node) string {
	var builder strings.Builder
	for _, root := range roots {
		builder.WriteString(Serialize(root))
	}
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, node *Node) {
	for {
		builder.WriteString(";")
		writeProperties(builder, node.Properties)
		if len(node.children) != 1 {
			break
		}
		node = node.children[0]
	}

	for _, child := range node.children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperties(builder *strings.Builder, props map[string][]string) {
	used := make(map[string]bool, len(props))
	for _, key := range orderedKeys {
		if values, ok := props[key]; ok {
			used[key] = true
			writeProperty(builder, key, values)
		}
	}

	rest := make([]string, 0, len(props))
	for key := range props {
		if !used[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		writeProperty(builder, key, props[key])
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		return
	}
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteString("[")
		builder.WriteString(valueEscaper.Replace(v))
		builder.WriteString("]")
	}
}

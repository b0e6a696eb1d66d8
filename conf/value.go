package conf

import "strings"

// Value is either a Leaf or a Node. Trees returned by Parse are built
// strictly top-down, so they are acyclic and their depth is bounded by
// the maximum dot count in any input key.
type Value interface {
	value()
}

// Leaf is a terminal configuration value, stored as raw unparsed text.
type Leaf string

// Node is a container mapping child names to values. Key iteration
// order carries no meaning; lookups only.
type Node map[string]Value

func (Leaf) value() {}
func (Node) value() {}

// Lookup resolves a dotted path against the tree and returns the value
// at that position. Segments are matched literally, without trimming.
func (n Node) Lookup(path string) (Value, bool) {
	current := Value(n)

	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(Node)
		if !ok {
			return nil, false
		}

		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// ToMap projects the tree onto plain Go maps, with leaves as strings.
// Useful for handing the tree to reflection-based consumers (YAML
// marshalling, struct decoding).
func (n Node) ToMap() map[string]any {
	out := make(map[string]any, len(n))

	for key, val := range n {
		switch v := val.(type) {
		case Leaf:
			out[key] = string(v)
		case Node:
			out[key] = v.ToMap()
		}
	}

	return out
}

// set inserts a leaf at the given pre-trimmed path segments, creating
// intermediate nodes as needed. A segment that resolves to an existing
// Leaf is replaced by a fresh empty Node (deeper path wins).
func (n Node) set(segments []string, leaf Leaf) {
	key := segments[0]

	if len(segments) == 1 {
		n[key] = leaf
		return
	}

	child, ok := n[key].(Node)
	if !ok {
		child = Node{}
		n[key] = child
	}

	child.set(segments[1:], leaf)
}

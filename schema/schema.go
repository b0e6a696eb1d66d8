// Package schema validates parsed config trees against a type schema.
//
// Schema files use the same grammar as the config files themselves:
// `key = type` per line, with dot notation for nesting. Supported type
// names are string, bool (boolean), integer (int) and float (number),
// matched case-insensitively.
package schema

import (
	"fmt"
	"os"

	"sysctlconf/conf"
)

// Schema maps dotted key paths to their expected kinds. Nesting in the
// schema file is flattened by path concatenation; the map itself is flat.
type Schema map[string]Kind

// UnknownTypeError reports a schema entry whose type name is not in the
// supported set.
type UnknownTypeError struct {
	Key      string
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("schema key %q: unknown type %q", e.Key, e.TypeName)
}

// Parse parses schema text into a flat Schema. The text is parsed with
// the conf grammar first; every leaf value is then resolved as a type
// name. The first unresolvable name aborts with an *UnknownTypeError
// (which one is first is subject to map iteration order).
func Parse(input string) (Schema, error) {
	root, err := conf.Parse(input)
	if err != nil {
		return nil, err
	}

	return FromTree(root)
}

// Load reads and parses a schema file.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(string(data))
}

// FromTree flattens an already-parsed tree into a Schema.
func FromTree(root conf.Node) (Schema, error) {
	out := Schema{}
	if err := flatten(root, "", out); err != nil {
		return nil, err
	}

	return out, nil
}

func flatten(node conf.Node, prefix string, out Schema) error {
	for key, val := range node {
		path := joinPath(prefix, key)

		switch v := val.(type) {
		case conf.Leaf:
			kind := FromName(string(v))
			if kind == 0 {
				return &UnknownTypeError{Key: path, TypeName: string(v)}
			}
			out[path] = kind
		case conf.Node:
			if err := flatten(v, path, out); err != nil {
				return err
			}
		}
	}

	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

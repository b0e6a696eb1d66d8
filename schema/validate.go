package schema

import (
	"fmt"

	"sysctlconf/conf"
)

// UnknownKeyError reports a configured key that the schema does not declare.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("validation error: key %q is not defined in schema", e.Key)
}

// InvalidTypeError reports a configured value that does not parse as its
// declared kind.
type InvalidTypeError struct {
	Key      string
	Expected string
	Value    string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("validation error: key %q expected type %q, got value %q",
		e.Key, e.Expected, e.Value)
}

// Validate walks a parsed config tree depth-first, checking every leaf
// against the schema. Validation is fail-fast: the first undeclared key
// or type mismatch found is returned (which one, when several exist, is
// subject to map iteration order). A nil error means every leaf is
// declared and well-typed.
func Validate(config conf.Node, s Schema) error {
	return validateNode(config, "", s)
}

func validateNode(node conf.Node, prefix string, s Schema) error {
	for key, val := range node {
		path := joinPath(prefix, key)

		switch v := val.(type) {
		case conf.Leaf:
			kind, ok := s[path]
			if !ok {
				return &UnknownKeyError{Key: path}
			}

			if !kind.Check(string(v)) {
				return &InvalidTypeError{Key: path, Expected: kind.Name(), Value: string(v)}
			}
		case conf.Node:
			if err := validateNode(v, path, s); err != nil {
				return err
			}
		}
	}

	return nil
}

package schema

import (
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the expected primitive type of a config value.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString
	KindBool
	KindInteger
	KindFloat

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// FromName resolves a type name as written in a schema file. Matching is
// case-insensitive after trimming. Returns the zero Kind for unknown names.
func FromName(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	default:
		return 0
	case "string":
		return KindString
	case "bool", "boolean":
		return KindBool
	case "integer", "int":
		return KindInteger
	case "float", "number":
		return KindFloat
	}
}

// Name returns the canonical schema-file spelling of the kind, as used
// in validation error messages.
func (k Kind) Name() string {
	switch k {
	default:
		return "unknown"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	}
}

// Check reports whether raw is a valid literal for the kind. The raw
// string is trimmed before checking.
func (k Kind) Check(raw string) bool {
	raw = strings.TrimSpace(raw)

	switch k {
	default:
		return false
	case KindString:
		return true
	case KindBool:
		switch strings.ToLower(raw) {
		default:
			return false
		case "true", "false", "1", "0", "yes", "no":
			return true
		}
	case KindInteger:
		// Optional leading '-' only; an explicit '+' is not part of the grammar.
		if strings.HasPrefix(raw, "+") {
			return false
		}
		_, err := strconv.ParseInt(raw, 10, 64)
		return err == nil
	case KindFloat:
		_, err := strconv.ParseFloat(raw, 64)
		return err == nil
	}
}

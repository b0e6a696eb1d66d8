package conf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError reports a malformed line. Line numbers are 1-based.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse parses sysctl.conf-style text and returns the top-level node.
// Parsing stops at the first malformed line.
func Parse(input string) (Node, error) {
	return ParseReader(strings.NewReader(input))
}

// Load reads and parses a config file. Read failures are wrapped;
// malformed content is reported as a *ParseError, recoverable with
// errors.As.
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(string(data))
}

// ParseReader parses sysctl.conf-style text from r.
func ParseReader(r io.Reader) (Node, error) {
	root := Node{}
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}

		// "ignore failure" marker: strip a single leading dash.
		text = strings.TrimSpace(strings.TrimPrefix(text, "-"))
		if text == "" {
			continue
		}

		keyPart, valuePart, found := strings.Cut(text, "=")
		if !found {
			return nil, &ParseError{Line: line, Message: "missing '='"}
		}

		key := strings.TrimSpace(keyPart)
		if key == "" {
			return nil, &ParseError{Line: line, Message: "empty key"}
		}

		root.set(splitKey(key), Leaf(strings.TrimSpace(valuePart)))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return root, nil
}

// splitKey splits a dotted key into trimmed segments. Consecutive dots
// produce empty segments, which become literal empty-string map keys.
func splitKey(key string) []string {
	segments := strings.Split(key, ".")
	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
	}

	return segments
}

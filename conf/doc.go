// Package conf parses sysctl.conf-style files into nested maps.
//
// # Grammar
//
// The format is line-oriented, per sysctl.conf(5):
//
//   - `key = value` (leading/trailing whitespace trimmed on both sides)
//   - Blank lines and lines starting with `#` or `;` are ignored
//   - A single leading `-` means "ignore failure"; it is stripped and the
//     rest of the line is parsed normally
//
// Dot notation in keys creates nested maps: `log.file = path` parses to
//
//	log:
//	  file: path
//
// A later line with the same full dotted path overwrites the earlier one.
// When a dotted key descends through a key that already holds a plain
// value (`log = x` followed by `log.file = y`), the plain value is
// discarded and replaced by a nested map: the deeper path wins.
//
// Values are kept as raw strings; typed interpretation is left to the
// schema package or to Decode.
package conf

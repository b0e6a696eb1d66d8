// Package main provides the CLI entrypoint for confcheck.
//
// confcheck is a small driver around the conf and schema packages:
//   - Parses sysctl.conf-style files into nested trees
//   - Prints parsed trees as YAML
//   - Validates config files against `key = type` schema files
package main

func main() {
	Execute()
}

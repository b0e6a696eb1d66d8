package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunParse_SampleFile(t *testing.T) {
	require.NoError(t, runParse(filepath.Join("..", "..", "examples", "sample.conf")))
}

func TestRunValidate_SampleFiles(t *testing.T) {
	schemaPath = filepath.Join("..", "..", "examples", "sample.schema")
	require.NoError(t, runValidate(filepath.Join("..", "..", "examples", "sample.conf")))
}

func TestRunParse_MissingFile(t *testing.T) {
	require.Error(t, runParse(filepath.Join(t.TempDir(), "nope.conf")))
}

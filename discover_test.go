// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles writes the given files, keyed by slash separated
// path relative to root, creating directories as needed.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"basic.vert":         "",
		"basic.frag":         "",
		"notes.txt":          "",
		"post/blur.comp":     "",
		"post/deep/tone.txt": "",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))

	files, err := FindFiles(root)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		rel = append(rel, filepath.ToSlash(must(filepath.Rel(root, f))))
	}
	assert.ElementsMatch(t, []string{"basic.vert", "basic.frag", "notes.txt", "post/blur.comp", "post/deep/tone.txt"}, rel)
}

func TestFindFilesMissingRoot(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

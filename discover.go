// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"io/fs"
	"path/filepath"
)

// FindFiles returns the paths of all of the files nested anywhere
// below the given root directory. Directories do not yield entries.
// The order of the result must not be relied upon. Any error
// encountered while walking the tree is returned.
func FindFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Stage is the kind of shader program contained in one stage file.
type Stage int32

const (
	// Vertex is a vertex stage, from a .vert file.
	Vertex Stage = iota

	// Fragment is a fragment stage, from a .frag file.
	Fragment

	// Compute is a compute stage, from a .comp file.
	Compute

	// StagesN is the number of stages.
	StagesN
)

var stageNames = [StagesN]string{"vertex", "fragment", "compute"}

var stageExtensions = [StagesN]string{".vert", ".frag", ".comp"}

func (s Stage) String() string {
	if s < 0 || s >= StagesN {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Extension returns the file extension of the stage, including the dot.
func (s Stage) Extension() string {
	if s < 0 || s >= StagesN {
		return ""
	}
	return stageExtensions[s]
}

// IsCompute returns whether the stage belongs to a compute shader.
func (s Stage) IsCompute() bool {
	return s == Compute
}

// StageFromExtension returns the stage for the given file extension
// (including the dot), and false if it is not a shader stage extension.
func StageFromExtension(ext string) (Stage, bool) {
	for s, se := range stageExtensions {
		if ext == se {
			return Stage(s), true
		}
	}
	return 0, false
}

// Classify returns the logical shader name and the stage of the given
// file path. It returns false for files that are not shader stage files,
// which are meant to be ignored.
func Classify(path string) (name string, stage Stage, ok bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name = strings.TrimSuffix(base, ext)
	if name == "" || strings.Trim(name, ".") == "" {
		// dot files such as .vert have no extension, only a name
		return "", 0, false
	}
	stage, ok = StageFromExtension(ext)
	if !ok {
		return "", 0, false
	}
	return name, stage, true
}

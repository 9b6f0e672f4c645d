// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"fmt"

	"cogentcore.org/shadergen/base/errors"
)

// Report summarizes a [Generate] run.
type Report struct {

	// Files is the number of files found below the root.
	Files int

	// Stages is the number of stage files that were compiled.
	Stages int

	// Skipped are the files that are not shader stage files.
	Skipped []string

	// Generated are the paths of the written headers.
	Generated []string

	// StageErrors are the errors of the stages that did not compile.
	StageErrors []error

	// ShaderErrors are the errors of the shaders that were not valid.
	ShaderErrors []error

	// WriteErrors are the errors of the headers that could not be written.
	WriteErrors []error
}

// HasErrors returns whether any error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.StageErrors)+len(r.ShaderErrors)+len(r.WriteErrors) > 0
}

// Err returns all of the recorded errors joined, or nil if there are none.
func (r *Report) Err() error {
	var errs []error
	errs = append(errs, r.StageErrors...)
	errs = append(errs, r.ShaderErrors...)
	errs = append(errs, r.WriteErrors...)
	return errors.Join(errs...)
}

// Summary returns a one line summary of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("generated %d shader headers from %d stage files (%d files scanned, %d skipped): %d stage errors, %d shader errors, %d write errors",
		len(r.Generated), r.Stages, r.Files, len(r.Skipped), len(r.StageErrors), len(r.ShaderErrors), len(r.WriteErrors))
}

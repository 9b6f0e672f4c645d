// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"strings"
	"text/template"
)

// HeaderTmpl is the template for a generated shader header.
// It takes a [headerData] as its data. The body lines are
// joined with a newline and two tabs.
var HeaderTmpl = template.Must(template.New("Header").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`// THIS FILE IS GENERATED; DO NOT EDIT!

#ifndef {{.Guard}}
#define {{.Guard}}

#include "{{.Include}}"

class {{.Class}} : public Shader {
public:
    {{.Class}}() {
        {{join .Body "\n\t\t"}}
    }
};

#endif // !{{.Guard}}
`))

// headerData is the data for [HeaderTmpl].
type headerData struct {
	Guard   string
	Class   string
	Include string
	Body    []string
}

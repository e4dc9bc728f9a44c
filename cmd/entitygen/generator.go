// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-entity/entity"
)

// kindInfo is what the template needs to know about one scalar kind.
type kindInfo struct {
	// Ident is the exported kind type and the wrapper suffix, e.g. "Complex128".
	Ident  string
	Scalar string
	Unit   string
}

// kernel describes one generic function of contrib/vec. $E and $U in Params
// and Result stand for the scalar and unit types.
type kernel struct {
	Name   string
	Params string
	Result string
	Args   string
}

var kernels = []kernel{
	{Name: "Dot", Params: "a, b []$E", Result: "$E", Args: "a, b"},
	{Name: "ConjDot", Params: "a, b []$E", Result: "$E", Args: "a, b"},
	{Name: "Sum", Params: "a []$E", Result: "$E", Args: "a"},
	{Name: "NormL1", Params: "a []$E", Result: "$U", Args: "a"},
	{Name: "NormL2", Params: "a []$E", Result: "$U", Args: "a"},
	{Name: "NormMax", Params: "a []$E", Result: "$U", Args: "a"},
	{Name: "Axpy", Params: "alpha $E, x, y []$E", Args: "alpha, x, y"},
	{Name: "Scale", Params: "alpha $E, x []$E", Args: "alpha, x"},
}

const header = `// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
`

var fileTemplate = template.Must(template.New("gen").Funcs(template.FuncMap{
	"subst": func(s string, k kindInfo) string {
		return strings.NewReplacer("$E", k.Scalar, "$U", k.Unit).Replace(s)
	},
}).Parse(header + `
// Code generated by entitygen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)
{{range $k := .Kinds}}{{range $op := $.Kernels}}
// {{$op.Name}}{{$k.Ident}} is {{$op.Name}} for {{$k.Scalar}} on the default target.
func {{$op.Name}}{{$k.Ident}}({{subst $op.Params $k}}){{with $op.Result}} {{subst . $k}}{{end}} {
	{{if $op.Result}}return {{end}}{{$op.Name}}[{{$k.Scalar}}, {{$k.Unit}}](entity.{{$k.Ident}}{}, hwy.Default(), {{$op.Args}})
}
{{end}}{{end}}`))

// selectKinds returns the registered kinds named in want, in registry
// order, or all of them when want is empty.
func selectKinds(want []string) ([]kindInfo, error) {
	title := cases.Title(language.English)
	var out []kindInfo
	for _, d := range entity.Kinds() {
		if len(want) > 0 && !slices.Contains(want, d.Name) {
			continue
		}
		out = append(out, kindInfo{Ident: title.String(d.Name), Scalar: d.Name, Unit: d.Unit})
	}
	for _, w := range want {
		if !slices.ContainsFunc(out, func(k kindInfo) bool { return k.Scalar == w }) {
			return nil, fmt.Errorf("unknown kind %q", w)
		}
	}
	return out, nil
}

func kindNames(kinds []kindInfo) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Scalar
	}
	return names
}

// generate renders the wrappers for kinds and formats them like gofmt.
func generate(filename, pkg string, kinds []kindInfo) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Kinds   []kindInfo
		Kernels []kernel
	}{pkg, kinds, kernels})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

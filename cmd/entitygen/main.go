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

// Command entitygen generates non-generic, per-kind entry points for the
// entity kernels in contrib/vec.
//
// Usage:
//
//	entitygen -package vec -output zz_vec_gen.go
//	entitygen -package vec -output zz_vec_gen.go -kinds complex64,complex128
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/entitygen -package vec -output zz_vec_gen.go
//
// For every registered kind (see entity.Kinds) and every kernel it emits a
// wrapper such as DotComplex128 that binds the kind and hwy.Default().
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	packageOut = flag.String("package", "vec", "Package name of the generated file")
	outputFile = flag.String("output", "zz_vec_gen.go", "Output file; '-' writes to stdout")
	kindsFlag  = flag.String("kinds", "all", "Comma-separated scalar kinds (float32,float64,complex64,complex128) or 'all'")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	kinds, err := selectKinds(parseList(*kindsFlag))
	if err != nil {
		return err
	}
	src, err := generate(*outputFile, *packageOut, kinds)
	if err != nil {
		return err
	}
	if *outputFile == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", *outputFile, err)
	}
	fmt.Printf("Successfully generated %s for kinds: %s\n", *outputFile, strings.Join(kindNames(kinds), ", "))
	return nil
}

func parseList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return nil
	}
	return result
}

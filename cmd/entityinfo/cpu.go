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
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

type feature struct {
	name string
	has  bool
	note string
}

func arm64Features() []feature {
	return []feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "floating point"},
		{"HasFPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasASIMDFHM", cpu.ARM64.HasASIMDFHM, "FP16 FMA, ARMv8.4-A"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, "SVE2"},
		{"HasATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []feature {
	return []feature{
		{"HasSSE2", cpu.X86.HasSSE2, "SSE2 target"},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasSSE42", cpu.X86.HasSSE42, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, "AVX2 target, with HasFMA"},
		{"HasFMA", cpu.X86.HasFMA, "fused multiply-add"},
		{"HasAVX512F", cpu.X86.HasAVX512F, "AVX-512 target, hwy_unstable builds"},
		{"HasAVX512DQ", cpu.X86.HasAVX512DQ, ""},
		{"HasAVX512BW", cpu.X86.HasAVX512BW, ""},
		{"HasAVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

func features(goarch string) []feature {
	switch goarch {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	default:
		return nil
	}
}

func newCPUCmd() *cobra.Command {
	var onlySupported bool
	cmd := &cobra.Command{
		Use:   "cpu",
		Short: "Print the golang.org/x/sys/cpu feature flags of this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := features(runtime.GOARCH)
			if onlySupported {
				list = lo.Filter(list, func(f feature, _ int) bool { return f.has })
			}
			return printFeatures(cmd, runtime.GOARCH, list)
		},
	}
	cmd.Flags().BoolVar(&onlySupported, "supported", false, "only list features this CPU has")
	return cmd
}

func printFeatures(cmd *cobra.Command, goarch string, list []feature) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", goarch)
	if len(list) == 0 {
		fmt.Fprintln(w, "  no features reported for this architecture")
	}
	for _, f := range list {
		fmt.Fprintf(w, "  %s:\t%v\t%s\n", f.name, f.has, f.note)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write features: %w", err)
	}
	return nil
}

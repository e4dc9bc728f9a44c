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

// Command entityinfo prints the SIMD target this process selects, the CPU
// features behind that choice, and the lane layout of every entity kind.
//
// Usage:
//
//	entityinfo                  # target summary
//	entityinfo cpu              # golang.org/x/sys/cpu feature flags
//	entityinfo kinds --width 512
//	HWY_TARGET=sse2 entityinfo -v
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-entity/hwy"
)

type options struct {
	verbose bool
	width   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "entityinfo",
		Short:         "Print the selected SIMD target and the entity kind table",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				hwy.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.target()
			if err != nil {
				return err
			}
			return printTarget(cmd, t)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log target detection to stderr")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "use a fixed register width in bits (128, 256, 512) instead of the detected target")

	root.AddCommand(newCPUCmd(), newKindsCmd(opts))
	return root
}

// target returns the process default target, or a fixed one when --width is set.
func (o *options) target() (*hwy.Target, error) {
	switch o.width {
	case 0:
		return hwy.Default(), nil
	case 128:
		return hwy.Fixed(hwy.FixedTag128{}), nil
	case 256:
		return hwy.Fixed(hwy.FixedTag256{}), nil
	case 512:
		return hwy.Fixed(hwy.FixedTag512{}), nil
	default:
		return nil, fmt.Errorf("invalid --width %d: want 128, 256 or 512", o.width)
	}
}

func printTarget(cmd *cobra.Command, t *hwy.Target) error {
	w := cmd.OutOrStdout()
	_, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\n\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	if err != nil {
		return fmt.Errorf("write target: %w", err)
	}
	fmt.Fprintf(w, "Target:        %s\n", t.Name())
	fmt.Fprintf(w, "Width:         %d bytes\n", t.Width())
	fmt.Fprintf(w, "FMA:           %v\n", t.HasFMA())
	fmt.Fprintf(w, "float32 lanes: %d\n", hwy.MaxLanes[float32](t))
	fmt.Fprintf(w, "float64 lanes: %d\n", hwy.MaxLanes[float64](t))
	fmt.Fprintf(w, "HWY_NO_SIMD:   %v\n", hwy.NoSimdEnv())
	return nil
}

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
	"slices"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

// kindRow is one line of the kinds table.
type kindRow struct {
	entity.Descriptor
	lanes int
}

func kindRows(t *hwy.Target, only []string) ([]kindRow, error) {
	kinds := entity.Kinds()
	if len(only) > 0 {
		for _, name := range only {
			if !slices.ContainsFunc(kinds, func(d entity.Descriptor) bool { return d.Name == name }) {
				return nil, fmt.Errorf("unknown kind %q", name)
			}
		}
		kinds = lo.Filter(kinds, func(d entity.Descriptor, _ int) bool { return slices.Contains(only, d.Name) })
	}
	return lo.Map(kinds, func(d entity.Descriptor, _ int) kindRow {
		lanes := hwy.MaxLanes[float64](t)
		if d.UnitBits == 32 {
			lanes = hwy.MaxLanes[float32](t)
		}
		return kindRow{Descriptor: d, lanes: lanes}
	}), nil
}

func newKindsCmd(opts *options) *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "Print the registered entity kinds and their batch layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.target()
			if err != nil {
				return err
			}
			rows, err := kindRows(t, only)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "target %s, %d-bit registers\n", t.Name(), t.Width()*8)
			fmt.Fprintln(w, "KIND\tUNIT\tARITY\tSIZE\tSTORAGE\tLANES\tREGISTERS/BATCH")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\t%d\n", r.Name, r.Unit, r.Arity, r.Size, r.Storage, r.lanes, r.Arity)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write kinds: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "kind", nil, "restrict the table to these kinds")
	return cmd
}

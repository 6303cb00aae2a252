// Copyright 2024 The go-lanes Authors
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

// Command lanegen generates fixed-shape SIMD routine files from the
// operation catalogue: one file per backend plus per-architecture
// dispatch wrappers that switch on the active capability level.
//
// The generated files are not committed; packages that want the typed
// API regenerate it:
//
//	//go:generate go run github.com/veclane/go-lanes/cmd/lanegen --output . --pkg simd
//
// A run refuses to write anything unless every applicable (operation,
// type) pair resolves to a lowering on every requested target.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lanegen:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		pkg     string
		prefix  string
		targets []string
	)
	cmd := &cobra.Command{
		Use:           "lanegen",
		Short:         "generate per-target SIMD routines and dispatch wrappers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tgts, err := resolveTargets(targets)
			if err != nil {
				return err
			}
			g := &Generator{
				Output:  output,
				Pkg:     pkg,
				Prefix:  prefix,
				Targets: tgts,
			}
			return g.Run()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "simd", "directory the generated files are written to")
	cmd.Flags().StringVar(&pkg, "pkg", "simd", "package name of the generated files")
	cmd.Flags().StringVar(&prefix, "prefix", "ops", "file name prefix of the generated files")
	cmd.Flags().StringSliceVar(&targets, "targets", []string{"all"}, `backends to generate, or "all"`)
	cmd.AddCommand(newTargetsCmd())
	return cmd
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "list the available backends",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range allTargets {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d-bit native, dispatches on %s\n",
					t.Name, t.NativeBits(), t.LevelName)
			}
		},
	}
}

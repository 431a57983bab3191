// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Command vscdiff is a diagnostic CLI around [vscdiff.ComputeDiff]: it prints the reference
// diagnostic rendering of the diff between two files.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"znkr.io/vscdiff"
	"znkr.io/vscdiff/internal/byteview"
	"znkr.io/vscdiff/textdiff"
)

var (
	timing  bool
	timeout uint32
)

var rootCmd = &cobra.Command{
	Use:   "vscdiff <file1> <file2>",
	Short: "Compute a VS Code-parity line diff between two files",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&timing, "bench", "b", false, "print wall-clock timing after results")
	rootCmd.Flags().Uint32VarP(&timeout, "timeout", "T", vscdiff.DefaultMaxComputationTimeMs, "computation timeout in milliseconds (0 = unlimited)")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	path1, path2 := args[0], args[1]
	lines1, err := readLines(path1)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path1, err)
	}
	lines2, err := readLines(path2)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path2, err)
	}

	logger.Debug("computing diff",
		zap.String("file1", path1), zap.String("file2", path2), zap.Uint32("timeout_ms", timeout))

	start := time.Now()
	result := vscdiff.ComputeDiff(lines1, lines2, vscdiff.Options{MaxComputationTimeMs: timeout})
	elapsed := time.Since(start)

	fmt.Fprint(cmd.OutOrStdout(), textdiff.Render(result))
	if timing {
		fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %s\n", elapsed)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	views := byteview.SplitLines(byteview.From(string(data)))
	lines := make([]string, len(views))
	for i, v := range views {
		lines[i] = v.String()
	}
	return lines, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

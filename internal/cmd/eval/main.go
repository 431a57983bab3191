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

// eval validates the diffing algorithm against real history: for every changed file across a
// range of commits, it recomputes the diff and reapplies it to the original to check that the
// modified file comes back out unchanged.
package main

import (
	"bufio"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"znkr.io/vscdiff"
	"znkr.io/vscdiff/internal/byteview"
	"znkr.io/vscdiff/internal/cmd/eval/internal/git"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	validate bool
}

func main() {
	var cfg config
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Validate the diff engine against the history of a git repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	cmd.Flags().IntVar(&cfg.sample, "sample", 0, "if >0, sample commits down to the value of the flag")
	cmd.Flags().IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	cmd.Flags().StringVar(&cfg.stats, "stats", "", "file to store stats in")
	cmd.Flags().BoolVar(&cfg.validate, "validate", true, "whether round-trip validation should be performed")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

// variants is the set of [vscdiff.Options] configurations exercised against every changed file.
var variants = map[string]vscdiff.Options{
	"default":                {},
	"ignore-trim-whitespace": {IgnoreTrimWhitespace: true},
	"extend-to-subwords":     {ExtendToSubwords: true},
}

func run(cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64

	var stats *os.File
	if cfg.stats != "" {
		var err error
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}

	commitIDs, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("reading rev-list: %v", err)
	}

	// Sample commits.
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		picked := make(map[int]struct{}, cfg.sample)
		sample := make([]string, 0, cfg.sample)
		for len(sample) < cfg.sample {
			i := rand.IntN(len(commitIDs))
			if _, ok := picked[i]; ok {
				continue
			}
			sample = append(sample, commitIDs[i])
			picked[i] = struct{}{}
		}
		commitIDs = sample
	}

	// Process commits.
	type change struct {
		commitID string
		filename string
		old, new string
	}
	changes := make(chan change)
	var changesWG sync.WaitGroup
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		changesWG.Add(1)
		go func() {
			defer changesWG.Done()
			for _, commitID := range chunk {
				files, err := repo.DiffTree(commitID)
				if err != nil {
					notes <- note{
						prefix: commitID,
						msg:    fmt.Sprintf("error proccesing commit: %v", err),
					}
				}
				for _, file := range files {
					if strings.HasSuffix(file.Name, ".zip") || strings.HasSuffix(file.Name, ".syso") {
						continue
					}
					repo.Read([]string{file.OldID, file.NewID}, func(res []string) {
						changes <- change{
							commitID: commitID,
							filename: file.Name,
							old:      res[0],
							new:      res[1],
						}
					})
				}
				commitsDone.Add(1)
			}
		}()
	}

	// Process diffs.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for change := range changes {
				lineCount := func(s string) int {
					n := strings.Count(s, "\n")
					if len(s) > 0 && s[len(s)-1] != '\n' {
						n++
					}
					return n
				}
				trimmedOld, trimmedNew := change.old, change.new
				for len(trimmedOld) > 0 && len(trimmedNew) > 0 && trimmedOld[0] == trimmedNew[0] {
					trimmedOld = trimmedOld[1:]
					trimmedNew = trimmedNew[1:]
				}
				for len(trimmedOld) > 0 && len(trimmedNew) > 0 && trimmedOld[len(trimmedOld)-1] == trimmedNew[len(trimmedNew)-1] {
					trimmedOld = trimmedOld[:len(trimmedOld)-1]
					trimmedNew = trimmedNew[:len(trimmedNew)-1]
				}
				N, M := lineCount(trimmedOld), lineCount(trimmedNew)

				oldLines := splitLines(change.old)
				newLines := splitLines(change.new)

				for variant, opts := range variants {
					start := time.Now()
					got := vscdiff.ComputeDiff(oldLines, newLines, opts)
					duration := time.Since(start)

					if results != nil {
						nedits := 0
						for _, c := range got.Changes {
							nedits += len(c.InnerChanges)
						}
						results <- result{
							commitID: change.commitID,
							file:     change.filename,
							variant:  variant,
							N:        N,
							M:        M,
							D:        nedits,
							duration: duration,
						}
					}

					if cfg.validate {
						reconstructed := applyChanges(oldLines, newLines, got.Changes)
						if !slices.Equal(reconstructed, newLines) && !got.HitTimeout {
							notes <- note{
								prefix: change.commitID + ":" + change.filename + ":" + variant,
								msg:    "file is different after reapplying the computed diff",
							}
						}
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress.
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(len(commitIDs))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars), int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	if cfg.stats != "" {
		ioWG.Add(1)
		go func() {
			defer ioWG.Done()
			w := bufio.NewWriter(stats)
			w.WriteString("commit_id,file,variant,N,M,D,duration_ns\n")
			for result := range results {
				_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%d,%d,%d\n", result.commitID, result.file, result.variant, result.N, result.M, result.D, result.duration.Nanoseconds())
				if err != nil {
					notes <- note{
						prefix: result.commitID + ":" + result.file,
						msg:    fmt.Sprintf("failed to write stats: %v", err),
					}
				}
			}
			if err := w.Flush(); err != nil {
				notes <- note{
					prefix: "",
					msg:    fmt.Sprintf("failed to flush stats: %v", err),
				}
			}
		}()
	}

	// Shutdown.
	changesWG.Wait()
	repo.Close()
	close(changes)
	processWG.Wait()
	close(done)
	if results != nil {
		close(results)
	}
	ioWG.Wait()

	return nil
}

func splitLines(s string) []string {
	views := byteview.SplitLines(byteview.From(s))
	lines := make([]string, len(views))
	for i, v := range views {
		lines[i] = v.String()
	}
	return lines
}

// applyChanges reconstructs what modified should look like by stitching the unchanged runs of
// original around each computed change's modified-side lines. Comparing the result against the
// actual modified lines is the round-trip check: it passes iff every change's line ranges and
// coverage are self-consistent with the input it was computed from.
func applyChanges(original, modified []string, changes []vscdiff.DetailedLineRangeMapping) []string {
	out := make([]string, 0, len(modified))
	prevOrig := 0
	for _, c := range changes {
		out = append(out, original[prevOrig:c.Original.StartLineNumber-1]...)
		out = append(out, modified[c.Modified.StartLineNumber-1:c.Modified.EndLineNumberExclusive-1]...)
		prevOrig = c.Original.EndLineNumberExclusive - 1
	}
	out = append(out, original[prevOrig:]...)
	return out
}

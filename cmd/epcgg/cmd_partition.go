// SPDX-License-Identifier: MIT
// Package: epcgg/cmd/epcgg
//
// cmd_partition.go — one partition run: point set, rules, solve,
// artifacts.

package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/jogo23/edge-partitions-cgg/ilp"
	"github.com/jogo23/edge-partitions-cgg/pointset"
	"github.com/jogo23/edge-partitions-cgg/render"
	"github.com/jogo23/edge-partitions-cgg/result"
	"github.com/jogo23/edge-partitions-cgg/solve"
)

// partitionFlags mirrors the run configuration surface.
type partitionFlags struct {
	pset       string
	k, l       int
	n          int
	groupSizes string

	partitionPST       bool
	partitionSubgraphs bool

	n1Constraints   bool
	forbiddenCycles string
	coverVertices   bool
	kPlanar         int
	colors          int
	timeLimitSec    int

	seed int64

	resDir       string
	overviewDir  string
	save         bool
	saveOverview bool
	noSave       bool
	writeSVG     bool
	checkPST     bool
}

func partitionCommand() *commander.Command {
	var pf partitionFlags

	cmd := &commander.Command{
		UsageLine: "partition [options]",
		Short:     "partition one point set's complete graph",
		Long: `
partition builds the chosen point set, formulates the coloring ILP, and
solves it with the built-in exact engine.

	$ epcgg partition --pset bw --k 3 --l 3 --partition-pst
	$ epcgg partition --pset convex --n 16 --partition-pst
	$ epcgg partition --pset gw --group-sizes 2,3,3,4,5 --n1-constraints --forbidden-cycles 3,4
	$ epcgg partition --pset convex --n 15 --k-planar 1 --colors 5 --partition-subgraphs
`,
		Flag: *flag.NewFlagSet("partition", flag.ExitOnError),
	}
	cmd.Run = func(cmd *commander.Command, args []string) error {
		return runPartition(&pf, strings.Join(append([]string{"epcgg", "partition"}, args...), " "))
	}

	cmd.Flag.StringVar(&pf.pset, "pset", "bw", "point set: bw, gw, convex, random, random-wheel, two-convex-layers")
	cmd.Flag.IntVar(&pf.k, "k", 3, "k in BW(k,l)")
	cmd.Flag.IntVar(&pf.l, "l", 3, "l in BW(k,l)")
	cmd.Flag.IntVar(&pf.n, "n", -1, "number of points (not used by bw and gw)")
	cmd.Flag.StringVar(&pf.groupSizes, "group-sizes", "", "comma-separated group sizes for gw")

	cmd.Flag.BoolVar(&pf.partitionPST, "partition-pst", false, "preset: partition into plane spanning trees")
	cmd.Flag.BoolVar(&pf.partitionSubgraphs, "partition-subgraphs", false, "preset: partition into plane subgraphs")

	cmd.Flag.BoolVar(&pf.n1Constraints, "n1-constraints", true, "constraint: n-1 edges per color class")
	cmd.Flag.StringVar(&pf.forbiddenCycles, "forbidden-cycles", "", "comma-separated cycle lengths out of 3,4")
	cmd.Flag.BoolVar(&pf.coverVertices, "cover-all-vertices", false, "constraint: every vertex in every class")
	cmd.Flag.IntVar(&pf.kPlanar, "k-planar", ilp.KPlanarOff, "allow up to k same-colored crossings per edge (-1 = plane)")
	cmd.Flag.IntVar(&pf.colors, "colors", -1, "color budget (-1 = n/2)")
	cmd.Flag.IntVar(&pf.timeLimitSec, "timelimit", 0, "solver time limit in seconds (0 = none)")

	cmd.Flag.Int64Var(&pf.seed, "seed", 0, "RNG seed for random point sets (0 = clock)")

	cmd.Flag.StringVar(&pf.resDir, "res-dir", "results", "directory for run artifacts")
	cmd.Flag.StringVar(&pf.overviewDir, "overview-dir", "results_overview", "directory for overview files")
	cmd.Flag.BoolVar(&pf.save, "save", true, "save the run record")
	cmd.Flag.BoolVar(&pf.saveOverview, "save-overview", false, "append to the overview files")
	cmd.Flag.BoolVar(&pf.noSave, "no-save", false, "save nothing")
	cmd.Flag.BoolVar(&pf.writeSVG, "svg", true, "write SVG drawings")
	cmd.Flag.BoolVar(&pf.checkPST, "check-pst", false, "verify the partition is a PST partition")

	return cmd
}

// applyPresets resolves the master flags the way the original run
// surface does: pst wins the full rule set, subgraphs strips it.
func (pf *partitionFlags) applyPresets() error {
	if pf.partitionPST && pf.partitionSubgraphs {
		return fmt.Errorf("--partition-pst and --partition-subgraphs are mutually exclusive")
	}
	if pf.partitionPST {
		pf.n1Constraints = true
		if pf.forbiddenCycles == "" {
			pf.forbiddenCycles = "3,4"
		}
		pf.coverVertices = true
		pf.checkPST = true
	}
	if pf.partitionSubgraphs {
		pf.n1Constraints = false
		pf.forbiddenCycles = ""
		pf.coverVertices = false
	}
	if pf.noSave {
		pf.save = false
		pf.saveOverview = false
	}

	return nil
}

// constructor resolves the point-set flags into a generator, its
// display name, and the params line for the overview.
func (pf *partitionFlags) constructor() (con pointset.Constructor, name, params string, err error) {
	switch pf.pset {
	case "bw":
		return pointset.BumpyWheel(pf.k, pf.l), "bw", fmt.Sprintf("k = %d, l = %d", pf.k, pf.l), nil
	case "gw":
		sizes, err := parseIntList(pf.groupSizes)
		if err != nil || len(sizes) == 0 {
			return nil, "", "", fmt.Errorf("--group-sizes: need a comma-separated list, got %q", pf.groupSizes)
		}
		return pointset.GeneralizedWheel(sizes), "gw", strings.ReplaceAll(pf.groupSizes, ",", " "), nil
	case "convex":
		return pointset.Convex(pf.n), "convex", "", nil
	case "random":
		return pointset.Random(pf.n), "random", "", nil
	case "random-wheel":
		return pointset.RandomWheel(pf.n), "random-wheel", "", nil
	case "two-convex-layers":
		return pointset.TwoConvexLayers(pf.n), "two-convex-layers", "", nil
	default:
		return nil, "", "", fmt.Errorf("--pset: unknown point set %q", pf.pset)
	}
}

// rules resolves the constraint flags for n points.
func (pf *partitionFlags) rules(n int) (ilp.Rules, error) {
	cycleLens, err := parseIntList(pf.forbiddenCycles)
	if err != nil {
		return ilp.Rules{}, fmt.Errorf("--forbidden-cycles: %v", err)
	}

	colors := pf.colors
	if colors < 0 {
		colors = solve.DefaultColors(n)
	}

	r := ilp.Rules{
		Colors:           colors,
		N1Constraints:    pf.n1Constraints,
		ForbiddenCycles:  cycleLens,
		CoverAllVertices: pf.coverVertices,
		KPlanar:          pf.kPlanar,
	}
	return r, r.Validate()
}

// runPartition executes one configured run end to end.
func runPartition(pf *partitionFlags, command string) error {
	if err := pf.applyPresets(); err != nil {
		return err
	}

	con, name, params, err := pf.constructor()
	if err != nil {
		return err
	}

	var opts []pointset.Option
	if pf.seed != 0 {
		opts = append(opts, pointset.WithSeed(pf.seed))
	} else {
		opts = append(opts, pointset.WithSeed(time.Now().UnixNano()))
	}
	g, err := pointset.Build(con, opts...)
	if err != nil {
		return fmt.Errorf("building point set %s: %w", name, err)
	}
	log.Printf("point set %s: n=%d m=%d", name, g.N(), g.M())

	rules, err := pf.rules(g.N())
	if err != nil {
		return err
	}

	eng, err := solve.NewILPEngine(solve.Config{
		Graph:     g,
		Rules:     rules,
		TimeLimit: time.Duration(pf.timeLimitSec) * time.Second,
		Command:   command,
	})
	if err != nil {
		return err
	}

	sol, err := eng.ComputeSolution(context.Background())
	if err != nil {
		return err
	}
	log.Printf("solver: status=%s runtime=%v vars=%d constraints=%d",
		sol.Status, sol.Runtime, sol.Vars, sol.Constraints)

	if pf.checkPST {
		log.Printf("is PST partition = %v", sol.PSTPartition())
	}

	rec := sol.Record(name, params)
	if pf.save {
		path, err := rec.Save(pf.resDir)
		if err != nil {
			return err
		}
		log.Printf("saved record to %s", path)
	}
	if pf.saveOverview {
		mode := "subgraphs"
		if pf.checkPST {
			mode = "pst"
		}
		if err := rec.AppendOverview(pf.overviewDir, mode); err != nil {
			return err
		}
		log.Printf("appended overview for %s_%d_%s", name, g.N(), mode)
	}

	if pf.writeSVG && sol.Status == ilp.StatusOptimal {
		if rec.Stamp == "" {
			rec.Stamp = time.Now().Format(result.StampLayout)
		}
		paths, err := render.WriteAll(pf.resDir, rec.Stamp, g, rules.Colors)
		if err != nil {
			return err
		}
		log.Printf("wrote %d drawings to %s", len(paths), pf.resDir)
	}

	return nil
}

// parseIntList parses "3,4" style comma-separated integer lists; the
// empty string is the empty list.
func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

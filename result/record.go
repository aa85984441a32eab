// SPDX-License-Identifier: MIT
// Package: epcgg/result
//
// record.go — the run record and its persistence.
//
// Contract:
//   - A Record is a plain value; Save and AppendOverview only read it
//     (except for stamping an unstamped record once).
//   - Directories are created on demand; overview files are append-only.
//   - Errors wrap the underlying I/O error with the operation name.

package result

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StampLayout is the timestamp layout used for artifact names and keys.
const StampLayout = "02_01_2006-15_04_05"

// ImportantFile collects the inputs of infeasible runs.
const ImportantFile = "important.txt"

const overviewSeparator = "----------------------"

// Record captures one solver run end to end.
type Record struct {
	// Stamp keys the record; Save fills it from the wall clock when
	// empty.
	Stamp string `yaml:"-"`

	// N is the number of points; Coordinates lists them in id order.
	N           int          `yaml:"n"`
	Coordinates [][2]float64 `yaml:"coordinates"`

	// Generator names the point-set construction, Params its shape
	// parameters rendered for the overview (k/l, group sizes, or empty).
	Generator string `yaml:"generator"`
	Params    string `yaml:"params,omitempty"`

	// Command is the CLI invocation that produced the run.
	Command string `yaml:"command"`

	// Colors is the color budget; Status and RuntimeSeconds mirror the
	// solver result.
	Colors         int     `yaml:"colors"`
	Status         string  `yaml:"status"`
	RuntimeSeconds float64 `yaml:"runtime_seconds"`

	// PSTPartition reports the post-hoc plane spanning tree check.
	PSTPartition bool `yaml:"is_pst_partition"`
}

// Save writes the record as "<stamp>_data.yaml" under dir and returns
// the written path. The YAML document is a single-key map from the
// stamp to the record.
func (r *Record) Save(dir string) (string, error) {
	if r.Stamp == "" {
		r.Stamp = time.Now().Format(StampLayout)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}

	doc, err := yaml.Marshal(map[string]*Record{r.Stamp: r})
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}

	path := filepath.Join(dir, r.Stamp+"_data.yaml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}

	return path, nil
}

// AppendOverview appends the record's overview block to
// "<generator>_<n>_<mode>.txt" under dir. Infeasible runs are also
// appended to ImportantFile with their raw coordinates.
func (r *Record) AppendOverview(dir, mode string) error {
	if r.Stamp == "" {
		r.Stamp = time.Now().Format(StampLayout)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("AppendOverview: %w", err)
	}

	if r.Status == "infeasible" {
		if err := r.appendImportant(dir); err != nil {
			return err
		}
	}

	name := fmt.Sprintf("%s_%d_%s.txt", r.Generator, r.N, mode)
	return appendLines(filepath.Join(dir, name), r.overviewBlock())
}

// overviewBlock renders the per-run block: stamp, n, input shape,
// verdict with runtime, PST check, separator.
func (r *Record) overviewBlock() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%d\n", r.Stamp, r.N)

	if r.Params != "" {
		b.WriteString(r.Params)
	} else {
		b.WriteString(r.coordinateLine())
	}
	b.WriteByte('\n')

	switch r.Status {
	case "optimal":
		fmt.Fprintf(&b, "solution found (Runtime: %v)\n", r.RuntimeSeconds)
	case "infeasible":
		fmt.Fprintf(&b, "no solution (Runtime: %v)\n", r.RuntimeSeconds)
	default:
		fmt.Fprintf(&b, "unknown (Runtime: %v)\n", r.RuntimeSeconds)
	}

	fmt.Fprintf(&b, "is PST partition = %v\n%s\n", r.PSTPartition, overviewSeparator)
	return b.String()
}

// appendImportant records an infeasible input's raw coordinates.
func (r *Record) appendImportant(dir string) error {
	var b strings.Builder
	b.WriteString(r.coordinateLine())
	b.WriteByte('\n')
	fmt.Fprintf(&b, "no solution (Runtime: %v)\n%s\n", r.RuntimeSeconds, overviewSeparator)

	return appendLines(filepath.Join(dir, ImportantFile), b.String())
}

// coordinateLine renders the points as "x y x y ..." on one line.
func (r *Record) coordinateLine() string {
	var b strings.Builder
	for _, p := range r.Coordinates {
		fmt.Fprintf(&b, "%v %v ", p[0], p[1])
	}
	return strings.TrimRight(b.String(), " ")
}

// appendLines opens path in append mode and writes s.
func appendLines(path, s string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("AppendOverview: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(s); err != nil {
		return fmt.Errorf("AppendOverview: %w", err)
	}

	return nil
}

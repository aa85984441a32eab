// SPDX-License-Identifier: MIT
// Package: epcgg/result
//
// Package result persists solver runs: one YAML artifact per run plus an
// append-only plain-text overview for long experiment series.
//
// Artifacts:
//   - Save: "<stamp>_data.yaml", a single-key YAML document mapping the
//     run's timestamp to the full record.
//   - AppendOverview: a human-scannable block per run, appended to one
//     file per (generator, n, mode) series.
//   - Infeasible runs additionally land in "important.txt" with their
//     raw coordinates, so hard inputs survive the experiment loop.
//
// Timestamps use the layout 02_01_2006-15_04_05 (day first), which keeps
// filenames shell-safe and sortable within a day.
package result

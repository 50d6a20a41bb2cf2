// SPDX-License-Identifier: MIT

// Package report turns a tsp.Result into text for people and CSV for tools.
//
// Summary produces the message shown after "Find shortest path":
//
//	Shortest Path Length: 3
//	Path: 0 → 1 → 2
//
// WriteCSV emits one ';'-separated row per step of the path followed by a
// total row, the same dialect the desktop shell's "Export CSV" button writes.
package report

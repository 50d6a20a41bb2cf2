// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/citysweep/matrix"
	"github.com/katalvlaran/citysweep/tsp"
)

const (
	// Arrow joins consecutive node ids in JoinPath.
	Arrow = " → "

	// EmptyPath stands in for a path with no nodes.
	EmptyPath = "-"

	// Comma is the CSV field separator.
	Comma = ';'

	totalLabel = "total"
)

// Header is the first CSV row.
var Header = []string{"step", "from", "to", "weight", "cumulative"}

// ErrNoMatrix indicates WriteCSV got a multi-node path but no matrix to price it.
var ErrNoMatrix = errors.New("report: matrix required for a non-trivial path")

// JoinPath renders seq as "0 → 1 → 2", or EmptyPath when seq is empty.
func JoinPath(seq []int) string {
	if len(seq) == 0 {
		return EmptyPath
	}
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteString(Arrow)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// LengthLine is the one-line message shown in the result dialog.
func LengthLine(r tsp.Result) string {
	return fmt.Sprintf("Shortest Path Length: %d", r.TotalWeight)
}

// Summary is LengthLine followed by the joined path.
func Summary(r tsp.Result) string {
	return LengthLine(r) + "\nPath: " + JoinPath(r.Sequence)
}

// Coverage reports how many of n nodes the path reached, flagging a walk that
// stopped early.
func Coverage(r tsp.Result, n int) string {
	if r.Covers(n) {
		return fmt.Sprintf("Visited all %d nodes", n)
	}

	return fmt.Sprintf("Visited %d of %d nodes (graph not connected enough)", r.Len(), n)
}

// WriteCSV writes one row per step of r, pricing each step from m:
//
//	step;from;to;weight;cumulative
//	1;0;1;1;1
//	2;1;2;2;3
//	total;;;;3
//
// A result with fewer than two nodes produces only the header and total row,
// and m may then be nil.
func WriteCSV(w io.Writer, m matrix.Matrix, r tsp.Result) error {
	if len(r.Sequence) > 1 && m == nil {
		return ErrNoMatrix
	}

	wrt := csv.NewWriter(w)
	wrt.Comma = Comma
	if err := wrt.Write(Header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}

	var (
		k, from, to, wgt int
		cum              int
		err              error
	)
	for k = 1; k < len(r.Sequence); k++ {
		from, to = r.Sequence[k-1], r.Sequence[k]
		if wgt, err = m.At(from, to); err != nil {
			return fmt.Errorf("report: step %d: %w", k, err)
		}
		cum += wgt
		if err = wrt.Write([]string{
			strconv.Itoa(k),
			strconv.Itoa(from),
			strconv.Itoa(to),
			strconv.Itoa(wgt),
			strconv.Itoa(cum),
		}); err != nil {
			return fmt.Errorf("report: step %d: %w", k, err)
		}
	}
	if err = wrt.Write([]string{totalLabel, "", "", "", strconv.Itoa(r.TotalWeight)}); err != nil {
		return fmt.Errorf("report: write total: %w", err)
	}
	wrt.Flush()
	if err = wrt.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package tsp

import "fmt"

// Highlighter is the part of the graph model a path is drawn onto.
// *core.Graph satisfies it.
type Highlighter interface {
	ResetHighlights()
	ApplyHighlight(seq []int) error
}

// HighlightPath clears h and then marks r's sequence on it.
// An empty Result leaves h cleared.
func HighlightPath(h Highlighter, r Result) error {
	if h == nil {
		return ErrNilHighlighter
	}
	h.ResetHighlights()
	if err := h.ApplyHighlight(r.Sequence); err != nil {
		return fmt.Errorf("HighlightPath: %w", err)
	}

	return nil
}

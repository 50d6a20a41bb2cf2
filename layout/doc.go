// SPDX-License-Identifier: MIT

// Package layout places graph nodes on a 2D canvas.
//
// Only one placement exists: Circle, which spreads n nodes evenly around a
// circle inscribed in a Viewport. The result is deterministic for a given
// (n, Viewport) and is computed once per graph load by core.Graph; nothing in
// this package tracks window resizes.
//
// Coordinates use screen orientation: X grows to the right, Y grows down, so
// increasing angles walk the circle clockwise on screen.
package layout

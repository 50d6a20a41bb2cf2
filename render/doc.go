// SPDX-License-Identifier: MIT

// Package render draws a core.Scene on a Fyne canvas.
//
// Edges come first (base or accent colour, optional weight at the midpoint),
// then filled node circles, then the bold node ids on top. The widget holds
// no graph state of its own: every Refresh pulls a fresh Scene from its
// SceneSource, so the picture always reflects the model.
package render

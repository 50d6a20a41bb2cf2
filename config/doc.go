// SPDX-License-Identifier: MIT

// Package config loads the optional HCL settings file shared by the desktop
// shell and the batch CLI.
//
// Every block and attribute is optional; anything left out keeps the value
// from Default():
//
//	window {
//	  width  = 900
//	  height = 700
//	  title  = "City Sweep"
//	}
//
//	layout {
//	  padding = 50
//	}
//
//	style {
//	  node_size         = 30
//	  edge_color        = "#000000"
//	  accent_color      = "#FF0000"
//	  node_color        = "#0000FF"
//	  accent_node_color = "#FF0000"
//	  label_color       = "#FFFFFF"
//	  edge_width        = 2
//	  accent_width      = 3
//	  show_weights      = true
//	}
//
//	log {
//	  level  = "info"
//	  format = "text"
//	}
//
// Syntax errors, unknown blocks or attributes, and out-of-range values all
// wrap ErrInvalidConfig.
package config

// SPDX-License-Identifier: MIT

// Package cli parses the command lines of the desktop shell and the batch
// solver, validates user input, and carries process exit codes back to main.
package cli

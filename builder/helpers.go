// SPDX-License-Identifier: MIT

// Package builder provides the helper every constructor writes through.
package builder

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// connect draws one weight and writes it to both (u,v) and (v,u).
//
// Errors:
//   - ErrBadWeight from the weight source.
//   - ErrConstructFailed when the matrix rejects the write.
func connect(method string, m *matrix.Dense, cfg builderConfig, u, v int) error {
	w, err := cfg.nextWeight()
	if err != nil {
		return fmt.Errorf("%s: edge %d-%d: %w", method, u, v, err)
	}
	if err = m.Set(u, v, w); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	if err = m.Set(v, u, w); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

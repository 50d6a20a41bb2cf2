// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: text codec for adjacency matrix files.
// Format:
//   - one matrix row per non-blank line;
//   - tokens separated by any run of whitespace, ',' or ';';
//   - lines whose first non-blank rune is '#' are comments;
//   - tokens are base-10, non-negative integers.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const (
	ctxRead  = "Read"
	ctxWrite = "Write"

	commentPrefix = "#"

	// maxLineBytes bounds a single row; 1 MiB fits several thousand columns.
	maxLineBytes = 1 << 20
)

// isSeparator reports whether r splits two matrix tokens.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}

// Read parses a matrix from r.
//
// Errors:
//   - ErrParse (line-numbered) for a non-integer token, wrapped with ErrInvalidInput.
//   - Everything FromRows returns (ErrEmpty, ErrNonSquare, ErrNegativeWeight).
//   - I/O errors from r, wrapped with the "Read" context.
func Read(r io.Reader) (*Dense, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows   = [][]int{}
		lineNo int
		line   string
		fields []string
		row    []int
		v      int
		err    error
	)
	for scanner.Scan() {
		lineNo++
		line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		fields = strings.FieldsFunc(line, isSeparator)
		row = make([]int, 0, len(fields))
		for _, tok := range fields {
			if v, err = strconv.Atoi(tok); err != nil {
				return nil, invalidInput(ctxRead, fmt.Errorf("line %d: token %q: %w", lineNo, tok, ErrParse))
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRead, err)
	}

	m, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRead, err)
	}

	return m, nil
}

// LoadFile opens path and parses it with Read.
func LoadFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: load %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("matrix: load %s: %w", path, err)
	}

	return m, nil
}

// Write serializes m as space-separated rows, one per line. The output
// round-trips through Read.
func Write(w io.Writer, m Matrix) error {
	n, err := ValidateSquare(m)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxWrite, err)
	}
	bw := bufio.NewWriter(w)
	var (
		i, j, v int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", ctxWrite, err)
			}
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

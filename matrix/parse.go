package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// NewFromReader parses a matrix from bracketed text, one row per line in the
// form "[<space-separated integers>]". Repeated or extra brackets around a
// row are tolerated; lines that do not match the pattern are skipped. The
// shape is inferred from the parsed content; rows of differing widths are
// ErrRaggedInput.
func NewFromReader(r io.Reader) (*IntegerMatrix, error) {

	var rows [][]*big.Int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<24)
	for scanner.Scan() {
		row, ok := parseRow(scanner.Text())
		if !ok {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", len(rows), len(row), len(rows[0]), ErrRaggedInput)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			m.d[i][j].Set(v)
		}
	}
	return m, nil
}

// parseRow extracts the integers of one bracketed row, reporting whether the
// line matched the expected pattern.
func parseRow(line string) ([]*big.Int, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	s = strings.TrimLeft(s, "[ \t")
	s = strings.TrimRight(s, "] \t")

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}
	row := make([]*big.Int, len(fields))
	for k, f := range fields {
		v, ok := new(big.Int).SetString(f, 10)
		if !ok {
			return nil, false
		}
		row[k] = v
	}
	return row, true
}

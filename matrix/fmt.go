package matrix

import "strings"

// String renders the matrix in right-justified columnar layout, one row per
// line, each row enclosed in [ ... ]. Every column is padded to the widest
// printed entry in that column (sign character included).
func (m *IntegerMatrix) String() string {

	cells := make([][]string, m.rows)
	widths := make([]int, m.cols)
	for i := 0; i < m.rows; i++ {
		cells[i] = make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			s := m.d[i][j].String()
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			sb.WriteByte(' ')
			for pad := widths[j] - len(cells[i][j]); pad > 0; pad-- {
				sb.WriteByte(' ')
			}
			sb.WriteString(cells[i][j])
		}
		sb.WriteString(" ]")
	}
	return sb.String()
}

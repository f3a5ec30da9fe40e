// Package tools provides a multi-radix formatter and a vector-file
// linter built on top of mpint, the numeric analogs of the teacher's
// assembly formatter and style linter.
package tools

import (
	"strings"

	"github.com/ardentnum/mpint/mpint"
)

// labelColumn is where the rendered digits start, matching the
// teacher's fixed instruction-column convention for aligned output.
const labelColumn = 6

// FormatMulti renders x as aligned decimal, hexadecimal and binary lines,
// the numeric analog of the teacher's instruction formatter aligning
// mnemonic, operand and comment columns.
func FormatMulti(x *mpint.Int) string {
	var sb strings.Builder
	writeRow(&sb, "dec:", mustWrite(x, 10))
	writeRow(&sb, "hex:", mustWrite(x, 16))
	writeRow(&sb, "bin:", mustWrite(x, 2))
	return sb.String()
}

func writeRow(sb *strings.Builder, label, value string) {
	rowStart := sb.Len()
	sb.WriteString(label)
	padToColumn(sb, rowStart, labelColumn)
	sb.WriteString(value)
	sb.WriteByte('\n')
}

// padToColumn pads the row that began at byte offset rowStart of sb with
// spaces until that row is column bytes long.
func padToColumn(sb *strings.Builder, rowStart, column int) {
	current := sb.Len() - rowStart
	for ; current < column; current++ {
		sb.WriteByte(' ')
	}
}

func mustWrite(x *mpint.Int, radix int) string {
	s, err := mpint.WriteString(x, radix)
	if err != nil {
		// radix is always one of 2, 10, 16 here, all in WriteString's
		// accepted range, so this can only happen if FormatMulti itself
		// is broken.
		panic(err)
	}
	return s
}

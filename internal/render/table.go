package render

import (
	"fmt"
	"strings"

	"github.com/gogpu/xform"
)

// Table is a titled grid of preformatted cells.
type Table struct {
	Title string
	Note  string // optional line between the title and the rows
	Rows  [][]string
}

// cell formats v with prec decimals. Values that round to zero print
// without a minus sign.
func cell(v float32, prec int) string {
	s := fmt.Sprintf("%.*f", prec, v)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

// MatrixTable lays out m row by row.
func MatrixTable(title string, m xform.Mat4, prec int) Table {
	rows := make([][]string, 4)
	for r := range rows {
		rows[r] = make([]string, 4)
		for c := range rows[r] {
			rows[r][c] = cell(m.At(r, c), prec)
		}
	}
	return Table{Title: title, Rows: rows}
}

// RotationTable shows the Euler angles of d and its 3x3 rotation matrix.
func RotationTable(d xform.Decomposition, prec int) Table {
	e := d.Euler
	rows := make([][]string, 3)
	for r := range rows {
		rows[r] = make([]string, 3)
		for c := range rows[r] {
			rows[r][c] = cell(d.Rotation.At(r, c), prec)
		}
	}
	return Table{
		Title: "Rotation Information",
		Note:  fmt.Sprintf("X: %s°  Y: %s°  Z: %s°", cell(e[0], 2), cell(e[1], 2), cell(e[2], 2)),
		Rows:  rows,
	}
}

// InputTable lists the three input vectors of t, one per row.
func InputTable(t xform.Transform) Table {
	row := func(name string, v xform.Vec3) []string {
		return []string{name, cell(v[0], 2), cell(v[1], 2), cell(v[2], 2)}
	}
	return Table{
		Title: "Inputs",
		Rows: [][]string{
			{"", "X", "Y", "Z"},
			row("Position", t.Position),
			row("Scale", t.Scale),
			row("Rotation", t.Rotation),
		},
	}
}

// Tables returns the panels shown next to the viewport for t.
func Tables(t xform.Transform) []Table {
	m := t.Matrix()
	d := xform.Decompose(m)
	return []Table{
		InputTable(t),
		MatrixTable("Transformation Matrix", m, 3),
		MatrixTable("Position Matrix", d.PositionMatrix, 2),
		MatrixTable("Scale Matrix", d.ScaleMatrix, 2),
		RotationTable(d, 2),
	}
}

// String renders tb as plain text with right-aligned columns.
func (tb Table) String() string {
	var b strings.Builder
	b.WriteString(tb.Title)
	b.WriteByte('\n')
	if tb.Note != "" {
		b.WriteString(tb.Note)
		b.WriteByte('\n')
	}
	widths := tb.columnWidths()
	for _, row := range tb.Rows {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", widths[c], v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (tb Table) columnWidths() []int {
	var widths []int
	for _, row := range tb.Rows {
		for c, v := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], len(v))
		}
	}
	return widths
}

package ui

import "image"

// Panel geometry, in pixels.
const (
	panelPadding = 12
	titleHeight  = 20
	readoutLine  = 16
	rowHeight    = 28
	stepperSize  = 20
)

// controlRow is the screen geometry of one setting: a label on the left and a
// two-cell stepper flush right.
type controlRow struct {
	baseline int
	minus    image.Rectangle
	plus     image.Rectangle
}

// readoutBottom is the y just below a readout of n lines under the title.
func readoutBottom(n int) int {
	return panelPadding + titleHeight + n*readoutLine + panelPadding
}

// layoutRows stacks n control rows from top in a panel of the given width.
func layoutRows(width, top, n int) []controlRow {
	rows := make([]controlRow, n)
	for i := range rows {
		y := top + i*rowHeight + (rowHeight-stepperSize)/2
		right := width - panelPadding
		rows[i] = controlRow{
			baseline: y + stepperSize - 5,
			plus:     image.Rect(right-stepperSize, y, right, y+stepperSize),
			minus:    image.Rect(right-2*stepperSize-1, y, right-stepperSize-1, y+stepperSize),
		}
	}
	return rows
}

// hitRow finds the stepper cell under p. direction is -1 or +1.
func hitRow(rows []controlRow, p image.Point) (index, direction int, ok bool) {
	for i, r := range rows {
		switch {
		case p.In(r.minus):
			return i, -1, true
		case p.In(r.plus):
			return i, 1, true
		}
	}
	return 0, 0, false
}

package analysis

import (
	"strings"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// OrbitToASCII plots a path in screen coordinates (Y down) onto a
// width x height character grid, marking the optional focus with '@'.
func OrbitToASCII(path []dynamo.Vec2, focus *dynamo.Vec2, width, height int) string {
	if len(path) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := path[0].X, path[0].X
	minY, maxY := path[0].Y, path[0].Y
	grow := func(p dynamo.Vec2) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, p := range path {
		grow(p)
	}
	if focus != nil {
		grow(*focus)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	cell := func(p dynamo.Vec2) (int, int, bool) {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := int((p.Y - minY) / rangeY * float64(height-1))
		return row, col, row >= 0 && row < height && col >= 0 && col < width
	}

	for _, p := range path {
		if row, col, ok := cell(p); ok {
			canvas[row][col] = '•'
		}
	}
	if focus != nil {
		if row, col, ok := cell(*focus); ok {
			canvas[row][col] = '@'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteRune('\n')
	}
	return sb.String()
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravtoy/internal/dynamo"
)

// OrbitToSVG draws the rocket path over the planet outline, both in world
// coordinates, on a width x height canvas covering the world.
func OrbitToSVG(path []dynamo.Vec2, planet dynamo.Rect, world dynamo.Rect, width, height int, strokeColor string) string {
	if len(path) < 2 || world.W <= 0 || world.H <= 0 {
		return ""
	}

	sx := float64(width) / world.W
	sy := float64(height) / world.H
	project := func(p dynamo.Vec2) (float64, float64) {
		return (p.X - world.X) * sx, (p.Y - world.Y) * sy
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	cx, cy := project(planet.Center())
	sb.WriteString(fmt.Sprintf(`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="none" stroke="#666688"/>
`, cx, cy, planet.W/2*sx, planet.H/2*sy))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range path {
		x, y := project(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// Package spawn produces enemy descriptors along a fixed spawn path.
package spawn

import (
	"math"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// Path maps a progress ratio in [0, 1) to a point on the path and the
// direction of travel at that point (radians).
type Path interface {
	Sample(ratio float64) (pos core.Vec2, tangent float64)
}

// Polyline is a closed path through a list of points, traversed in order
// and back to the first point.
type Polyline struct {
	points  []core.Vec2
	lengths []float64 // Cumulative length at the start of each segment
	total   float64
}

// NewPolyline builds a closed polyline. It needs at least two distinct points.
func NewPolyline(points ...core.Vec2) *Polyline {
	p := &Polyline{
		points:  append([]core.Vec2(nil), points...),
		lengths: make([]float64, len(points)),
	}
	for i := range p.points {
		p.lengths[i] = p.total
		p.total += p.segment(i).Len()
	}
	return p
}

// NewRectPath returns the rectangle around a w x h play area, running
// clockwise on screen (Y down) from the top-left corner. The normal
// tangent+π/2 therefore points into the play area on every edge.
func NewRectPath(w, h float64) *Polyline {
	return NewMarginRectPath(w, h, 0, 0)
}

// NewMarginRectPath is NewRectPath pushed mx out on the left and right and
// my out on the top and bottom, so points on it lie outside the play area.
func NewMarginRectPath(w, h, mx, my float64) *Polyline {
	return NewPolyline(
		core.V(-mx, -my),
		core.V(w+mx, -my),
		core.V(w+mx, h+my),
		core.V(-mx, h+my),
	)
}

// Length returns the total length of the closed path.
func (p *Polyline) Length() float64 {
	return p.total
}

func (p *Polyline) segment(i int) core.Vec2 {
	next := p.points[(i+1)%len(p.points)]
	return next.Sub(p.points[i])
}

// Sample implements Path. Ratios outside [0, 1) wrap around.
func (p *Polyline) Sample(ratio float64) (core.Vec2, float64) {
	if len(p.points) == 0 {
		return core.Vec2{}, 0
	}
	if p.total == 0 {
		return p.points[0], 0
	}

	ratio -= math.Floor(ratio)
	dist := ratio * p.total

	// Last segment whose start is at or before dist
	i := len(p.lengths) - 1
	for i > 0 && p.lengths[i] > dist {
		i--
	}
	// Skip zero-length segments so the tangent is defined
	for p.segment(i).Len() == 0 {
		i = (i + 1) % len(p.points)
	}

	seg := p.segment(i)
	t := (dist - p.lengths[i]) / seg.Len()
	return core.Lerp(p.points[i], p.points[(i+1)%len(p.points)], core.ClampF(t, 0, 1)), seg.Angle()
}

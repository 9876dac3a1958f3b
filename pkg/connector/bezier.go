// Package connector draws the curved connector between two handles on the
// canvas. It is pure: the same inputs always yield the same path and markup,
// and nothing here knows about the store.
package connector

import (
	"fmt"
	"math"
	"strconv"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// DefaultCurvature controls how far control points bend away from a handle
// that faces away from the other end.
const DefaultCurvature = 0.25

// HandlePosition is the side of a node a connection leaves or enters from.
type HandlePosition string

const (
	Left   HandlePosition = "left"
	Right  HandlePosition = "right"
	Top    HandlePosition = "top"
	Bottom HandlePosition = "bottom"
)

// BezierParams are the endpoints of a connector and the sides they attach to.
// Zero positions default to Bottom for the source and Top for the target.
type BezierParams struct {
	SourceX        float64
	SourceY        float64
	SourcePosition HandlePosition
	TargetX        float64
	TargetY        float64
	TargetPosition HandlePosition
	Curvature      float64
}

// Path is a cubic Bezier connector.
type Path struct {
	// D is the SVG path data.
	D string
	// LabelX, LabelY is the curve midpoint.
	LabelX, LabelY float64
	// OffsetX, OffsetY is the midpoint's distance from the source.
	OffsetX, OffsetY float64

	Source, SourceControl, TargetControl, Target v2.Vec
}

// Bezier computes the connector path for p.
func Bezier(p BezierParams) Path {
	if p.SourcePosition == "" {
		p.SourcePosition = Bottom
	}
	if p.TargetPosition == "" {
		p.TargetPosition = Top
	}
	if p.Curvature == 0 {
		p.Curvature = DefaultCurvature
	}

	src := v2.Vec{X: p.SourceX, Y: p.SourceY}
	tgt := v2.Vec{X: p.TargetX, Y: p.TargetY}
	path := Path{
		Source:        src,
		SourceControl: controlPoint(p.SourcePosition, src, tgt, p.Curvature),
		TargetControl: controlPoint(p.TargetPosition, tgt, src, p.Curvature),
		Target:        tgt,
	}

	mid := path.At(0.5)
	path.LabelX, path.LabelY = mid.X, mid.Y
	path.OffsetX = math.Abs(mid.X - src.X)
	path.OffsetY = math.Abs(mid.Y - src.Y)
	path.D = fmt.Sprintf("M%s,%s C%s,%s %s,%s %s,%s",
		num(src.X), num(src.Y),
		num(path.SourceControl.X), num(path.SourceControl.Y),
		num(path.TargetControl.X), num(path.TargetControl.Y),
		num(tgt.X), num(tgt.Y))
	return path
}

// controlPoint pushes from along the handle's side. A handle facing the other
// end moves half the distance; one facing away bends out by a curvature term.
func controlPoint(pos HandlePosition, from, to v2.Vec, curvature float64) v2.Vec {
	switch pos {
	case Left:
		return v2.Vec{X: from.X - controlOffset(from.X-to.X, curvature), Y: from.Y}
	case Right:
		return v2.Vec{X: from.X + controlOffset(to.X-from.X, curvature), Y: from.Y}
	case Top:
		return v2.Vec{X: from.X, Y: from.Y - controlOffset(from.Y-to.Y, curvature)}
	default:
		return v2.Vec{X: from.X, Y: from.Y + controlOffset(to.Y-from.Y, curvature)}
	}
}

func controlOffset(distance, curvature float64) float64 {
	if distance >= 0 {
		return 0.5 * distance
	}
	return curvature * 25 * math.Sqrt(-distance)
}

// At evaluates the curve at t in [0, 1].
func (p Path) At(t float64) v2.Vec {
	u := 1 - t
	a := p.Source.MulScalar(u * u * u)
	b := p.SourceControl.MulScalar(3 * u * u * t)
	c := p.TargetControl.MulScalar(3 * u * t * t)
	d := p.Target.MulScalar(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// Sample flattens the curve into n+1 evenly parameterised points.
func (p Path) Sample(n int) []v2.Vec {
	if n < 1 {
		n = 1
	}
	pts := make([]v2.Vec, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = p.At(float64(i) / float64(n))
	}
	return pts
}

// boundsSamples is the flattening resolution used by Bounds.
const boundsSamples = 32

// Bounds returns the axis-aligned bounding box of the curve.
func (p Path) Bounds() (lo, hi v2.Vec) {
	pts := p.Sample(boundsSamples)
	lo, hi = pts[0], pts[0]
	for _, pt := range pts[1:] {
		lo = lo.Min(pt)
		hi = hi.Max(pt)
	}
	return lo, hi
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package connector

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/penstock/pkg/network"
)

// EdgeProps is everything needed to draw one connector.
type EdgeProps struct {
	ID             string         `json:"id"`
	SourceX        float64        `json:"sourceX"`
	SourceY        float64        `json:"sourceY"`
	SourcePosition HandlePosition `json:"sourcePosition"`
	TargetX        float64        `json:"targetX"`
	TargetY        float64        `json:"targetY"`
	TargetPosition HandlePosition `json:"targetPosition"`
	Style          network.Style  `json:"style"`
}

// Renderer writes connectors as SVG.
type Renderer struct {
	// Curvature overrides DefaultCurvature when non-zero.
	Curvature float64
	// DefaultStroke colors edges whose style has no stroke.
	DefaultStroke string
}

// NewRenderer returns a renderer with the default curvature and stroke.
func NewRenderer() *Renderer {
	return &Renderer{Curvature: DefaultCurvature, DefaultStroke: network.DefaultColor}
}

// Path computes the connector geometry for props.
func (r *Renderer) Path(props EdgeProps) Path {
	return Bezier(BezierParams{
		SourceX:        props.SourceX,
		SourceY:        props.SourceY,
		SourcePosition: props.SourcePosition,
		TargetX:        props.TargetX,
		TargetY:        props.TargetY,
		TargetPosition: props.TargetPosition,
		Curvature:      r.Curvature,
	})
}

var (
	unsafeIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	safeColor     = regexp.MustCompile(`^(#[0-9A-Fa-f]{3,8}|[A-Za-z]+|rgba?\([0-9.,%\s]+\))$`)
	safeDasharray = regexp.MustCompile(`^[0-9.,\s]+$`)
)

// MarkerID is the id of the arrowhead definition for an edge. Characters
// outside [A-Za-z0-9_-] are replaced with '_'.
func MarkerID(edgeID string) string {
	if edgeID == "" {
		return "connection-arrow"
	}
	return "connection-arrow-" + unsafeIDChars.ReplaceAllString(edgeID, "_")
}

// strokeColor picks the first of the candidates that is a plain CSS color.
func strokeColor(candidates ...string) string {
	for _, c := range candidates {
		if safeColor.MatchString(c) {
			return c
		}
	}
	return network.DefaultColor
}

// Render writes the connector as an SVG fragment: an arrowhead marker
// definition followed by the path that references it. The marker takes the
// stroke color and orients itself along the end of the curve.
func (r *Renderer) Render(w io.Writer, props EdgeProps) error {
	ew := &errWriter{w: w}
	r.render(svg.New(ew), props)
	if ew.err != nil {
		return fmt.Errorf("connector: render edge %q: %w", props.ID, ew.err)
	}
	return nil
}

// RenderDocument writes a standalone SVG document sized to the connector's
// bounds plus padding on every side.
func (r *Renderer) RenderDocument(w io.Writer, props EdgeProps, padding float64) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	lo, hi := r.Path(props).Bounds()
	minX := int(math.Floor(lo.X - padding))
	minY := int(math.Floor(lo.Y - padding))
	width := int(math.Ceil(hi.X+padding)) - minX
	height := int(math.Ceil(hi.Y+padding)) - minY

	canvas.Startview(width, height, minX, minY, width, height)
	r.render(canvas, props)
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("connector: render document %q: %w", props.ID, ew.err)
	}
	return nil
}

func (r *Renderer) render(canvas *svg.SVG, props EdgeProps) {
	stroke := strokeColor(props.Style.Stroke, r.DefaultStroke)
	id := MarkerID(props.ID)

	canvas.Def()
	canvas.Marker(id, 10, 5, 10, 10, `orient="auto"`, `markerUnits="strokeWidth"`)
	canvas.Polygon([]int{0, 10, 0}, []int{0, 5, 10}, "fill:"+stroke)
	canvas.MarkerEnd()
	canvas.DefEnd()

	canvas.Path(r.Path(props).D,
		strokeStyle(stroke, props.Style),
		fmt.Sprintf(`marker-end="url(#%s)"`, id))
}

func strokeStyle(stroke string, st network.Style) string {
	width := st.StrokeWidth
	if width <= 0 {
		width = 1
	}
	parts := []string{
		"fill:none",
		"stroke:" + stroke,
		"stroke-width:" + num(width),
	}
	if safeDasharray.MatchString(st.StrokeDasharray) {
		parts = append(parts, "stroke-dasharray:"+st.StrokeDasharray)
	}
	return strings.Join(parts, ";")
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

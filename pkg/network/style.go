package network

// Stroke colors for the edge variants.
const (
	ConduitColor = "#2563eb"
	DummyColor   = "#9ca3af"
	DefaultColor = "#b1b1b7"

	// DummyDasharray is the dash pattern of dummy links.
	DummyDasharray = "5,5"
)

// MarkerType names an arrowhead shape understood by the canvas.
type MarkerType string

// MarkerArrowClosed is the filled triangle every edge variant ends with.
const MarkerArrowClosed MarkerType = "arrowclosed"

// Style holds the presentation attributes of an edge stroke.
type Style struct {
	Stroke          string  `json:"stroke,omitempty"`
	StrokeWidth     float64 `json:"strokeWidth,omitempty"`
	StrokeDasharray string  `json:"strokeDasharray,omitempty"`
}

// Marker describes the arrowhead drawn at an edge's target end.
type Marker struct {
	Type   MarkerType `json:"type"`
	Color  string     `json:"color,omitempty"`
	Width  float64    `json:"width,omitempty"`
	Height float64    `json:"height,omitempty"`
}

// StyleFor derives the stroke style and end marker for an edge variant.
// Conduits are solid blue, dummy links dashed gray; anything else gets the
// default gray stroke.
func StyleFor(t EdgeType) (Style, Marker) {
	switch t {
	case EdgeConduit:
		return Style{Stroke: ConduitColor, StrokeWidth: 2},
			Marker{Type: MarkerArrowClosed, Color: ConduitColor, Width: 20, Height: 20}
	case EdgeDummy:
		return Style{Stroke: DummyColor, StrokeWidth: 2, StrokeDasharray: DummyDasharray},
			Marker{Type: MarkerArrowClosed, Color: DummyColor, Width: 20, Height: 20}
	default:
		return Style{Stroke: DefaultColor, StrokeWidth: 1},
			Marker{Type: MarkerArrowClosed, Color: DefaultColor, Width: 20, Height: 20}
	}
}

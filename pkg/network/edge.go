package network

// EdgeType is the closed set of edge variants.
type EdgeType string

const (
	EdgeConduit    EdgeType = "conduit"
	EdgeDummy      EdgeType = "dummy"
	EdgeConnection EdgeType = "connection"
)

// EdgeTypes returns every edge variant.
func EdgeTypes() []EdgeType {
	return []EdgeType{EdgeConduit, EdgeDummy, EdgeConnection}
}

// Valid reports whether t is one of the known edge variants.
func (t EdgeType) Valid() bool {
	switch t {
	case EdgeConduit, EdgeDummy, EdgeConnection:
		return true
	default:
		return false
	}
}

func (t EdgeType) String() string {
	return string(t)
}

// Edge is a directed connector between two nodes. Source and Target are
// weak references; only node deletion keeps them consistent.
type Edge struct {
	ID           string   `json:"id"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	SourceHandle string   `json:"sourceHandle,omitempty"`
	TargetHandle string   `json:"targetHandle,omitempty"`
	Type         EdgeType `json:"type"`
	Data         EdgeData `json:"data"`
	Style        Style    `json:"style"`
	MarkerEnd    Marker   `json:"markerEnd"`
	Selected     bool     `json:"selected,omitempty"`
}

// EdgeData is the attribute bag of an edge.
type EdgeData struct {
	Label       string   `json:"label"`
	Length      *float64 `json:"length,omitempty"`
	Diameter    *float64 `json:"diameter,omitempty"`
	Celerity    *float64 `json:"celerity,omitempty"`
	Friction    *float64 `json:"friction,omitempty"`
	NumSegments *int     `json:"numSegments,omitempty"`
	Cplus       *float64 `json:"cplus,omitempty"`
	Cminus      *float64 `json:"cminus,omitempty"`
	Comment     *string  `json:"comment,omitempty"`
}

// Connection is a proposed edge produced by the canvas when the user drags
// from one handle to another.
type Connection struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// Clone returns a copy of e that shares no mutable state with it.
func (e *Edge) Clone() *Edge {
	c := *e
	c.Data = e.Data.clone()
	return &c
}

func (d EdgeData) clone() EdgeData {
	d.Length = clonePtr(d.Length)
	d.Diameter = clonePtr(d.Diameter)
	d.Celerity = clonePtr(d.Celerity)
	d.Friction = clonePtr(d.Friction)
	d.NumSegments = clonePtr(d.NumSegments)
	d.Cplus = clonePtr(d.Cplus)
	d.Cminus = clonePtr(d.Cminus)
	d.Comment = clonePtr(d.Comment)
	return d
}

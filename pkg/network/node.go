package network

// NodeType is the closed set of node variants the editor can place.
type NodeType string

const (
	NodeReservoir    NodeType = "reservoir"
	NodeNode         NodeType = "node"
	NodeJunction     NodeType = "junction"
	NodeSurgeTank    NodeType = "surgeTank"
	NodeFlowBoundary NodeType = "flowBoundary"
)

// NodeTypes returns every node variant in palette order.
func NodeTypes() []NodeType {
	return []NodeType{NodeReservoir, NodeNode, NodeJunction, NodeSurgeTank, NodeFlowBoundary}
}

// Valid reports whether t is one of the known node variants.
func (t NodeType) Valid() bool {
	switch t {
	case NodeReservoir, NodeNode, NodeJunction, NodeSurgeTank, NodeFlowBoundary:
		return true
	default:
		return false
	}
}

func (t NodeType) String() string {
	return string(t)
}

// ElementKind says whether an id refers to a node or an edge.
type ElementKind string

const (
	KindNode ElementKind = "node"
	KindEdge ElementKind = "edge"
)

// Position is a canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dimensions is the measured size of a rendered node.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is a vertex of the network.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
	Selected bool     `json:"selected,omitempty"`
	Dragging bool     `json:"dragging,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// NodeData is the attribute bag of a node. Only the fields relevant to the
// node's variant are normally set; the rest stay nil.
type NodeData struct {
	Label      string   `json:"label"`
	Elevation  *float64 `json:"elevation,omitempty"`
	NodeNumber *int     `json:"nodeNumber,omitempty"`
	Comment    *string  `json:"comment,omitempty"`

	// surge tank
	TopElevation    *float64 `json:"topElevation,omitempty"`
	BottomElevation *float64 `json:"bottomElevation,omitempty"`
	Diameter        *float64 `json:"diameter,omitempty"`
	Celerity        *float64 `json:"celerity,omitempty"`
	Friction        *float64 `json:"friction,omitempty"`

	// flow boundary
	ScheduleNumber *int `json:"scheduleNumber,omitempty"`
}

// Clone returns a copy of n that shares no mutable state with it.
func (n *Node) Clone() *Node {
	c := *n
	c.Data = n.Data.clone()
	c.Width = clonePtr(n.Width)
	c.Height = clonePtr(n.Height)
	return &c
}

func (d NodeData) clone() NodeData {
	d.Elevation = clonePtr(d.Elevation)
	d.NodeNumber = clonePtr(d.NodeNumber)
	d.Comment = clonePtr(d.Comment)
	d.TopElevation = clonePtr(d.TopElevation)
	d.BottomElevation = clonePtr(d.BottomElevation)
	d.Diameter = clonePtr(d.Diameter)
	d.Celerity = clonePtr(d.Celerity)
	d.Friction = clonePtr(d.Friction)
	d.ScheduleNumber = clonePtr(d.ScheduleNumber)
	return d
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

package store

import "github.com/chazu/penstock/pkg/network"

// ChangeType identifies what a change record does to its element.
type ChangeType string

const (
	ChangePosition   ChangeType = "position"
	ChangeSelect     ChangeType = "select"
	ChangeRemove     ChangeType = "remove"
	ChangeDimensions ChangeType = "dimensions"
)

// NodeChange is a change record emitted by the canvas for a node.
type NodeChange struct {
	Type       ChangeType          `json:"type"`
	ID         string              `json:"id"`
	Position   *network.Position   `json:"position,omitempty"`
	Dragging   *bool               `json:"dragging,omitempty"`
	Selected   bool                `json:"selected,omitempty"`
	Dimensions *network.Dimensions `json:"dimensions,omitempty"`
}

// EdgeChange is a change record emitted by the canvas for an edge.
// Position and dimension records do not apply to edges and are ignored.
type EdgeChange struct {
	Type     ChangeType `json:"type"`
	ID       string     `json:"id"`
	Selected bool       `json:"selected,omitempty"`
}

// ApplyNodeChanges folds changes into nodes and returns the resulting
// collection. Nodes without changes keep their identity and relative order;
// changed nodes are copied, never modified. The second result reports
// whether anything changed.
func ApplyNodeChanges(changes []NodeChange, nodes []*network.Node) ([]*network.Node, bool) {
	byID := make(map[string][]NodeChange, len(changes))
	for _, c := range changes {
		byID[c.ID] = append(byID[c.ID], c)
	}

	out := make([]*network.Node, 0, len(nodes))
	changed := false
	for _, n := range nodes {
		cs, ok := byID[n.ID]
		if !ok {
			out = append(out, n)
			continue
		}
		next, removed := foldNode(n, cs)
		if removed {
			changed = true
			continue
		}
		if next != n {
			changed = true
		}
		out = append(out, next)
	}
	if !changed {
		return nodes, false
	}
	return out, true
}

func foldNode(n *network.Node, cs []NodeChange) (*network.Node, bool) {
	cur := n
	mutable := func() *network.Node {
		if cur == n {
			cur = n.Clone()
		}
		return cur
	}
	for _, c := range cs {
		switch c.Type {
		case ChangeRemove:
			return nil, true
		case ChangePosition:
			if c.Position != nil {
				mutable().Position = *c.Position
			}
			if c.Dragging != nil {
				mutable().Dragging = *c.Dragging
			}
		case ChangeSelect:
			if cur.Selected != c.Selected {
				mutable().Selected = c.Selected
			}
		case ChangeDimensions:
			if c.Dimensions != nil {
				w, h := c.Dimensions.Width, c.Dimensions.Height
				m := mutable()
				m.Width, m.Height = &w, &h
			}
		}
	}
	return cur, false
}

// ApplyEdgeChanges folds changes into edges; see ApplyNodeChanges.
func ApplyEdgeChanges(changes []EdgeChange, edges []*network.Edge) ([]*network.Edge, bool) {
	byID := make(map[string][]EdgeChange, len(changes))
	for _, c := range changes {
		byID[c.ID] = append(byID[c.ID], c)
	}

	out := make([]*network.Edge, 0, len(edges))
	changed := false
	for _, e := range edges {
		cs, ok := byID[e.ID]
		if !ok {
			out = append(out, e)
			continue
		}
		next, removed := foldEdge(e, cs)
		if removed {
			changed = true
			continue
		}
		if next != e {
			changed = true
		}
		out = append(out, next)
	}
	if !changed {
		return edges, false
	}
	return out, true
}

func foldEdge(e *network.Edge, cs []EdgeChange) (*network.Edge, bool) {
	cur := e
	for _, c := range cs {
		switch c.Type {
		case ChangeRemove:
			return nil, true
		case ChangeSelect:
			if cur.Selected != c.Selected {
				if cur == e {
					cur = e.Clone()
				}
				cur.Selected = c.Selected
			}
		}
	}
	return cur, false
}

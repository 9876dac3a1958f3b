package store

import "github.com/chazu/penstock/pkg/network"

// InitialID is the first identifier handed out by an empty store.
const InitialID = 1

// Selection points at the single selected element.
type Selection struct {
	ID   string              `json:"id"`
	Kind network.ElementKind `json:"kind"`
}

// Snapshot is one immutable state of the store. Callers must not modify the
// slices or the elements they point to.
type Snapshot struct {
	Nodes     []*network.Node
	Edges     []*network.Edge
	Selection *Selection
	// NextID is the value the next new node or edge will receive.
	NextID int
	// Version increases by one on every state replacement.
	Version uint64
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Nodes:  []*network.Node{},
		Edges:  []*network.Edge{},
		NextID: InitialID,
	}
}

// Node returns the node with the given id, or nil.
func (s Snapshot) Node(id string) *network.Node {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Edge returns the edge with the given id, or nil.
func (s Snapshot) Edge(id string) *network.Edge {
	for _, e := range s.Edges {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// SelectedElementID returns the selected element's id, or nil.
func (s Snapshot) SelectedElementID() *string {
	if s.Selection == nil {
		return nil
	}
	id := s.Selection.ID
	return &id
}

// SelectedElementType returns the selected element's kind, or nil.
func (s Snapshot) SelectedElementType() *network.ElementKind {
	if s.Selection == nil {
		return nil
	}
	k := s.Selection.Kind
	return &k
}

func (s Snapshot) isSelected(id string, kind network.ElementKind) bool {
	return s.Selection != nil && s.Selection.ID == id && s.Selection.Kind == kind
}

package store

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/samber/lo"

	"github.com/chazu/penstock/pkg/network"
)

// Listener observes state transitions. It runs synchronously after the new
// snapshot is published, in version order, and must not call back into the
// store's actions.
type Listener func(prev, next Snapshot)

type subscription struct {
	id int
	fn Listener
}

// Store is the single source of truth for the edited network.
// It is safe for concurrent use; actions are serialised.
type Store struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	state     Snapshot
	listeners []subscription
	nextSubID int
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for action tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty store whose counter starts at InitialID.
func New(opts ...Option) *Store {
	s := &Store{
		state:  emptySnapshot(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Nodes returns the current node collection.
func (s *Store) Nodes() []*network.Node { return s.Snapshot().Nodes }

// Edges returns the current edge collection.
func (s *Store) Edges() []*network.Edge { return s.Snapshot().Edges }

// SelectedElementID returns the selected element's id, or nil.
func (s *Store) SelectedElementID() *string { return s.Snapshot().SelectedElementID() }

// SelectedElementType returns the selected element's kind, or nil.
func (s *Store) SelectedElementType() *network.ElementKind {
	return s.Snapshot().SelectedElementType()
}

// Subscribe registers fn for every subsequent state transition and returns a
// function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = lo.Filter(s.listeners, func(sub subscription, _ int) bool {
			return sub.id != id
		})
	}
}

// update computes the next state from the current one. fn returns false to
// leave the store untouched. Listeners are called outside the state lock but
// under notifyMu, so they observe transitions in version order.
func (s *Store) update(fn func(cur Snapshot) (Snapshot, bool)) Snapshot {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	prev, next, listeners, ok := s.swap(fn)
	if !ok {
		return prev
	}
	for _, sub := range listeners {
		sub.fn(prev, next)
	}
	return next
}

func (s *Store) swap(fn func(cur Snapshot) (Snapshot, bool)) (prev, next Snapshot, listeners []subscription, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.state
	next, ok = fn(prev)
	if !ok {
		return prev, prev, nil, false
	}
	next.Version = prev.Version + 1
	s.state = next
	return prev, next, s.listeners, true
}

// ApplyNodeChanges folds a batch of canvas change records into the nodes.
// Nodes removed by the batch take their incident edges with them.
func (s *Store) ApplyNodeChanges(changes []NodeChange) {
	if len(changes) == 0 {
		return
	}
	s.update(func(cur Snapshot) (Snapshot, bool) {
		nodes, changed := ApplyNodeChanges(changes, cur.Nodes)
		if !changed {
			return cur, false
		}
		removed := removedIDs(cur.Nodes, nodes)
		cur.Nodes = nodes
		return dropIncidentEdges(cur, removed), true
	})
}

// ApplyEdgeChanges folds a batch of canvas change records into the edges.
func (s *Store) ApplyEdgeChanges(changes []EdgeChange) {
	if len(changes) == 0 {
		return
	}
	s.update(func(cur Snapshot) (Snapshot, bool) {
		edges, changed := ApplyEdgeChanges(changes, cur.Edges)
		if !changed {
			return cur, false
		}
		if sel := cur.Selection; sel != nil && sel.Kind == network.KindEdge && cur.Edge(sel.ID) != nil &&
			!lo.ContainsBy(edges, func(e *network.Edge) bool { return e.ID == sel.ID }) {
			cur.Selection = nil
		}
		cur.Edges = edges
		return cur, true
	})
}

// removedIDs returns the ids present in before but not in after.
func removedIDs(before, after []*network.Node) map[string]bool {
	kept := make(map[string]bool, len(after))
	for _, n := range after {
		kept[n.ID] = true
	}
	removed := make(map[string]bool)
	for _, n := range before {
		if !kept[n.ID] {
			removed[n.ID] = true
		}
	}
	return removed
}

// dropIncidentEdges removes every edge touching a removed node and clears a
// selection that pointed at a removed node or edge.
func dropIncidentEdges(cur Snapshot, removed map[string]bool) Snapshot {
	if len(removed) == 0 {
		return cur
	}
	if sel := cur.Selection; sel != nil {
		switch sel.Kind {
		case network.KindNode:
			if removed[sel.ID] {
				cur.Selection = nil
			}
		case network.KindEdge:
			if e := cur.Edge(sel.ID); e != nil && (removed[e.Source] || removed[e.Target]) {
				cur.Selection = nil
			}
		}
	}
	cur.Edges = lo.Filter(cur.Edges, func(e *network.Edge, _ int) bool {
		return !removed[e.Source] && !removed[e.Target]
	})
	return cur
}

// Connect appends a conduit edge for the proposed connection and returns it.
// Self-loops and duplicate connections are accepted as is.
func (s *Store) Connect(c network.Connection) *network.Edge {
	var edge *network.Edge
	s.update(func(cur Snapshot) (Snapshot, bool) {
		id := strconv.Itoa(cur.NextID)
		n := lo.CountBy(cur.Edges, func(e *network.Edge) bool {
			return e.Type == network.EdgeConduit
		}) + 1

		style, marker := network.StyleFor(network.EdgeConduit)
		edge = &network.Edge{
			ID:           id,
			Source:       c.Source,
			Target:       c.Target,
			SourceHandle: c.SourceHandle,
			TargetHandle: c.TargetHandle,
			Type:         network.EdgeConduit,
			Data:         network.EdgeDefaults(network.EdgeLabel(n)),
			Style:        style,
			MarkerEnd:    marker,
		}

		cur.Edges = append(cloneSlice(cur.Edges), edge)
		cur.NextID++
		return cur, true
	})
	s.logger.Debug("connect", "id", edge.ID, "source", c.Source, "target", c.Target)
	return edge
}

// AddNode places a new node of type t at pos with the variant's default
// attributes and returns it.
func (s *Store) AddNode(t network.NodeType, pos network.Position) *network.Node {
	var node *network.Node
	s.update(func(cur Snapshot) (Snapshot, bool) {
		id := strconv.Itoa(cur.NextID)
		node = &network.Node{
			ID:       id,
			Type:     t,
			Position: pos,
			Data:     network.NodeDefaults(t, id, nextNodeNumber(cur.Nodes)),
		}
		cur.Nodes = append(cloneSlice(cur.Nodes), node)
		cur.NextID++
		return cur, true
	})
	s.logger.Debug("add node", "id", node.ID, "type", t)
	return node
}

// UpdateNodeData merges p into the data of node id. Unknown ids are ignored.
func (s *Store) UpdateNodeData(id string, p network.NodePatch) {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		_, idx, ok := lo.FindIndexOf(cur.Nodes, func(n *network.Node) bool { return n.ID == id })
		if !ok {
			return cur, false
		}
		updated := cur.Nodes[idx].Clone()
		updated.Data = p.Apply(updated.Data)

		nodes := cloneSlice(cur.Nodes)
		nodes[idx] = updated
		cur.Nodes = nodes
		return cur, true
	})
	s.logger.Debug("update node data", "id", id)
}

// UpdateEdgeData merges p into edge id. A variant change restyles the edge.
// Unknown ids are ignored.
func (s *Store) UpdateEdgeData(id string, p network.EdgePatch) {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		_, idx, ok := lo.FindIndexOf(cur.Edges, func(e *network.Edge) bool { return e.ID == id })
		if !ok {
			return cur, false
		}
		edges := cloneSlice(cur.Edges)
		edges[idx] = p.ApplyEdge(cur.Edges[idx])
		cur.Edges = edges
		return cur, true
	})
	s.logger.Debug("update edge data", "id", id)
}

// DeleteElement removes a node or an edge. Deleting a node also removes
// every edge that starts or ends at it. The selection is cleared when it
// pointed at a removed element.
func (s *Store) DeleteElement(id string, kind network.ElementKind) {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		switch kind {
		case network.KindNode:
			if cur.Node(id) == nil {
				return cur, false
			}
			cur.Nodes = lo.Filter(cur.Nodes, func(n *network.Node, _ int) bool {
				return n.ID != id
			})
			cur = dropIncidentEdges(cur, map[string]bool{id: true})
		case network.KindEdge:
			if cur.Edge(id) == nil {
				return cur, false
			}
			cur.Edges = lo.Filter(cur.Edges, func(e *network.Edge, _ int) bool {
				return e.ID != id
			})
		default:
			return cur, false
		}
		if cur.isSelected(id, kind) {
			cur.Selection = nil
		}
		return cur, true
	})
	s.logger.Debug("delete element", "id", id, "kind", kind)
}

// SelectElement points the selection at id. An empty id or kind clears it.
// The element is not required to exist.
func (s *Store) SelectElement(id string, kind network.ElementKind) {
	if id == "" || kind == "" {
		s.ClearSelection()
		return
	}
	s.update(func(cur Snapshot) (Snapshot, bool) {
		if cur.isSelected(id, kind) {
			return cur, false
		}
		cur.Selection = &Selection{ID: id, Kind: kind}
		return cur, true
	})
}

// ClearSelection deselects whatever is selected.
func (s *Store) ClearSelection() {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		if cur.Selection == nil {
			return cur, false
		}
		cur.Selection = nil
		return cur, true
	})
}

// LoadNetwork replaces both collections with the given ones. Nil entries
// are dropped. The counter resumes one past the largest numeric id among them
// and the selection is cleared.
func (s *Store) LoadNetwork(nodes []*network.Node, edges []*network.Edge) {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		loadedNodes := lo.FilterMap(nodes, func(n *network.Node, _ int) (*network.Node, bool) {
			if n == nil {
				return nil, false
			}
			return n.Clone(), true
		})
		loadedEdges := lo.FilterMap(edges, func(e *network.Edge, _ int) (*network.Edge, bool) {
			if e == nil {
				return nil, false
			}
			return e.Clone(), true
		})
		next := Snapshot{
			Nodes:   loadedNodes,
			Edges:   loadedEdges,
			NextID:  nextIDAfter(loadedNodes, loadedEdges),
			Version: cur.Version,
		}
		return next, true
	})
	s.logger.Debug("load network", "nodes", len(nodes), "edges", len(edges))
}

// ClearNetwork empties the store and resets the id counter.
func (s *Store) ClearNetwork() {
	s.update(func(cur Snapshot) (Snapshot, bool) {
		next := emptySnapshot()
		next.Version = cur.Version
		return next, true
	})
	s.logger.Debug("clear network")
}

// cloneSlice returns a shallow copy with room for one more element, so
// appends never write into a slice a reader may still hold.
func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return out
}

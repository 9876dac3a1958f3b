package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/penstock/pkg/connector"
	"github.com/chazu/penstock/pkg/ctxlog"
	"github.com/chazu/penstock/pkg/network"
	"github.com/chazu/penstock/pkg/store"
)

// EventNetworkChanged is emitted to the frontend with a NetworkState payload
// after every store transition.
const EventNetworkChanged = "network:changed"

// App is the Wails backend. It exposes the network store and the connector
// renderer to the frontend via bindings.
type App struct {
	ctx         context.Context
	logger      *slog.Logger
	store       *store.Store
	renderer    *connector.Renderer
	unsubscribe func()
}

// NetworkState is the JSON-serializable store state sent to the frontend.
type NetworkState struct {
	Nodes               []*network.Node      `json:"nodes"`
	Edges               []*network.Edge      `json:"edges"`
	SelectedElementID   *string              `json:"selectedElementId"`
	SelectedElementType *network.ElementKind `json:"selectedElementType"`
	Version             uint64               `json:"version"`
}

// NewApp creates a new App with an empty store.
func NewApp(logger *slog.Logger, renderer *connector.Renderer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if renderer == nil {
		renderer = connector.NewRenderer()
	}
	return &App{
		logger:   logger,
		store:    store.New(store.WithLogger(logger)),
		renderer: renderer,
	}
}

// startup is called by Wails on app startup. From here on store transitions
// are forwarded to the frontend as events.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctxlog.WithLogger(ctx, a.logger)
	a.unsubscribe = a.store.Subscribe(a.publish)
	a.logger.Info("network store ready")
}

// shutdown is called by Wails before the window closes.
func (a *App) shutdown(ctx context.Context) {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) publish(_, next store.Snapshot) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, EventNetworkChanged, stateFrom(next))
}

func stateFrom(s store.Snapshot) NetworkState {
	state := NetworkState{
		Nodes:               s.Nodes,
		Edges:               s.Edges,
		SelectedElementID:   s.SelectedElementID(),
		SelectedElementType: s.SelectedElementType(),
		Version:             s.Version,
	}
	// Ensure slices are non-nil so JSON serializes [] not null.
	if state.Nodes == nil {
		state.Nodes = []*network.Node{}
	}
	if state.Edges == nil {
		state.Edges = []*network.Edge{}
	}
	return state
}

// State returns the current network.
func (a *App) State() NetworkState {
	return stateFrom(a.store.Snapshot())
}

// NodeTypes lists the node variants for the palette.
func (a *App) NodeTypes() []network.NodeType {
	return network.NodeTypes()
}

// EdgeTypes lists the edge variants for the inspector's type picker.
func (a *App) EdgeTypes() []network.EdgeType {
	return network.EdgeTypes()
}

// ApplyNodeChanges folds canvas change records into the nodes.
func (a *App) ApplyNodeChanges(changes []store.NodeChange) NetworkState {
	a.store.ApplyNodeChanges(changes)
	return a.State()
}

// ApplyEdgeChanges folds canvas change records into the edges.
func (a *App) ApplyEdgeChanges(changes []store.EdgeChange) NetworkState {
	a.store.ApplyEdgeChanges(changes)
	return a.State()
}

// Connect turns a connection drawn on the canvas into a conduit edge.
func (a *App) Connect(c network.Connection) *network.Edge {
	return a.store.Connect(c)
}

// AddNode drops a new node of the given variant at pos. Unknown variants are
// accepted with generic defaults.
func (a *App) AddNode(t network.NodeType, pos network.Position) *network.Node {
	if !t.Valid() {
		a.logger.Warn("unknown node type", "type", t)
	}
	return a.store.AddNode(t, pos)
}

// UpdateNodeData merges a partial attribute set into a node. An empty patch
// leaves the store untouched.
func (a *App) UpdateNodeData(id string, p network.NodePatch) NetworkState {
	if !p.Empty() {
		a.store.UpdateNodeData(id, p)
	}
	return a.State()
}

// UpdateEdgeData merges a partial attribute set into an edge. An empty patch
// leaves the store untouched.
func (a *App) UpdateEdgeData(id string, p network.EdgePatch) NetworkState {
	if p.Empty() {
		return a.State()
	}
	if p.Type != nil && !p.Type.Valid() {
		a.logger.Warn("unknown edge type", "edge", id, "type", *p.Type)
	}
	a.store.UpdateEdgeData(id, p)
	return a.State()
}

// DeleteElement removes a node (with its edges) or an edge.
func (a *App) DeleteElement(id string, kind network.ElementKind) NetworkState {
	a.store.DeleteElement(id, kind)
	return a.State()
}

// SelectElement sets the selection; empty arguments clear it.
func (a *App) SelectElement(id string, kind network.ElementKind) NetworkState {
	a.store.SelectElement(id, kind)
	return a.State()
}

// LoadNetwork replaces the whole network with externally supplied data.
func (a *App) LoadNetwork(nodes []*network.Node, edges []*network.Edge) NetworkState {
	a.store.LoadNetwork(nodes, edges)
	return a.State()
}

// ClearNetwork empties the network and restarts id assignment.
func (a *App) ClearNetwork() NetworkState {
	a.store.ClearNetwork()
	return a.State()
}

// RenderConnection returns the SVG fragment for one connector, or an empty
// string if rendering failed.
func (a *App) RenderConnection(props connector.EdgeProps) string {
	var sb strings.Builder
	if err := a.renderer.Render(&sb, props); err != nil {
		ctxlog.FromContext(a.ctx).Error("render connection failed", "edge", props.ID, "err", err)
		return ""
	}
	return sb.String()
}

// RenderConnectionDocument returns a standalone SVG document for one
// connector, padded on every side, or an empty string if rendering failed.
func (a *App) RenderConnectionDocument(props connector.EdgeProps, padding float64) string {
	var sb strings.Builder
	if err := a.renderer.RenderDocument(&sb, props, padding); err != nil {
		ctxlog.FromContext(a.ctx).Error("render connection document failed", "edge", props.ID, "err", err)
		return ""
	}
	return sb.String()
}

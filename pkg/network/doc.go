// Package network defines the hydraulic network model edited on the canvas:
// node and edge variants, their attribute bags, the patches that update them,
// and the presentation style derived from an edge's variant.
//
// Values in this package are plain data. The store owns identity, ordering
// and id assignment; nothing here enforces engineering constraints.
package network

package store

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/chazu/penstock/pkg/network"
)

// numericID parses an element id for counter resynchronisation. Ids that are
// not integers count as 0.
func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

// nextIDAfter returns one past the largest numeric id in both collections.
func nextIDAfter(nodes []*network.Node, edges []*network.Edge) int {
	maxID := lo.Reduce(nodes, func(m int, n *network.Node, _ int) int {
		return max(m, numericID(n.ID))
	}, 0)
	maxID = lo.Reduce(edges, func(m int, e *network.Edge, _ int) int {
		return max(m, numericID(e.ID))
	}, maxID)
	return maxID + 1
}

// nextNodeNumber returns one past the highest node number in use.
func nextNodeNumber(nodes []*network.Node) int {
	return lo.Reduce(nodes, func(m int, n *network.Node, _ int) int {
		if n.Data.NodeNumber == nil {
			return m
		}
		return max(m, *n.Data.NodeNumber)
	}, 0) + 1
}

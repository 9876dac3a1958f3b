package network

import (
	"fmt"

	"github.com/samber/lo"
)

// Default engineering attributes of a freshly connected edge.
const (
	DefaultLength      = 1000.0
	DefaultDiameter    = 0.5
	DefaultCelerity    = 1000.0
	DefaultFriction    = 0.02
	DefaultNumSegments = 1
)

// NodeDefaults returns the initial attribute bag for a new node of type t.
// id is the node's assigned identifier and number its node number.
func NodeDefaults(t NodeType, id string, number int) NodeData {
	d := NodeData{NodeNumber: lo.ToPtr(number)}

	switch t {
	case NodeReservoir:
		d.Label = "HW"
		d.Elevation = lo.ToPtr(100.0)
	case NodeNode, NodeJunction:
		d.Label = fmt.Sprintf("Node %d", number)
		d.Elevation = lo.ToPtr(50.0)
	case NodeSurgeTank:
		d.Label = "ST"
		d.TopElevation = lo.ToPtr(120.0)
		d.BottomElevation = lo.ToPtr(80.0)
		d.Diameter = lo.ToPtr(5.0)
		d.Celerity = lo.ToPtr(1000.0)
		d.Friction = lo.ToPtr(0.01)
	case NodeFlowBoundary:
		d.Label = "FB" + id
		d.ScheduleNumber = lo.ToPtr(1)
	default:
		d.Label = fmt.Sprintf("Node %d", number)
	}
	return d
}

// EdgeDefaults returns the attribute bag of a freshly connected edge.
func EdgeDefaults(label string) EdgeData {
	return EdgeData{
		Label:       label,
		Length:      lo.ToPtr(DefaultLength),
		Diameter:    lo.ToPtr(DefaultDiameter),
		Celerity:    lo.ToPtr(DefaultCelerity),
		Friction:    lo.ToPtr(DefaultFriction),
		NumSegments: lo.ToPtr(DefaultNumSegments),
	}
}

// EdgeLabel formats the label of the n-th edge of a variant.
func EdgeLabel(n int) string {
	return fmt.Sprintf("C%d", n)
}

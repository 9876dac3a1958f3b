package network

// NodePatch is a partial update of a node's attribute bag. Nil fields are
// left untouched when the patch is applied. Clear names optional fields, by
// their JSON key, to unset before the non-nil fields are written; unknown
// names and "label" are ignored.
type NodePatch struct {
	Label           *string  `json:"label,omitempty"`
	Elevation       *float64 `json:"elevation,omitempty"`
	NodeNumber      *int     `json:"nodeNumber,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
	TopElevation    *float64 `json:"topElevation,omitempty"`
	BottomElevation *float64 `json:"bottomElevation,omitempty"`
	Diameter        *float64 `json:"diameter,omitempty"`
	Celerity        *float64 `json:"celerity,omitempty"`
	Friction        *float64 `json:"friction,omitempty"`
	ScheduleNumber  *int     `json:"scheduleNumber,omitempty"`
	Clear           []string `json:"clear,omitempty"`
}

// Empty reports whether the patch would change nothing.
func (p NodePatch) Empty() bool {
	return p.Label == nil && p.Elevation == nil && p.NodeNumber == nil &&
		p.Comment == nil && p.TopElevation == nil && p.BottomElevation == nil &&
		p.Diameter == nil && p.Celerity == nil && p.Friction == nil &&
		p.ScheduleNumber == nil && len(p.Clear) == 0
}

// Apply returns d with every non-nil field of p written over it.
func (p NodePatch) Apply(d NodeData) NodeData {
	d = d.clone()
	for _, name := range p.Clear {
		switch name {
		case "elevation":
			d.Elevation = nil
		case "nodeNumber":
			d.NodeNumber = nil
		case "comment":
			d.Comment = nil
		case "topElevation":
			d.TopElevation = nil
		case "bottomElevation":
			d.BottomElevation = nil
		case "diameter":
			d.Diameter = nil
		case "celerity":
			d.Celerity = nil
		case "friction":
			d.Friction = nil
		case "scheduleNumber":
			d.ScheduleNumber = nil
		}
	}
	if p.Label != nil {
		d.Label = *p.Label
	}
	set(&d.Elevation, p.Elevation)
	set(&d.NodeNumber, p.NodeNumber)
	set(&d.Comment, p.Comment)
	set(&d.TopElevation, p.TopElevation)
	set(&d.BottomElevation, p.BottomElevation)
	set(&d.Diameter, p.Diameter)
	set(&d.Celerity, p.Celerity)
	set(&d.Friction, p.Friction)
	set(&d.ScheduleNumber, p.ScheduleNumber)
	return d
}

// EdgePatch is a partial update of an edge. Type, when set, switches the
// edge's variant and with it the derived style. Clear works as on NodePatch.
type EdgePatch struct {
	Type        *EdgeType `json:"type,omitempty"`
	Label       *string   `json:"label,omitempty"`
	Length      *float64  `json:"length,omitempty"`
	Diameter    *float64  `json:"diameter,omitempty"`
	Celerity    *float64  `json:"celerity,omitempty"`
	Friction    *float64  `json:"friction,omitempty"`
	NumSegments *int      `json:"numSegments,omitempty"`
	Cplus       *float64  `json:"cplus,omitempty"`
	Cminus      *float64  `json:"cminus,omitempty"`
	Comment     *string   `json:"comment,omitempty"`
	Clear       []string  `json:"clear,omitempty"`
}

// Empty reports whether the patch would change nothing.
func (p EdgePatch) Empty() bool {
	return p.Type == nil && p.Label == nil && p.Length == nil &&
		p.Diameter == nil && p.Celerity == nil && p.Friction == nil &&
		p.NumSegments == nil && p.Cplus == nil && p.Cminus == nil &&
		p.Comment == nil && len(p.Clear) == 0
}

// Apply returns d with every non-nil attribute of p written over it.
// The variant is not part of EdgeData; see ApplyEdge.
func (p EdgePatch) Apply(d EdgeData) EdgeData {
	d = d.clone()
	for _, name := range p.Clear {
		switch name {
		case "length":
			d.Length = nil
		case "diameter":
			d.Diameter = nil
		case "celerity":
			d.Celerity = nil
		case "friction":
			d.Friction = nil
		case "numSegments":
			d.NumSegments = nil
		case "cplus":
			d.Cplus = nil
		case "cminus":
			d.Cminus = nil
		case "comment":
			d.Comment = nil
		}
	}
	if p.Label != nil {
		d.Label = *p.Label
	}
	set(&d.Length, p.Length)
	set(&d.Diameter, p.Diameter)
	set(&d.Celerity, p.Celerity)
	set(&d.Friction, p.Friction)
	set(&d.NumSegments, p.NumSegments)
	set(&d.Cplus, p.Cplus)
	set(&d.Cminus, p.Cminus)
	set(&d.Comment, p.Comment)
	return d
}

// ApplyEdge returns a patched copy of e. A variant change recomputes the
// edge's style and end marker.
func (p EdgePatch) ApplyEdge(e *Edge) *Edge {
	c := e.Clone()
	c.Data = p.Apply(e.Data)
	if p.Type != nil {
		c.Type = *p.Type
		c.Style, c.MarkerEnd = StyleFor(c.Type)
	}
	return c
}

func set[T any](dst **T, v *T) {
	if v != nil {
		x := *v
		*dst = &x
	}
}

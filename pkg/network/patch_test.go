package network

import "testing"

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestNodePatchShallowMerge(t *testing.T) {
	orig := NodeDefaults(NodeReservoir, "1", 1)

	got := NodePatch{Elevation: f(120), Comment: s("upstream")}.Apply(orig)

	if *got.Elevation != 120 {
		t.Errorf("elevation = %v, want 120", *got.Elevation)
	}
	if got.Comment == nil || *got.Comment != "upstream" {
		t.Errorf("comment = %v, want upstream", got.Comment)
	}
	if got.Label != "HW" {
		t.Errorf("label should be untouched, got %q", got.Label)
	}
	if *orig.Elevation != 100 {
		t.Errorf("original mutated: elevation = %v", *orig.Elevation)
	}
	if orig.Comment != nil {
		t.Error("original mutated: comment set")
	}
}

func TestNodePatchEmpty(t *testing.T) {
	if !(NodePatch{}).Empty() {
		t.Error("zero patch should be empty")
	}
	if (NodePatch{Label: s("x")}).Empty() {
		t.Error("patch with label should not be empty")
	}
}

func TestEdgePatchVariantRestyles(t *testing.T) {
	style, marker := StyleFor(EdgeConduit)
	e := &Edge{ID: "3", Source: "1", Target: "2", Type: EdgeConduit, Data: EdgeDefaults("C1"), Style: style, MarkerEnd: marker}

	dummy := EdgeDummy
	got := EdgePatch{Type: &dummy}.ApplyEdge(e)

	if got.Type != EdgeDummy {
		t.Errorf("type = %s, want dummy", got.Type)
	}
	if got.Style.Stroke != DummyColor || got.Style.StrokeDasharray != DummyDasharray {
		t.Errorf("style = %+v, want dashed gray", got.Style)
	}
	if got.MarkerEnd.Color != DummyColor {
		t.Errorf("marker color = %s, want %s", got.MarkerEnd.Color, DummyColor)
	}
	if e.Type != EdgeConduit || e.Style.Stroke != ConduitColor {
		t.Error("original edge mutated")
	}

	conduit := EdgeConduit
	back := EdgePatch{Type: &conduit}.ApplyEdge(got)
	if back.Style.Stroke != ConduitColor || back.Style.StrokeDasharray != "" {
		t.Errorf("style = %+v, want solid blue", back.Style)
	}
}

func TestEdgePatchKeepsStyleWithoutVariant(t *testing.T) {
	e := &Edge{ID: "3", Type: EdgeDummy, Data: EdgeDefaults("C1")}
	e.Style, e.MarkerEnd = StyleFor(EdgeDummy)

	got := EdgePatch{Length: f(250)}.ApplyEdge(e)
	if *got.Data.Length != 250 {
		t.Errorf("length = %v, want 250", *got.Data.Length)
	}
	if got.Style != e.Style {
		t.Errorf("style changed without a variant change: %+v", got.Style)
	}
	if *e.Data.Length != DefaultLength {
		t.Error("original edge data mutated")
	}
}

func TestNodePatchClearUnsetsField(t *testing.T) {
	orig := NodeDefaults(NodeReservoir, "1", 1)
	orig.Comment = s("old")

	got := NodePatch{Clear: []string{"comment", "elevation", "bogus", "label"}}.Apply(orig)

	if got.Comment != nil || got.Elevation != nil {
		t.Errorf("cleared fields still set: comment=%v elevation=%v", got.Comment, got.Elevation)
	}
	if got.Label != "HW" || got.NodeNumber == nil {
		t.Errorf("untouched fields changed: %+v", got)
	}
	if orig.Comment == nil || orig.Elevation == nil {
		t.Error("original mutated")
	}
}

func TestPatchClearRunsBeforeSet(t *testing.T) {
	got := NodePatch{Elevation: f(75), Clear: []string{"elevation"}}.Apply(NodeDefaults(NodeNode, "1", 1))
	if got.Elevation == nil || *got.Elevation != 75 {
		t.Errorf("elevation = %v, want 75", got.Elevation)
	}

	e := EdgePatch{Clear: []string{"cplus", "length"}}.Apply(EdgeData{Label: "C1", Cplus: f(3), Length: f(10), Friction: f(0.02)})
	if e.Cplus != nil || e.Length != nil {
		t.Errorf("cleared edge fields still set: %+v", e)
	}
	if e.Friction == nil || *e.Friction != 0.02 {
		t.Errorf("friction = %v, want 0.02", e.Friction)
	}
}

func TestPatchWithOnlyClearIsNotEmpty(t *testing.T) {
	if (NodePatch{Clear: []string{"comment"}}).Empty() {
		t.Error("node patch with clear should not be empty")
	}
	if (EdgePatch{Clear: []string{"comment"}}).Empty() {
		t.Error("edge patch with clear should not be empty")
	}
	if !(EdgePatch{}).Empty() {
		t.Error("zero edge patch should be empty")
	}
}

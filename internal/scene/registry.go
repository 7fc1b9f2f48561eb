package scene

import (
	"globex/internal/geo"
	"globex/internal/types"
)

// NodeKind tags a scene node as either part of a marker grouping or
// unrelated geometry.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindMarkerGroup
)

func (k NodeKind) String() string {
	switch k {
	case KindMarkerGroup:
		return "marker-group"
	default:
		return "other"
	}
}

// GlobeNodeID identifies the globe mesh.
const GlobeNodeID = "globe"

// Node is a pickable sphere in the scene. Owner is the id of the marker
// group the node belongs to and is empty for KindOther nodes.
type Node struct {
	ID     string
	Kind   NodeKind
	Owner  string
	Center types.Point3D
	Radius float64
}

// Registry maps opaque node ids to nodes. Registries are built per batch and
// not modified afterwards.
type Registry struct {
	nodes map[string]Node
	order []string
}

func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]Node)}
}

// Add registers n, replacing any node with the same id.
func (r *Registry) Add(n Node) {
	if _, ok := r.nodes[n.ID]; !ok {
		r.order = append(r.order, n.ID)
	}
	r.nodes[n.ID] = n
}

// Lookup returns the node registered under id.
func (r *Registry) Lookup(id string) (Node, bool) {
	if r == nil {
		return Node{}, false
	}
	n, ok := r.nodes[id]
	return n, ok
}

// MarkerGroup resolves id to the marker group that owns it.
func (r *Registry) MarkerGroup(id string) (string, bool) {
	n, ok := r.Lookup(id)
	if !ok || n.Kind != KindMarkerGroup || n.Owner == "" {
		return "", false
	}
	return n.Owner, true
}

// Nodes returns the registered nodes in insertion order.
func (r *Registry) Nodes() []Node {
	out := make([]Node, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.nodes[id])
	}
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.order)
}

// DotNodeID and HitNodeID name the two spheres of a marker group.
func DotNodeID(markerID string) string { return markerID + "/dot" }
func HitNodeID(markerID string) string { return markerID + "/hit" }

// RegistryFromMarkers builds the scene registry for a batch: the globe as
// unrelated geometry, and for every marker a visible dot plus a larger
// invisible hit sphere, both owned by the marker's group.
func RegistryFromMarkers(markers []types.PlacedMarker) *Registry {
	reg := NewRegistry()
	reg.Add(Node{
		ID:     GlobeNodeID,
		Kind:   KindOther,
		Radius: geo.GlobeRadius,
	})

	for _, m := range markers {
		reg.Add(Node{
			ID:     DotNodeID(m.ID),
			Kind:   KindMarkerGroup,
			Owner:  m.ID,
			Center: m.Projected,
			Radius: geo.MarkerDotRadius,
		})
		reg.Add(Node{
			ID:     HitNodeID(m.ID),
			Kind:   KindMarkerGroup,
			Owner:  m.ID,
			Center: m.Projected,
			Radius: geo.MarkerHitRadius,
		})
	}
	return reg
}

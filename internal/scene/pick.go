package scene

import (
	"math"
	"sort"

	"globex/internal/types"
)

// Candidate is a ray intersection with a scene node.
type Candidate struct {
	NodeID   string  `json:"nodeId"`
	Distance float64 `json:"distance"`
}

// Ray is a half-line from Origin along Direction. Direction need not be
// normalized.
type Ray struct {
	Origin    types.Point3D `json:"origin"`
	Direction types.Point3D `json:"direction"`
}

// ClosestHit returns the marker group owning the first candidate that
// belongs to one. candidates must already be sorted by ascending distance;
// the scan short-circuits and does no sorting of its own.
func ClosestHit(candidates []Candidate, reg *Registry) (string, bool) {
	for _, c := range candidates {
		if owner, ok := reg.MarkerGroup(c.NodeID); ok {
			return owner, true
		}
	}
	return "", false
}

// Intersect casts ray against every registered node and returns the hits
// sorted by ascending distance from the ray origin.
func Intersect(ray Ray, reg *Registry) []Candidate {
	dirLen := ray.Direction.Norm()
	if dirLen == 0 || reg == nil {
		return nil
	}
	dir := ray.Direction.Scale(1 / dirLen)

	var hits []Candidate
	for _, n := range reg.Nodes() {
		if d, ok := intersectSphere(ray.Origin, dir, n.Center, n.Radius); ok {
			hits = append(hits, Candidate{NodeID: n.ID, Distance: d})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// intersectSphere returns the distance along the unit direction dir from
// origin to the nearest point of the sphere in front of the origin.
func intersectSphere(origin, dir, center types.Point3D, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)

	t := -b - sq
	if t < 0 {
		// origin inside the sphere
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

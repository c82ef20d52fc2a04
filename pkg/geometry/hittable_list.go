package geometry

import (
	"github.com/filiptrplan/zharko/pkg/core"
)

// HittableList aggregates hittables and reports the closest hit among them
type HittableList struct {
	objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.objects = append(l.objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit tests all children and returns the closest hit within tRange.
// The upper bound shrinks to the best t found so far, so objects behind
// a closer one are never selected.
func (l *HittableList) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tRange.Max

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

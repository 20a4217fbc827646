package model

import (
	"errors"
	"fmt"
	"time"
)

// MovementPath is the immutable polyline enemies travel along.
// Waypoints, per-segment lengths and the total length are computed once at
// construction and never recomputed.
type MovementPath struct {
	waypoints   []Point
	segLengths  []float64
	totalLength float64
}

// NewMovementPath builds a path from an ordered waypoint list.
// Requires at least 2 waypoints and a polyline of non-zero length.
func NewMovementPath(waypoints []Point) (*MovementPath, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("movement path requires at least 2 waypoints, got %d", len(waypoints))
	}

	pts := make([]Point, len(waypoints))
	copy(pts, waypoints)

	segLengths := make([]float64, len(pts)-1)
	total := 0.0
	for i := range segLengths {
		segLengths[i] = pts[i].DistanceTo(pts[i+1])
		total += segLengths[i]
	}

	if total <= 0 {
		return nil, errors.New("movement path has zero length")
	}

	return &MovementPath{
		waypoints:   pts,
		segLengths:  segLengths,
		totalLength: total,
	}, nil
}

// TotalLength returns the precomputed polyline length.
func (p *MovementPath) TotalLength() float64 {
	return p.totalLength
}

// SpawnPoint returns the first waypoint (where enemies enter the path).
func (p *MovementPath) SpawnPoint() Point {
	return p.waypoints[0]
}

// TerminusPoint returns the last waypoint (the defended base).
func (p *MovementPath) TerminusPoint() Point {
	return p.waypoints[len(p.waypoints)-1]
}

// Waypoints returns a copy of the waypoint list.
func (p *MovementPath) Waypoints() []Point {
	pts := make([]Point, len(p.waypoints))
	copy(pts, p.waypoints)
	return pts
}

// SegmentLengths returns a copy of the per-segment lengths.
func (p *MovementPath) SegmentLengths() []float64 {
	segs := make([]float64, len(p.segLengths))
	copy(segs, p.segLengths)
	return segs
}

// PositionAtProgress returns the point at normalized progress.
// Progress is clamped to [0,1]; 0 and 1 map to the exact endpoints.
func (p *MovementPath) PositionAtProgress(progress float64) Point {
	if progress <= 0 {
		return p.waypoints[0]
	}
	if progress >= 1 {
		return p.waypoints[len(p.waypoints)-1]
	}

	remaining := progress * p.totalLength
	for i, segLen := range p.segLengths {
		if remaining <= segLen {
			t := 0.0
			if segLen > 0 {
				t = remaining / segLen
			}
			return p.waypoints[i].Lerp(p.waypoints[i+1], t)
		}
		remaining -= segLen
	}

	// Rounding pushed the target past the last segment
	return p.waypoints[len(p.waypoints)-1]
}

// ProgressFromDistance converts a distance walked from the spawn point into
// normalized progress. Distance is clamped to [0,totalLength]; the bounds map
// to exact 0 and 1.
func (p *MovementPath) ProgressFromDistance(distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	if distance >= p.totalLength {
		return 1
	}
	return distance / p.totalLength
}

// NextPosition advances progress by speed*delta and returns the new position
// with the new progress. The step is reprojected through total distance
// (progress to distance, add the move, back to progress, then to position);
// rounding can drift slightly on non-uniform segments.
func (p *MovementPath) NextPosition(progress, speed float64, delta time.Duration) (Point, float64) {
	moveDistance := speed * delta.Seconds()
	traveled := progress*p.totalLength + moveDistance
	newProgress := p.ProgressFromDistance(traveled)
	return p.PositionAtProgress(newProgress), newProgress
}

// TravelTime returns how long the full path takes at the given speed in units
// per second.
func (p *MovementPath) TravelTime(speed float64) (time.Duration, error) {
	if speed <= 0 {
		return 0, fmt.Errorf("travel time requires positive speed, got %.2f", speed)
	}
	return time.Duration(p.totalLength / speed * float64(time.Second)), nil
}

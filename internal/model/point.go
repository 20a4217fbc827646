package model

import "math"

// Point представляет координаты на игровом поле.
// Value type, передаётся по значению (immutable).
type Point struct {
	X float64
	Y float64
}

// NewPoint создаёт Point с указанными координатами.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo возвращает расстояние до другой точки.
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt для производительности).
func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Lerp возвращает точку на отрезке p..other для t из [0,1] (immutable pattern).
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

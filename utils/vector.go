package utils

import (
	"math"
	"strconv"
)

// Vector2 is a 2-vector value.
type Vector2 [2]float64

func (v Vector2) Add(a Vector2) Vector2 { return Vector2{v[0] + a[0], v[1] + a[1]} }
func (v Vector2) Sub(a Vector2) Vector2 { return Vector2{v[0] - a[0], v[1] - a[1]} }
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{s * v[0], s * v[1]}
}
func (v Vector2) Dot(a Vector2) float64 { return v[0]*a[0] + v[1]*a[1] }
func (v Vector2) Norm() float64         { return math.Hypot(v[0], v[1]) }

func (v Vector2) IsFinite() bool {
	return !IsNan(v) && !IsInf(v)
}

func (v Vector2) String() string {
	return "[" + FormatFloat(v[0]) + " " + FormatFloat(v[1]) + "]"
}

// FormatFloat is the shortest representation that round-trips.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

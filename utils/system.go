package utils

import (
	"fmt"
	"math"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case Vector2:
		return math.IsNaN(v[0]) || math.IsNaN(v[1])
	case Matrix2:
		return IsNan(v.Data())
	}
	return false
}

func IsInf(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsInf(v, 0)
	case []float64:
		for _, f := range v {
			if math.IsInf(f, 0) {
				return true
			}
		}
	case Vector2:
		return math.IsInf(v[0], 0) || math.IsInf(v[1], 0)
	case Matrix2:
		return IsInf(v.Data())
	}
	return false
}

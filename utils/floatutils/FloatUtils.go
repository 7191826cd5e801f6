// Package floatutils provides utilities for working with floats
package floatutils

import (
	"gonum.org/v1/gonum/spatial/r1"
)

// InInterval returns whether value lies in the closed interval. NaN
// lies in no interval.
func InInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value <= interval.Max
}

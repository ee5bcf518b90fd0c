// Package latlon does great circle math on a spherical earth: initial
// bearing and distance between two points, and the destination reached
// from a point travelling a distance on a bearing.
//
// Angles are decimal degrees, distances kilometres.
package latlon

import (
	"fmt"
	"math"
)

// R is the mean earth radius in km, as of GRS-80.
const R = 6371.000785

// Epsilon is the absolute tolerance used by IsClose.
const Epsilon = 1e-9

// Computed in float64 so that conversions round the same way everywhere.
var (
	π        = math.Pi
	degToRad = π / 180.0
	radToDeg = 180.0 / π
)

// Navigator computes distances in km, bearings in degrees and destinations
// on the sphere of radius R.
type Navigator interface {
	DistanceTo(from, to GeoPoint) float64
	BearingTo(from, to GeoPoint) float64
	DistanceAndBearingTo(from, to GeoPoint) (float64, float64)
	Destination(from GeoPoint, bearing float64, distance float64) (GeoPoint, error)
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ApproxEqual reports whether both coordinates of p and q are within Epsilon.
func (p GeoPoint) ApproxEqual(q GeoPoint) bool {
	return IsClose(p.Lat, q.Lat) && IsClose(p.Lon, q.Lon)
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat, p.Lon)
}

// IsClose reports whether a and b differ by less than Epsilon.
func IsClose(a, b float64) bool {
	return a == b || math.Abs(a-b) < Epsilon
}

// DegreesToKm converts an arc of d degrees along a meridian to km.
func DegreesToKm(d float64) float64 {
	return DegreesToKmAt(d, 0)
}

// DegreesToKmAt converts an arc of d degrees along the parallel of latitude
// lat to km.
func DegreesToKmAt(d, lat float64) float64 {
	if !IsClose(lat, 0.0) {
		d *= math.Cos(toRadians(lat))
	}

	return d * math.Pi * R / 180.0
}

// KmToDegrees converts km to degrees of arc along a meridian.
func KmToDegrees(d float64) float64 {
	return d / math.Pi / R * 180.0
}

// KmToRadians converts km to radians of arc along a great circle.
func KmToRadians(d float64) float64 {
	return d / R
}

func toRadians(a float64) float64 {
	return a * degToRad
}

func toDegrees(a float64) float64 {
	return a * radToDeg
}

// clamp keeps acos/asin arguments inside [-1, 1] against round-off.
func clamp(x float64) float64 {
	return math.Max(-1.0, math.Min(1.0, x))
}

package latlon

import "math"

// Haversine is a Navigator using the haversine distance and the atan2
// bearing and destination formulas. It stays well conditioned for short
// distances and never fails at the poles.
type Haversine struct{}

func (Haversine) centralAngle(φ1, φ2, Δλ float64) float64 {
	Δφ := φ2 - φ1

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (Haversine) initialBearing(φ1, φ2, Δλ float64) float64 {
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return wrap360(toDegrees(θ))
}

func (hav Haversine) DistanceTo(from, to GeoPoint) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	return R * hav.centralAngle(φ1, φ2, Δλ)
}

func (hav Haversine) BearingTo(from, to GeoPoint) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	return hav.initialBearing(φ1, φ2, Δλ)
}

func (hav Haversine) DistanceAndBearingTo(from, to GeoPoint) (float64, float64) {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	return R * hav.centralAngle(φ1, φ2, Δλ), hav.initialBearing(φ1, φ2, Δλ)
}

// Destination never returns an error.
func (Haversine) Destination(from GeoPoint, bearing float64, distance float64) (GeoPoint, error) {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := KmToRadians(distance)

	φ2 := math.Asin(clamp(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return GeoPoint{Lat: toDegrees(φ2), Lon: wrap180(toDegrees(λ2))}, nil
}

package latlon

import "math"

// Regime is the closed set of cases Travel solves separately.
type Regime int

const (
	// Stationary: no distance to cover.
	Stationary Regime = iota
	// North: along a meridian, bearing 0°.
	North
	// South: along a meridian, bearing 180°.
	South
	// Parallel: along a parallel of latitude, bearing 90° or 270°.
	Parallel
	// General: any other bearing, solved as a spherical triangle.
	General
)

func (r Regime) String() string {
	switch r {
	case Stationary:
		return "stationary"
	case North:
		return "north"
	case South:
		return "south"
	case Parallel:
		return "parallel"
	case General:
		return "general"
	}
	return "unknown"
}

// Classify picks the Travel regime for a distance in km and a bearing in
// degrees. The bearing is taken modulo 360.
func Classify(distance, bearing float64) Regime {
	bearing = wrap360(bearing)

	switch {
	case IsClose(distance, 0.0):
		return Stationary
	case IsClose(bearing, 0.0):
		return North
	case IsClose(bearing, 180.0):
		return South
	case IsClose(bearing, 90.0) || IsClose(bearing, 270.0):
		return Parallel
	}
	return General
}

// Bearing returns the initial bearing in [0, 360) of the great circle from
// src to dst.
func Bearing(src, dst GeoPoint) float64 {
	if dst.Lon == src.Lon {
		if dst.Lat >= src.Lat {
			return 0.0
		}
		return 180.0
	}

	Δλ := toRadians(dst.Lon - src.Lon)
	φ1 := toRadians(src.Lat)
	φ2 := toRadians(dst.Lat)

	θ := math.Atan2(
		math.Sin(Δλ),
		math.Cos(φ1)*math.Tan(φ2)-math.Sin(φ1)*math.Cos(Δλ),
	)

	return wrap360(toDegrees(θ))
}

// Distance returns the great circle distance in km between src and dst,
// using the spherical law of cosines.
func Distance(src, dst GeoPoint) float64 {
	Δλ := toRadians(dst.Lon - src.Lon)
	φ1 := toRadians(src.Lat)
	φ2 := toRadians(dst.Lat)

	δ := math.Acos(clamp(math.Sin(φ1)*math.Sin(φ2) + math.Cos(φ1)*math.Cos(φ2)*math.Cos(Δλ)))

	if δ < 0 {
		δ += π
	}

	return δ * R
}

// Travel returns the position reached from origin going distance km on the
// initial bearing bearing. The result latitude is within [-90, 90], the
// longitude within (-180, 180].
//
// A negative distance travels backwards. Non cardinal paths through a pole
// fail with a *DegenerateGeometryError.
func Travel(origin GeoPoint, distance, bearing float64) (GeoPoint, error) {
	d, b := distance, bearing
	if d < 0 {
		d, b = -d, b+180.0
	}
	b = wrap360(b)

	switch Classify(d, b) {
	case Stationary:
		return origin, nil
	case North:
		return travelMeridian(origin, d, true), nil
	case South:
		return travelMeridian(origin, d, false), nil
	case Parallel:
		return travelParallel(origin, d, IsClose(b, 270.0)), nil
	}

	pos, ok := travelGeneral(origin, d, b)
	if !ok {
		return GeoPoint{}, &DegenerateGeometryError{Origin: origin, Distance: distance, Bearing: bearing}
	}
	return pos, nil
}

// travelMeridian goes due north or south. Passing a pole continues down the
// opposite meridian.
func travelMeridian(origin GeoPoint, distance float64, north bool) GeoPoint {
	pos := origin
	δ := reduceTurns(toDegrees(KmToRadians(distance)))

	if north {
		if pos.Lat < 90.0 {
			pos.Lat = origin.Lat + δ

			if pos.Lat > 270.0 {
				pos.Lat -= 360.0
			} else if pos.Lat > 90.0 {
				pos.Lat = 180.0 - pos.Lat
				pos.Lon = flipMeridian(pos.Lon)
			}
		}
	} else {
		if pos.Lat > -90.0 {
			pos.Lat = origin.Lat - δ

			if pos.Lat < -270.0 {
				pos.Lat += 360.0
			} else if pos.Lat < -90.0 {
				pos.Lat = -180.0 - pos.Lat
				pos.Lon = flipMeridian(pos.Lon)
			}
		}
	}

	pos.Lon = wrap180(pos.Lon)
	return pos
}

// travelParallel goes due east, or due west, along the parallel of origin.
func travelParallel(origin GeoPoint, distance float64, west bool) GeoPoint {
	pos := GeoPoint{Lat: origin.Lat, Lon: wrap180(origin.Lon)}

	// All meridians meet at the poles: there is no east or west to go to.
	if IsClose(origin.Lat, 90.0) || IsClose(origin.Lat, -90.0) {
		return pos
	}

	δ := toDegrees(KmToRadians(distance))
	Δλ := δ / math.Cos(toRadians(origin.Lat))
	if west {
		Δλ = -Δλ
	}

	pos.Lon = wrap180(origin.Lon + Δλ)
	return pos
}

// travelGeneral solves the spherical triangle formed by the north pole,
// origin and destination. b and a are the colatitudes of origin and
// destination, C the longitude difference. ok is false when the triangle is
// degenerate.
func travelGeneral(origin GeoPoint, distance, bearing float64) (pos GeoPoint, ok bool) {
	b := toRadians(90.0 - origin.Lat)
	δ := KmToRadians(distance)

	a := math.Acos(clamp(math.Cos(b)*math.Cos(δ) + math.Sin(b)*math.Sin(δ)*math.Cos(toRadians(bearing))))

	q := math.Sin(a) * math.Sin(b)
	if IsClose(q, 0.0) {
		return origin, false
	}

	C := math.Acos(clamp((math.Cos(δ) - math.Cos(a)*math.Cos(b)) / q))

	lon := origin.Lon + toDegrees(C)
	if bearing > 180.0 {
		lon = origin.Lon - toDegrees(C)
	}

	return GeoPoint{Lat: 90.0 - toDegrees(a), Lon: wrap180(lon)}, true
}

// Spherical is the Navigator built on Bearing, Distance and Travel.
type Spherical struct{}

func (Spherical) DistanceTo(from, to GeoPoint) float64 {
	return Distance(from, to)
}

func (Spherical) BearingTo(from, to GeoPoint) float64 {
	return Bearing(from, to)
}

func (Spherical) DistanceAndBearingTo(from, to GeoPoint) (float64, float64) {
	return Distance(from, to), Bearing(from, to)
}

func (Spherical) Destination(from GeoPoint, bearing float64, distance float64) (GeoPoint, error) {
	return Travel(from, distance, bearing)
}

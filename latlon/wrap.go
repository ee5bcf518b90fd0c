package latlon

import "math"

// wrap reduces d by whole turns into [lo, lo+360). A result within Epsilon
// of lo+360 is snapped to lo.
func wrap(d, lo float64) float64 {
	r := math.Mod(d-lo, 360.0)
	if r < 0 {
		r += 360.0
	}
	if IsClose(r, 360.0) {
		r = 0
	}
	return lo + r
}

// wrap360 normalises a bearing into [0, 360).
func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 && !IsClose(d, 360.0) {
		return d
	}
	return wrap(d, 0)
}

// wrap180 normalises a longitude into (-180, 180]. -180 and anything within
// Epsilon of it becomes 180.
func wrap180(d float64) float64 {
	if -180.0 < d && d <= 180.0 && !IsClose(d, -180.0) {
		return d
	}
	d = wrap(d, -180.0)
	if IsClose(d, -180.0) {
		d = 180.0
	}
	return d
}

// reduceTurns takes whole turns off an arc longer than 360°, leaving it in
// (0, 360]. Shorter arcs are returned as is.
func reduceTurns(d float64) float64 {
	if d <= 360.0 {
		return d
	}
	d = wrap(d, 0)
	if IsClose(d, 0) {
		d = 360.0
	}
	return d
}

// flipMeridian moves a longitude onto the opposite meridian.
func flipMeridian(lon float64) float64 {
	if lon > 0.0 {
		return lon - 180.0
	}
	return lon + 180.0
}

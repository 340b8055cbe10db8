package geo

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Box is a lat/lon window. Bounds are inclusive.
type Box struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether the point lies inside the window.
func (b Box) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// slack widens the window so float error never drops a point sitting on the radius.
const slack = 1e-6

// BoundingBox returns a window containing every point within radiusKm of (lat, lon).
// The window spans all longitudes when it reaches a pole or crosses the antimeridian.
func BoundingBox(lat, lon, radiusKm float64) Box {
	if radiusKm < 0 {
		radiusKm = 0
	}
	angular := radiusKm / earthRadiusKm
	dLat := toDeg(angular) + slack

	box := Box{MinLat: lat - dLat, MaxLat: lat + dLat, MinLon: -180, MaxLon: 180}
	if box.MinLat <= -90 || box.MaxLat >= 90 || angular >= math.Pi/2 {
		box.MinLat = math.Max(box.MinLat, -90)
		box.MaxLat = math.Min(box.MaxLat, 90)
		return box
	}

	dLon := toDeg(math.Asin(math.Sin(angular)/math.Cos(toRad(lat)))) + slack
	if lon-dLon < -180 || lon+dLon > 180 {
		return box
	}
	box.MinLon = lon - dLon
	box.MaxLon = lon + dLon
	return box
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

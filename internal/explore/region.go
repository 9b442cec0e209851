package explore

// Region is the visible map rectangle, defined by a center coordinate and
// full extents on each axis, mirroring the mobile map's region type.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// Contains reports whether the point lies inside the closed rectangle
// [center ± delta/2] on both axes. Boundary points are in view.
//
// This is an axis-aligned box test, not geodesic distance. The target
// deployment covers a sub-country coastal region far from the poles and the
// antimeridian, where the simplification holds; no wraparound handling.
func (r Region) Contains(lat, lng float64) bool {
	halfLat := r.LatitudeDelta / 2
	halfLng := r.LongitudeDelta / 2
	return lat >= r.Latitude-halfLat && lat <= r.Latitude+halfLat &&
		lng >= r.Longitude-halfLng && lng <= r.Longitude+halfLng
}

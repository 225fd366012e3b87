// Package aisgeo composes decoded AIS longitude/latitude fields into
// github.com/golang/geo values for callers that want to do geodesy
// (distance, bearing, region containment) on a decoded position instead
// of handling two raw floats.
package aisgeo

import (
	"github.com/golang/geo/s2"

	"github.com/aldas/go-ais-decoder"
)

// LatLngOf decodes longitude and latitude for the payload's resolved
// message class and combines them into a s2.LatLng. Longitude is checked
// first: if it is not a plain success, that status is returned and the
// LatLng must not be consulted; otherwise latitude's status is returned.
func LatLngOf(p ais.Payload, class ais.Class) (s2.LatLng, ais.StatusCode) {
	lng := ais.DecodeLongitude(p, class)
	if lng.Status != ais.StatusSuccess {
		return s2.LatLng{}, lng.Status
	}
	lat := ais.DecodeLatitude(p, class)
	if lat.Status != ais.StatusSuccess {
		return s2.LatLng{}, lat.Status
	}
	return s2.LatLngFromDegrees(lat.Value, lng.Value), ais.StatusSuccess
}

package kernel

import (
	"errors"
	"math"
	"strconv"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// UnknownLocation is shown wherever no position or location name has been recorded yet.
const UnknownLocation = "Unknown"

var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint constructor")

// GeoPoint is a WGS84 latitude/longitude pair.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates against their WGS84 ranges.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// NewReportedGeoPoint keeps a position as a vehicle or trip reported it. Coordinates are
// not range checked; only NaN and infinite values are rejected.
func NewReportedGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	var err error
	if !isFinite(latitude) {
		err = errors.Join(err, errs.NewValueIsInvalidError("latitude"))
	}
	if !isFinite(longitude) {
		err = errors.Join(err, errs.NewValueIsInvalidError("longitude"))
	}
	if err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String renders the point as "lat, lon" with the shortest exact decimal form of each value.
func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(p.longitude, 'f', -1, 64)
}

func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	p.longitude = longitude
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

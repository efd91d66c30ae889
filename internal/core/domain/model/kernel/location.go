package kernel

import (
	"errors"
	"fmt"
	"math"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/twpayne/go-geom"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// SRID is the spatial reference of every Location (WGS84).
	SRID = 4326
)

// ErrLocationIsNotConstructed is returned when using a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a driver position on the globe. It is an immutable value object
// over a go-geom XY point where X is the longitude and Y the latitude.
//
// Example:
//
//	loc, err := kernel.NewLocation(51.5072, -0.1276)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates the coordinates and builds a Location.
// Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

// Point returns a fresh go-geom point in SRID 4326 for encoders (GeoJSON, WKB).
func (l Location) Point() *geom.Point {
	return geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{l.longitude, l.latitude}).SetSRID(SRID)
}

// IsEqual compares coordinates; both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	l.longitude = longitude
	return nil
}

// Package kernel provides the value objects shared by every aggregate of the
// laundry domain.
//
// The package includes:
//   - UUID: an identifier value object with validation and comparison
//   - Location: a validated WGS84 latitude/longitude point backed by go-geom
//
// Zero values of both types are invalid; use the constructors.
package kernel

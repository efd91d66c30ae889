// Package driver provides the Driver aggregate: a pickup/delivery driver profile,
// optionally linked to the principal that operates it, with its last known
// location and availability.
//
// Key business rules:
//   - name is required; phone and location are optional
//   - new drivers are available and have no location
//   - location updates are partial and always refresh the last update timestamp
//   - a non-staff principal owns at most one profile (checked by the create command)
package driver

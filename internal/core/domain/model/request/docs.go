// Package request provides the laundry Request aggregate and the status state
// machine that governs its lifecycle.
//
// The package includes:
//   - Request: the aggregate root owning customer, driver, descriptive fields and timestamps
//   - Status: the lifecycle states and the transition table between them
//   - ReassignMode: the policy deciding from which statuses a driver may be (re)assigned
//
// Key business rules:
//   - A new request is pending and has no driver
//   - assigned, picked_up and in_progress always carry a driver
//   - Status updates follow assigned -> picked_up -> in_progress -> completed, with
//     assigned -> cancelled as the only exit; completed and cancelled are terminal
//   - pending is left only through assignment, never through a status update
package request

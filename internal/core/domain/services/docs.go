// Package services provides domain services that span several aggregates of the
// laundry system.
//
// The package includes:
//   - NotificationComposer: decides, for each lifecycle event, which messages go out,
//     to whom, with which email template and which plain-text in-app synopsis
//
// The composer is pure: recipients are resolved by the caller and passed in as an
// Audience, and nothing is sent or stored here.
package services

// Package notification provides the in-app Notification aggregate created as a
// side effect of request and user lifecycle events.
//
// Key business rules:
//   - the recipient email is always present; the owning principal is optional
//   - title and body are stored as plain text, never as markup
//   - a notification is visible to its owning principal and to any principal
//     whose email matches the recipient email case-insensitively
//   - mark-read is the only mutation apart from sanitizing legacy rows
package notification

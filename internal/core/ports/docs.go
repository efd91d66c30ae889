// Package ports defines the contracts between the laundry core and its
// infrastructure: repositories and the unit of work for persistence, the
// principal directory backed by the external auth system, and the email
// transport and template renderer used by the notifier.
package ports

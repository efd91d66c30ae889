// Package errs provides the error taxonomy shared by the laundry core.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The families map onto caller-visible outcomes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: a referenced request, driver or notification does not exist
//   - ForbiddenError: the actor lacks the capability for a mutation
//   - ConflictError: a uniqueness rule was violated (e.g., a second driver profile)
//   - InvalidTransitionError: a status change that the lifecycle does not permit
//
// All of them describe an operation that simply did not apply; none is fatal.
package errs

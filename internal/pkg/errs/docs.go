// Package errs provides the typed errors shared by the order service.
// Every layer reports failures through these types so that the HTTP adapter can
// classify them with errors.Is instead of matching on messages.
//
// The package includes:
//   - ObjectNotFoundError: an entity is absent, or not visible to the caller
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - StateIsInvalidError: the operation is not legal for the entity's current state
//   - ReferenceIsInvalidError: input points at something that does not belong to the target
//   - ObjectAlreadyExistsError: a uniqueness rule would be violated
//   - CredentialsAreInvalidError: login failed
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) returned by Unwrap
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
package errs

// Package errors provides structured error handling for hero-api.
//
// Errors carry a Code, a message, optional metadata, and an optional
// wrapped cause. The codes map onto the failure taxonomy of character
// generation:
//
//   - CodeInvalidArgument — malformed caller input, e.g. a bad identity key
//   - CodeCorruptData — corrupt reference data (missing weight tables,
//     dangling catalog references); always a hard failure
//   - CodeFailedPrecondition — an equipment choice group left unresolved
//     at finalization
//   - CodeNotFound / CodeAlreadyExists / CodeUnavailable — repository edges
//
// Creating errors:
//
//	err := errors.InvalidArgument("identity key must be 64 hex characters")
//	err := errors.CorruptDataf("race %q has no class weight table", race)
//
// Wrapping:
//
//	if err := repo.Get(ctx, key); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // generate instead of load
//	}
//
// Inventory overflow is deliberately NOT an error code: placement never
// fails, and unplaced stacks are reported as data in the output.
package errors

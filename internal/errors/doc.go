// Package errors provides the structured error type used across the spellbook module.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_name", name)
//
// Wrapping keeps the code of the wrapped error and joins the messages:
//
//	if err := store.Get(ctx, key); err != nil {
//	    return errors.Wrap(err, "failed to load character list")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // fall back to defaults
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("characterName", name, vb)
//	errors.ValidateRange("level", level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Store layer:
//   - Return NotFound for absent keys, Unavailable for backend failures
//
// Repository layer:
//   - Never surface malformed persisted JSON; log it and return an empty value
//   - Wrap store errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Out-of-range numeric edits are clamped, not rejected
//
// CLI:
//   - Print the error chain and exit with GetCode(err).ExitCode()
package errors

// Package chain provides a fluent wrapper around rop.Result[T] for writing
// synchronous read -> parse -> solve flows without branching on every step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Validate: fail the chain when the current value does not pass a check
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain

// Package solo contains single-value, synchronous primitives over
// rop.Result[T]. The puzzle runner and the channel packages build on them.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate: fail a result whose value does not pass a check
// - Switch/Map: move a successful value to a new Result[Out]
// - Try: call a func (Out, error); context errors become cancellations
// - Tee: side effects on success only
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo

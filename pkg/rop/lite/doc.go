// Package lite provides lightweight channel-lifted stages for simple
// fan-out/fan-in flows. The batch answer checker uses it to solve several
// puzzles side by side.
//
// Common usage:
// - Turnout: run an engine over an input channel with a fixed number of lines
// - Try: lift solo.Try over channels
// - Finally: map Result[In] to Out on completion
package lite

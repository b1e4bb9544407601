// Package mass lifts solo primitives onto channels. Each stage call returns a
// channel that yields at most one result and closes; lite composes these into
// multi-worker stages.
package mass

// Package core contains pipeline plumbing: channel helpers, worker
// configuration carried on the context and the locomotive that drives one
// stage worker. Packages mass and lite build their stages on top of it.
package core

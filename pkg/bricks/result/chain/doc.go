// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface small:
// - Start/FromValue/FromError: create a Chain
// - Then/Map/Validate: compose steps that keep the value type
// - RepeatUntil/While: repeat a step on the current value
// - Switch/MapTo: move to a new value type
// - Or/And: combine chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on an error: the step is not invoked and the
// error is carried forward unchanged.
package chain

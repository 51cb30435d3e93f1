// Package result contains Result[T, E], a value that is either a success
// payload of type T or an error payload of type E, never both.
//
// Highlights:
// - Ok/Err: construct a Result (the markers also disambiguate T == E)
// - FromTryOr/FromTryOrDefault/FromTryOrElse/FromTry: turn a panicking call into a Result
// - FromPair/Try: adapt the (T, error) convention
// - Unwrap/Expect/UnwrapError/ExpectError: access a payload, panicking with *BadAccessError
// - Get/GetError: access a payload without panicking
// - UnwrapOr/UnwrapOrDefault/UnwrapOrElse: access the value with a fallback
// - Map/MapError/MapOr/MapOrElse: transform payloads
// - AndInstead/AndThen/OrInstead/OrElse: chain fallible operations
// - Inspect/InspectError/Match: side effects and reduction to a plain value
// - Equal/EqualFunc/Hash: value semantics
package result

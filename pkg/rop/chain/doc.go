// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous chains using solo primitives.
//
// It composes functions like Switch, Map, TryCatchWith, Tee and Finally
// behind a Chain[T, E] type that also carries the context handed to every
// step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - Try: call a function (U, error) and convert errors and panics to failure
// - Map/MapErr: transform the success or the error slot
// - Ensure: run side effects on success without changing the result
// - CatchAll/CatchAllBrands: recover every error, leaving a Chain[T, Never]
// - Finally: collapse the chain into a final value via handlers
//
// Methods keep the chain's types; the free functions change them.
package chain

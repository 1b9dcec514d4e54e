// Package solo contains the direct form of the Result combinators: each
// function takes the Result first and returns a new one. Nothing here panics
// for a modeled failure; the error stays in the error slot.
//
// Highlights:
// - Map/MapErr: transform the success or the error slot
// - CatchAllErr/CatchAllBrands: recover every error into a success
// - Switch: move from Result[In, E] to Result[Out, E]
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error handlers
// - TryCatch/TryCatchWith: run a function (T, error) that may also panic
// - ResultableFn: accept functions that return raw formal errors
//
// The curried form of every combinator lives in package lite.
package solo

// Package lite provides the curried form of the solo combinators. Each
// function takes the handler and returns a stage, a function of the Result,
// so stages can be built once and applied later or composed with Pipe.
//
// Common usage:
// - Map/MapErr/Switch/Tee: build a stage from a handler
// - CatchAllErr/CatchAllBrands: build a recovering stage
// - Finally: build a reducer to a concrete value
// - Pipe: apply same-typed stages in order
//
// A stage built here returns exactly what the matching solo function returns
// for the same input and handler.
package lite

// Package types defines the shared data model and typed errors for reading
// .epc game-asset containers.
//
// The container format is undocumented. Everything above this package works
// from heuristics: printable string runs, little-endian offset matches, and
// neighbor-offset inference for resource extents. The types here describe the
// results of those heuristics, not an authoritative schema.
//
// Design goals:
//   - Offsets are plain uint32 values into an immutable byte buffer.
//   - Derived tables are rebuilt wholesale per load; nothing is merged.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (file-read/out-of-bounds/invalid-size/...).
//
// This package has no dependencies beyond the standard library.
package types

// Package goPerm provides a single-word bit-flag permission store: one
// mutable uint64 bitmask per Store, with flag identifiers mapped onto bit
// positions by modulus against a configurable flag space.
//
// Flag identifiers may be any integer kind, a decimal numeric string, or a
// *big.Int. Identifiers are reduced modulo the flag space using
// arbitrary-precision arithmetic, so values wider than 64 bits still resolve
// deterministically. Two identifiers congruent modulo the flag space address
// the same bit; that collision is a documented property of the mapping, not
// a defect.
//
// # Architecture boundaries
//
// goPerm is the public surface. It exposes [Store], [Builder], [Config],
// [Registry], the audit sinks, and the state codec. The jwt subpackage mints
// signed grant tokens from encoded store state and never imports goPerm.
//
// # What this package must NOT do
//
//   - Persist state, open sockets, or touch files. Callers own persistence;
//     EncodeState exists so they can.
//   - Enforce access control. HasPermission reports bits; policy is the
//     caller's problem.
//   - Lock. Store mutators are plain read-modify-write on one word; callers
//     running concurrent writers must provide their own mutual exclusion.
package goPerm

// Package jwt mints and verifies signed grant tokens that carry an encoded
// permission-store state, so callers can ship a bitmask across service
// boundaries without this module persisting anything.
package jwt

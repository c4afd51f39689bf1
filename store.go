package goPerm

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultFlagSpace is the flag space used when the caller does not choose one.
const DefaultFlagSpace = 10

// Store defines a public type used by goPerm APIs.
//
// A Store owns one uint64 bitmask and a flag space that bounds how many
// distinct bit positions flag identifiers can address. Construct a bare
// Store with [NewStore], or a fully wired one (registry, audit, metrics)
// through [Builder.Build].
//
// Store performs no internal locking. Every mutator is a read-modify-write
// on the mask word, so concurrent writers need caller-side mutual exclusion.
type Store struct {
	bitMask   uint64
	flagSpace uint64

	registry   *Registry
	metrics    *Metrics
	dispatcher *auditDispatcher
}

// NewStore creates a Store with the given flag space. A flagSpace of 0
// selects [DefaultFlagSpace]. Construction never fails; out-of-range
// requests are clamped, not rejected (see [Builder.WithFlagSpaceBig]).
func NewStore(flagSpace uint64) *Store {
	if flagSpace == 0 {
		flagSpace = DefaultFlagSpace
	}
	return &Store{flagSpace: flagSpace}
}

// HasPermission returns the bitwise AND of the current mask with the OR
// combination of the requested flags' bits. The result is nonzero iff at
// least one requested flag is currently set. Identifiers that resolve to no
// bit (non-numeric, or index beyond the mask word) contribute nothing.
func (s *Store) HasPermission(flags ...any) uint64 {
	s.metrics.Inc(MetricQuery)

	var query uint64
	for _, flag := range flags {
		query |= s.flagBit(flag)
	}
	return s.bitMask & query
}

// GetPermissions returns the configured flag space, not the current bitmask.
// The name is a trap for new callers, but existing consumers depend on the
// capacity being reported here; read the mask through [Store.Raw].
//
// TODO: rename to FlagSpace in v2 and free this name for the mask.
func (s *Store) GetPermissions() uint64 {
	return s.flagSpace
}

// SetPermission sets the bit addressed by flag and returns the Store for
// chaining. Setting an already-set bit is a no-op (idempotent).
func (s *Store) SetPermission(flag any) *Store {
	bit := s.flagBit(flag)
	s.bitMask |= bit
	s.metrics.Inc(MetricSet)
	s.emit(opSet, flag, bit)
	return s
}

// SetPermissions applies [Store.SetPermission] to each flag in sequence
// order and returns the Store.
func (s *Store) SetPermissions(flags []any) *Store {
	for _, flag := range flags {
		s.SetPermission(flag)
	}
	return s
}

// UnsetPermission clears the bit addressed by flag and returns the Store.
// Clearing an already-clear bit is a no-op.
func (s *Store) UnsetPermission(flag any) *Store {
	bit := s.flagBit(flag)
	s.bitMask &^= bit
	s.metrics.Inc(MetricUnset)
	s.emit(opUnset, flag, bit)
	return s
}

// UnsetPermissions applies [Store.UnsetPermission] to each flag in sequence
// order and returns the Store.
func (s *Store) UnsetPermissions(flags []any) *Store {
	for _, flag := range flags {
		s.UnsetPermission(flag)
	}
	return s
}

// Raw returns the current bitmask word. Callers serialize this (or the full
// state via [EncodeState]) when they need persistence.
func (s *Store) Raw() uint64 {
	return s.bitMask
}

// FlagSpace returns the modulus base used for flag-to-bit mapping.
func (s *Store) FlagSpace() uint64 {
	return s.flagSpace
}

/*
====================================
NAMED FLAGS
====================================
*/

// Grant sets the permission registered under name. Unknown names address no
// bit and leave the mask unchanged.
func (s *Store) Grant(name string) *Store {
	if id, ok := s.namedFlag(name); ok {
		return s.SetPermission(id)
	}
	return s
}

// Revoke clears the permission registered under name.
func (s *Store) Revoke(name string) *Store {
	if id, ok := s.namedFlag(name); ok {
		return s.UnsetPermission(id)
	}
	return s
}

// Allowed reports whether any of the named permissions is set. Unknown
// names contribute nothing to the check.
func (s *Store) Allowed(names ...string) bool {
	flags := make([]any, 0, len(names))
	for _, name := range names {
		if id, ok := s.namedFlag(name); ok {
			flags = append(flags, id)
		}
	}
	if len(flags) == 0 {
		return false
	}
	return s.HasPermission(flags...) != 0
}

func (s *Store) namedFlag(name string) (uint64, bool) {
	if s.registry == nil {
		return 0, false
	}
	id, ok := s.registry.Identifier(name)
	if !ok {
		s.metrics.Inc(MetricNamedMiss)
	}
	return id, ok
}

/*
====================================
OBSERVABILITY
====================================
*/

// Metrics returns the operation counters, or nil when metrics are disabled.
func (s *Store) Metrics() *Metrics {
	return s.metrics
}

// Registry returns the name registry wired at build time, or nil.
func (s *Store) Registry() *Registry {
	return s.registry
}

// AuditDropped returns how many audit events were discarded because the
// dispatch buffer was full.
func (s *Store) AuditDropped() uint64 {
	return s.dispatcher.Dropped()
}

// Close flushes and stops the audit dispatcher. Safe to call on stores built
// without audit, and safe to call more than once.
func (s *Store) Close() {
	s.dispatcher.Close()
}

/*
====================================
INTERNAL
====================================
*/

// flagBit resolves a flag identifier to its mask bit. Identifiers that are
// non-numeric, or whose index lands beyond the mask word (possible when the
// flag space exceeds 64), yield 0: no bit is ever set past the word width.
func (s *Store) flagBit(flag any) uint64 {
	idx, ok := resolveIndex(flag, s.flagSpace)
	if !ok || idx >= maskWidth {
		s.metrics.Inc(MetricUnresolved)
		return 0
	}
	return 1 << idx
}

func (s *Store) emit(op string, flag any, bit uint64) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Emit(context.Background(), AuditEvent{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Op:        op,
		Flag:      flagLabel(flag),
		Resolved:  bit != 0,
		Mask:      s.bitMask,
	})
}

const (
	opSet   = "set"
	opUnset = "unset"
)

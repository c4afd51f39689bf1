package goPerm

import "math/big"

// Builder defines a public type used by goPerm APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	permissions []string
	auditSink   AuditSink

	built bool
}

// New creates a Builder carrying the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithFlagSpace sets the modulus base for flag-to-bit mapping. 0 selects
// [DefaultFlagSpace].
func (b *Builder) WithFlagSpace(n uint64) *Builder {
	b.config.FlagSpace = n
	return b
}

// WithFlagSpaceBig sets the flag space from an arbitrary-precision value.
// Values above the maximum uint64 are silently clamped to it; negative or
// nil values select [DefaultFlagSpace]. Clamping is not an error.
func (b *Builder) WithFlagSpaceBig(n *big.Int) *Builder {
	switch {
	case n == nil || n.Sign() <= 0:
		b.config.FlagSpace = DefaultFlagSpace
	case n.IsUint64():
		b.config.FlagSpace = n.Uint64()
	default:
		b.config.FlagSpace = ^uint64(0)
	}
	return b
}

// WithPermissions pre-registers named permissions. Identifiers are assigned
// in slice order by the registry during Build.
func (b *Builder) WithPermissions(names []string) *Builder {
	b.permissions = names
	return b
}

// WithAuditSink sets the sink that receives mutation events. Audit stays
// off unless the config enables it.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithAuditEnabled toggles audit dispatch.
func (b *Builder) WithAuditEnabled(enabled bool) *Builder {
	b.config.Audit.Enabled = enabled
	return b
}

// WithMetricsEnabled toggles operation counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build assembles the Store. A Builder is single-use; a second Build returns
// [ErrBuilderReused]. Registration failures (duplicate names, flag space
// exhausted) surface here rather than at first use.
func (b *Builder) Build() (*Store, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true

	store := NewStore(b.config.FlagSpace)

	if len(b.permissions) > 0 {
		registry := NewRegistry(store.flagSpace)
		for _, name := range b.permissions {
			if _, err := registry.Register(name); err != nil {
				return nil, err
			}
		}
		registry.Freeze()
		store.registry = registry
	}

	if b.config.Metrics.Enabled {
		store.metrics = NewMetrics(b.config.Metrics)
	}

	store.dispatcher = newAuditDispatcher(b.config.Audit, b.auditSink)

	return store, nil
}

package goPerm

import "sync"

// Registry maps permission names to numeric flag identifiers within one flag
// space. Identifiers are assigned sequentially by [Registry.Register] and are
// stable for the lifetime of the process.
//
// Registration happens during initialization; call [Registry.Freeze] before
// handing the registry to concurrent readers.
type Registry struct {
	flagSpace uint64

	mu       sync.RWMutex
	nameToID map[string]uint64
	idToName map[uint64]string
	frozen   bool
}

// NewRegistry creates a registry whose identifiers stay within flagSpace.
// A flagSpace of 0 selects [DefaultFlagSpace].
func NewRegistry(flagSpace uint64) *Registry {
	if flagSpace == 0 {
		flagSpace = DefaultFlagSpace
	}
	return &Registry{
		flagSpace: flagSpace,
		nameToID:  make(map[string]uint64),
		idToName:  make(map[uint64]string),
	}
}

// Register assigns the next available flag identifier to the named
// permission and returns it. Must be called before [Registry.Freeze].
func (r *Registry) Register(name string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, ErrRegistryFrozen
	}
	if name == "" {
		return 0, ErrNameEmpty
	}
	if _, exists := r.nameToID[name]; exists {
		return 0, ErrNameExists
	}

	next := uint64(len(r.nameToID))
	if next >= r.flagSpace || next >= maskWidth {
		return 0, ErrRegistryFull
	}

	r.nameToID[name] = next
	r.idToName[next] = name
	return next, nil
}

// Identifier returns the flag identifier for the named permission, or false
// if not registered.
func (r *Registry) Identifier(name string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.nameToID[name]
	return id, ok
}

// Name returns the permission name for the given identifier, or false if
// unassigned.
func (r *Registry) Name(id uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.idToName[id]
	return name, ok
}

// Freeze prevents further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Count returns the number of registered permissions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nameToID)
}

// FlagSpace returns the flag space this registry assigns identifiers within.
func (r *Registry) FlagSpace() uint64 {
	return r.flagSpace
}

package goPerm

import "errors"

var (
	// ErrRegistryFrozen is an exported constant or variable used by the permission store.
	ErrRegistryFrozen = errors.New("registry frozen")
	// ErrNameEmpty is an exported constant or variable used by the permission store.
	ErrNameEmpty = errors.New("permission name cannot be empty")
	// ErrNameExists is an exported constant or variable used by the permission store.
	ErrNameExists = errors.New("permission already registered")
	// ErrRegistryFull is an exported constant or variable used by the permission store.
	ErrRegistryFull = errors.New("permission limit exceeded for flag space")
	// ErrInvalidStateSize is an exported constant or variable used by the permission store.
	ErrInvalidStateSize = errors.New("invalid encoded state size")
	// ErrBuilderReused is an exported constant or variable used by the permission store.
	ErrBuilderReused = errors.New("builder already used")
)

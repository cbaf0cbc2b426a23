package profile

import "errors"

var (
	// ErrInvalidProfile indicates a profile that cannot be decoded.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrUnknownSet indicates a reference to a set that is neither defined in
	// the profile nor built in.
	ErrUnknownSet = errors.New("unknown set")

	// ErrCycle indicates set definitions that reference each other.
	ErrCycle = errors.New("set reference cycle")
)

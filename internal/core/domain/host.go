package domain

// HostTarget is an opaque identifier for the build/host platform
// combination. Its value is never interpreted by the helper itself;
// toolchain paths are resolved for it through a PathResolver.
type HostTarget struct {
	id InternedString
}

// NewHostTarget creates a HostTarget from its external identifier.
func NewHostTarget(s string) HostTarget {
	return HostTarget{id: NewInternedString(s)}
}

// String returns the external identifier.
func (h HostTarget) String() string {
	return h.id.String()
}

package domain

// Product is a node in the session dependency graph.
type Product struct {
	// Name identifies the product towards the orchestrator and swiftpm.
	Name InternedString

	// Dependencies lists upstream products that must come first.
	Dependencies []InternedString

	// External marks products that are provided by the installed
	// toolchain rather than built in this session. They participate in
	// ordering only.
	External bool
}

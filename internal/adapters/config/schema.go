package config

// SessionFile represents the structure of the swift-build.yaml session file.
type SessionFile struct {
	Version     string                  `yaml:"version"`
	HostTarget  string                  `yaml:"hostTarget"`
	PackageRoot string                  `yaml:"packageRoot"`
	BuildRoot   string                  `yaml:"buildRoot"`
	Release     bool                    `yaml:"release"`
	Verbose     bool                    `yaml:"verbose"`
	Jobs        int                     `yaml:"jobs"`
	Toolchains  map[string]ToolchainDTO `yaml:"toolchains"`
	Test        []string                `yaml:"test"`
	Install     []string                `yaml:"install"`
}

// ToolchainDTO represents the toolchain roots for one host target.
type ToolchainDTO struct {
	Native  string `yaml:"native"`
	Install string `yaml:"install"`
}

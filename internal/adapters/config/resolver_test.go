package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftbuild/helper/internal/adapters/config"
	"github.com/swiftbuild/helper/internal/core/domain"
)

func TestResolver_Lookup(t *testing.T) {
	sess := &domain.Session{
		Toolchains: map[string]domain.ToolchainPaths{
			"linux-x86_64": {
				Native:  "/opt/toolchain",
				Install: "/opt/install-toolchain",
			},
			"macosx-arm64": {
				Native: "/opt/toolchain",
			},
		},
	}
	resolver := config.NewResolver(sess)

	t.Run("native", func(t *testing.T) {
		got, err := resolver.NativeToolchainPath(domain.NewHostTarget("linux-x86_64"))
		require.NoError(t, err)
		assert.Equal(t, "/opt/toolchain", got)
	})

	t.Run("install", func(t *testing.T) {
		got, err := resolver.InstallToolchainPath(domain.NewHostTarget("linux-x86_64"))
		require.NoError(t, err)
		assert.Equal(t, "/opt/install-toolchain", got)
	})

	t.Run("install falls back to native", func(t *testing.T) {
		got, err := resolver.InstallToolchainPath(domain.NewHostTarget("macosx-arm64"))
		require.NoError(t, err)
		assert.Equal(t, "/opt/toolchain", got)
	})

	t.Run("unknown host target", func(t *testing.T) {
		_, err := resolver.NativeToolchainPath(domain.NewHostTarget("windows-x86_64"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownHostTarget)

		_, err = resolver.InstallToolchainPath(domain.NewHostTarget("windows-x86_64"))
		assert.ErrorIs(t, err, domain.ErrUnknownHostTarget)
	})
}

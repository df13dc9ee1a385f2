package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlgorithmNames ensures the registry listing is sorted and names
// both registered implementations.
func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, []string{"manacher", "naive"}, algorithmNames())
}

// TestRun_UnknownAlgorithm confirms selection of an unregistered name
// fails, which main turns into exit code 1.
func TestRun_UnknownAlgorithm(t *testing.T) {
	err := run(rootCmd, []string{"quadratic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `algorithm "quadratic" not found`)
	assert.Contains(t, err.Error(), "manacher, naive", "error must list the registry")
}

// TestRegistry_AgreesOnSmallInput sanity-checks that every registered
// implementation produces the same answer on a known input.
func TestRegistry_AgreesOnSmallInput(t *testing.T) {
	for name, algo := range algorithms {
		got, err := algo("cbbd")
		require.NoError(t, err, "algorithm %s", name)
		assert.Equal(t, "bb", got, "algorithm %s", name)
	}
}

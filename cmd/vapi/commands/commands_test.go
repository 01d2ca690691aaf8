//nolint:testpackage // Need access to internal constructors
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIndexesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewIndexesCommand()
	assert.Equal(t, "indexes", cmd.Use)
	assert.Contains(t, cmd.Aliases, "idx")
	assert.Len(t, cmd.Commands(), 6)
}

func TestNewIndexesCreateCommand(t *testing.T) {
	t.Parallel()

	cmd := newIndexesCreateCommand()
	assert.Equal(t, "create INDEX_NAME", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// Check flags
	assert.NotNil(t, cmd.Flags().Lookup("dimension"))
	assert.NotNil(t, cmd.Flags().Lookup("metric"))
	assert.NotNil(t, cmd.Flags().Lookup("cloud"))
	assert.NotNil(t, cmd.Flags().Lookup("region"))
	assert.NotNil(t, cmd.Flags().Lookup("deletion-protection"))
}

func TestNewVectorsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewVectorsCommand()
	assert.Equal(t, "vectors", cmd.Use)
	assert.Len(t, cmd.Commands(), 7)
}

func TestNewVectorsQueryCommand(t *testing.T) {
	t.Parallel()

	cmd := newVectorsQueryCommand()
	assert.Equal(t, "query INDEX_NAME", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// Check flags
	assert.NotNil(t, cmd.Flags().Lookup("values"))
	assert.NotNil(t, cmd.Flags().Lookup("id"))
	assert.NotNil(t, cmd.Flags().Lookup("top-k"))
	assert.NotNil(t, cmd.Flags().Lookup("filter"))
	assert.NotNil(t, cmd.Flags().Lookup("include-values"))
	assert.NotNil(t, cmd.Flags().Lookup("include-metadata"))
}

func TestNewBackupsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewBackupsCommand()
	assert.Equal(t, "backups", cmd.Use)
	assert.Len(t, cmd.Commands(), 4)
}

func TestNewRestoresCommand(t *testing.T) {
	t.Parallel()

	cmd := NewRestoresCommand()
	assert.Equal(t, "restores", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestNewImportsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewImportsCommand()
	assert.Equal(t, "imports", cmd.Use)
	assert.Len(t, cmd.Commands(), 4)
}

func TestNewImportsStartCommand(t *testing.T) {
	t.Parallel()

	cmd := newImportsStartCommand()
	assert.Equal(t, "start INDEX_NAME", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("uri"))
	assert.NotNil(t, cmd.Flags().Lookup("on-error"))
}

func TestNewNamespacesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewNamespacesCommand()
	assert.Equal(t, "namespaces", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestNewInferenceCommand(t *testing.T) {
	t.Parallel()

	cmd := NewInferenceCommand()
	assert.Equal(t, "inference", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Len(t, cmd.Commands(), 4)
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCommand("1.0.0", "abc123", "2026-08-30")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

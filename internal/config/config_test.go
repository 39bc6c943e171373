package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/arcalinux/documentos", cfg.OutputPath)
	assert.Equal(t, 10, cfg.QRBoxSize)
	assert.Equal(t, 5, cfg.QRBorder)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("OUTPUT_PATH", "/srv/docs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "/srv/docs", cfg.OutputPath)
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Banco Exemplo", "0001")

	assert.Equal(t, "Banco Exemplo", cfg.Bank.Name)
	assert.Equal(t, "0001", cfg.Bank.Branch)
	assert.Equal(t, "standard", cfg.Bank.DefaultTier)
	assert.Equal(t, 60, cfg.Scheduler.IntervalMinutes)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)

	cfg := Default("Banco Exemplo", "0001")
	cfg.Scheduler.ListenAddr = ":9999"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  address: "127.0.0.1"
  port: 9090
  mode: "release"
zoho:
  client_id: "cid"
  client_secret: "csecret"
  redirect_uri: "http://localhost:9090/callback"
  scope: "profile"
  default_dc: "in"
session:
  secret: "s"
  encrypt_key: "e"
database:
  path: "data/audit.db"
log:
  level: "warn"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Address)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "cid", cfg.Zoho.ClientID)
	assert.Equal(t, "in", cfg.Zoho.DefaultDC)
	assert.Equal(t, "warn", cfg.Log.Level)

	// Load is once-only; Get returns the same instance afterwards
	assert.Same(t, cfg, Get())
}

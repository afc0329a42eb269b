package providers

import (
	"clarity/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
webServer:
  host: 127.0.0.1
  port: 8090
persistence:
  filePath: /tmp/clarity.snapshot
logger:
  level: info
  mode: 420
  dir: /tmp
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_Defaults(t *testing.T) {
	path := writeConfig(t, minimalYAML)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "ClarityLedger", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 8090, conf.WebServer.Port)
	assert.Equal(t, "file", conf.Persistence.Driver)
	assert.Equal(t, int64(0), conf.Ledger.FeeBps)
	assert.Equal(t, int64(500), conf.Ledger.MinFlagStake)
	assert.Equal(t, 720*time.Hour, conf.Ledger.SubscriptionTTL)
	assert.Equal(t, 60*time.Second, conf.Ledger.KeeperInterval)
	assert.Equal(t, int64(100), conf.Ledger.InitialReputation)
	assert.Equal(t, int64(10), conf.Ledger.PublishReward)
	assert.Equal(t, "clarity:ledger", conf.Persistence.Redis.Key)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, minimalYAML)
	t.Setenv("CLARITY_FEE_BPS", "250")
	t.Setenv("CLARITY_KEEPER_INTERVAL", "5s")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, int64(250), conf.Ledger.FeeBps)
	assert.Equal(t, 5*time.Second, conf.Ledger.KeeperInterval)
}

func TestNewConfigProvider_DotEnvNextToConfig(t *testing.T) {
	path := writeConfig(t, minimalYAML)
	envPath := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CLARITY_MIN_FLAG_STAKE=900\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("CLARITY_MIN_FLAG_STAKE") })

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, int64(900), conf.Ledger.MinFlagStake)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "webServer:\n  host: \"\"\n  port: 0\n")
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_ShippedConfig(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join("..", "..", "config", "config.yaml")})
	require.NoError(t, err)

	assert.Equal(t, 8090, conf.WebServer.Port)
	assert.Equal(t, "file", conf.Persistence.Driver)
	assert.Equal(t, "./data/ledger.snap", conf.Persistence.FilePath)
	assert.Equal(t, "./logs", conf.Logger.Dir)
	assert.Equal(t, 720*time.Hour, conf.Ledger.SubscriptionTTL)
}

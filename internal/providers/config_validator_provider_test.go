package providers

import (
	"clarity/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			Driver:       "file",
			FilePath:     "/tmp/clarity.snapshot",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Ledger: structures.LedgerConfig{
			FeeBps:            250,
			MinFlagStake:      500,
			SubscriptionTTL:   720 * time.Hour,
			KeeperInterval:    time.Minute,
			InitialReputation: 100,
			PublishReward:     10,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_FeeAboveHundredPercent(t *testing.T) {
	c := validConfig()
	c.Ledger.FeeBps = 10001
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_MissingKeeperInterval(t *testing.T) {
	c := validConfig()
	c.Ledger.KeeperInterval = 0
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Persistence.Driver = "postgres"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_FileDriverNeedsPath(t *testing.T) {
	c := validConfig()
	c.Persistence.FilePath = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_RedisDriverNeedsAddr(t *testing.T) {
	c := validConfig()
	c.Persistence.Driver = "redis"
	c.Persistence.FilePath = ""
	assert.Error(t, NewCnfValidator(c).Validate())

	c.Persistence.Redis.Addr = "localhost:6379"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_RelativePaths(t *testing.T) {
	c := validConfig()
	c.Persistence.FilePath = "./data/ledger.snap"
	c.Logger.Dir = "logs"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_BarePathRejected(t *testing.T) {
	c := validConfig()
	c.Logger.Dir = "."
	assert.Error(t, NewCnfValidator(c).Validate())
}

package providers

import (
	"clarity/internal/structures"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("persistence.driver", "file")
	v.SetDefault("persistence.saveInterval", "30s")
	v.SetDefault("persistence.redis.key", "clarity:ledger")
	v.SetDefault("ledger.feeBps", 0)
	v.SetDefault("ledger.minFlagStake", 500)
	v.SetDefault("ledger.subscriptionTTL", "720h")
	v.SetDefault("ledger.keeperInterval", "60s")
	v.SetDefault("ledger.initialReputation", 100)
	v.SetDefault("ledger.publishReward", 10)
	v.SetDefault("ledger.maxTags", 10)
	v.SetDefault("registry.latency", "0s")
	v.SetDefault("registry.zkLatency", "0s")
	v.SetDefault("cache.ttl", "60s")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	dir := filepath.Dir(flags.ConfigPath)
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setConfigDefaults(v)

	_ = v.BindEnv("logger.level", "CLARITY_LOG_LEVEL")
	_ = v.BindEnv("logger.dir", "CLARITY_LOG_DIR")
	_ = v.BindEnv("ledger.feeBps", "CLARITY_FEE_BPS")
	_ = v.BindEnv("ledger.minFlagStake", "CLARITY_MIN_FLAG_STAKE")
	_ = v.BindEnv("ledger.subscriptionTTL", "CLARITY_SUBSCRIPTION_TTL")
	_ = v.BindEnv("ledger.keeperInterval", "CLARITY_KEEPER_INTERVAL")
	_ = v.BindEnv("persistence.driver", "CLARITY_PERSISTENCE_DRIVER")
	_ = v.BindEnv("persistence.filePath", "CLARITY_PERSISTENCE_FILE")
	_ = v.BindEnv("persistence.saveInterval", "CLARITY_SAVE_INTERVAL")
	_ = v.BindEnv("persistence.redis.addr", "CLARITY_REDIS_ADDR")
	_ = v.BindEnv("persistence.redis.password", "CLARITY_REDIS_PASSWORD")
	_ = v.BindEnv("cache.enabled", "CLARITY_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "CLARITY_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "CLARITY_METRICS_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ClarityLedger"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

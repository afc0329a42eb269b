package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min:0"`
	Key      string `yaml:"key"`
}

type Persistence struct {
	Driver       string        `yaml:"driver" validate:"required|in:file,redis"`
	FilePath     string        `yaml:"filePath" validate:"localPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	Redis        RedisConfig   `yaml:"redis"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|localPath"`
}

type LedgerConfig struct {
	FeeBps            int64         `yaml:"feeBps" validate:"min:0|max:10000"`
	MinFlagStake      int64         `yaml:"minFlagStake" validate:"min:0"`
	SubscriptionTTL   time.Duration `yaml:"subscriptionTTL" validate:"required|min:1"`
	KeeperInterval    time.Duration `yaml:"keeperInterval" validate:"required|min:1"`
	InitialReputation int64         `yaml:"initialReputation" validate:"min:0"`
	PublishReward     int64         `yaml:"publishReward" validate:"min:0"`
	MaxTags           int           `yaml:"maxTags" validate:"min:0"`
}

type RegistryConfig struct {
	Latency   time.Duration `yaml:"latency" validate:"min:0"`
	ZkLatency time.Duration `yaml:"zkLatency" validate:"min:0"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Logger      LoggerConfig   `yaml:"logger"`
	Ledger      LedgerConfig   `yaml:"ledger"`
	Registry    RegistryConfig `yaml:"registry"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

package config

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Features FeaturesConfig `mapstructure:"features"`
	TextAPI  GeneratorConfig `mapstructure:"text_api"`
	ImageAPI GeneratorConfig `mapstructure:"image_api"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	MaxConns        int    `mapstructure:"max_conns"`
	ConnTimeoutSecs int    `mapstructure:"conn_timeout_secs"`
}

type FeaturesConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
	CacheSize   int    `mapstructure:"cache_size"`
	CacheTTLSec int    `mapstructure:"cache_ttl_sec"`
}

// GeneratorConfig configures one outbound generative API client.
type GeneratorConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	Timeout  int    `mapstructure:"timeout"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
